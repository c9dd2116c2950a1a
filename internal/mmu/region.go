package mmu

import (
	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/internal/types"
)

// Region is a contiguous slice of the address space backed by a
// single storage object. Read and Write are passed the offset from
// Base, never the absolute address.
type Region interface {
	Name() string
	Base() uint16
	Size() int
	Writable() bool

	Read(offset uint16) uint8
	Write(offset uint16, value uint8)
}

// end returns the last address covered by r.
func end(r Region) int {
	return int(r.Base()) + r.Size() - 1
}

// contains reports whether address falls inside r.
func contains(r Region, address uint16) bool {
	return address >= r.Base() && int(address) <= end(r)
}

// ReadOnlyImage is a region backed by an immutable image, such
// as the boot ROM or a cartridge bank.
type ReadOnlyImage struct {
	name string
	base uint16
	data []byte
}

// NewReadOnlyImage returns a read-only region serving data at base.
func NewReadOnlyImage(name string, base uint16, data []byte) *ReadOnlyImage {
	return &ReadOnlyImage{
		name: name,
		base: base,
		data: data,
	}
}

func (r *ReadOnlyImage) Name() string   { return r.name }
func (r *ReadOnlyImage) Base() uint16   { return r.base }
func (r *ReadOnlyImage) Size() int      { return len(r.data) }
func (r *ReadOnlyImage) Writable() bool { return false }

func (r *ReadOnlyImage) Read(offset uint16) uint8 {
	return r.data[offset]
}

// Write does nothing; the MMU refuses writes to read-only
// regions before they get here.
func (r *ReadOnlyImage) Write(offset uint16, value uint8) {}

// ReadWriteMemory is a region backed by RAM.
type ReadWriteMemory struct {
	name string
	base uint16
	*ram.RAM
}

// NewReadWriteMemory returns a zeroed read-write region of size bytes.
func NewReadWriteMemory(name string, base uint16, size int) *ReadWriteMemory {
	return &ReadWriteMemory{
		name: name,
		base: base,
		RAM:  ram.NewRAM(size),
	}
}

func (m *ReadWriteMemory) Name() string   { return m.name }
func (m *ReadWriteMemory) Base() uint16   { return m.base }
func (m *ReadWriteMemory) Size() int      { return m.Len() }
func (m *ReadWriteMemory) Writable() bool { return true }

var _ types.Stater = (*ReadWriteMemory)(nil)
