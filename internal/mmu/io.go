package mmu

import (
	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/internal/types"
)

// IOBus is the byte level contract of the peripherals (sound,
// timer, serial, ...) living in the I/O register block. Offsets
// are relative to types.IOStart.
type IOBus interface {
	Read(offset uint16) uint8
	Write(offset uint16, value uint8)
}

// IO is the I/O register block at 0xFF00 - 0xFF4B. Without a
// peripheral attached it behaves as plain byte storage.
type IO struct {
	bus IOBus
}

// NewIO returns the I/O block delegating to bus. A nil bus is
// replaced by RAM.
func NewIO(bus IOBus) *IO {
	if bus == nil {
		bus = ram.NewRAM(types.Size(types.IOStart, types.IOEnd))
	}
	return &IO{bus: bus}
}

func (i *IO) Name() string   { return "io" }
func (i *IO) Base() uint16   { return types.IOStart }
func (i *IO) Size() int      { return types.Size(types.IOStart, types.IOEnd) }
func (i *IO) Writable() bool { return true }

func (i *IO) Read(offset uint16) uint8 {
	return i.bus.Read(offset)
}

func (i *IO) Write(offset uint16, value uint8) {
	i.bus.Write(offset, value)
}

var _ types.Stater = (*IO)(nil)

// Load restores the peripheral, if it keeps state.
func (i *IO) Load(s *types.State) {
	if st, ok := i.bus.(types.Stater); ok {
		st.Load(s)
	}
}

// Save stores the peripheral, if it keeps state.
func (i *IO) Save(s *types.State) {
	if st, ok := i.bus.(types.Stater); ok {
		st.Save(s)
	}
}
