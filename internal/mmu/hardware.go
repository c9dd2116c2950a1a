package mmu

import "github.com/thelolagemann/sm83/internal/types"

// HardwareRegister is a single byte region whose reads and
// writes are handled by functions. The read and write functions
// are optional: a register without a read function reads as
// 0xFF, and one without a write function ignores writes.
type HardwareRegister struct {
	name    string
	address types.HardwareAddress
	read    func() uint8
	write   func(v uint8)
}

// NewHardwareRegister returns a register mapped at address.
func NewHardwareRegister(name string, address types.HardwareAddress, read func() uint8, write func(v uint8)) *HardwareRegister {
	return &HardwareRegister{
		name:    name,
		address: address,
		read:    read,
		write:   write,
	}
}

func (h *HardwareRegister) Name() string   { return h.name }
func (h *HardwareRegister) Base() uint16   { return h.address }
func (h *HardwareRegister) Size() int      { return 1 }
func (h *HardwareRegister) Writable() bool { return true }

func (h *HardwareRegister) Read(uint16) uint8 {
	if h.read == nil {
		return 0xFF
	}
	return h.read()
}

func (h *HardwareRegister) Write(_ uint16, value uint8) {
	if h.write != nil {
		h.write(value)
	}
}
