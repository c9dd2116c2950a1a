// Package mmu provides the memory management unit. The MMU is unaware
// of the CPU, and routes every read and write on the 16-bit address
// bus to exactly one region, refusing writes to read-only regions.
package mmu

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/thelolagemann/sm83/internal/boot"
	"github.com/thelolagemann/sm83/internal/cartridge"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

var (
	// ErrRegionRange is returned by New for empty regions and
	// regions running past 0xFFFF.
	ErrRegionRange = errors.New("mmu: region out of range")
	// ErrNoRegion is returned by Dump for unknown region names.
	ErrNoRegion = errors.New("mmu: no such region")
)

// MMU is the memory management unit. It holds a fixed, ordered list
// of non-overlapping regions, and optionally the boot ROM, which
// overlays the start of the address space until it is disabled by
// a write to types.BDIS.
type MMU struct {
	// 64kB address space, nil where nothing is mapped
	raw [0x10000]Region

	// regions in the order they were given
	regions []Region

	// 0x0000 - 0x00FF - BOOT ROM (256B)
	bootROM     *ReadOnlyImage
	bootROMDone bool

	Log log.Logger
}

// New returns an MMU serving the given regions. Every overlap and
// every region out of range is reported in the returned error.
func New(regions ...Region) (*MMU, error) {
	m := &MMU{Log: log.NewNullLogger()}
	if err := m.init(regions); err != nil {
		return nil, err
	}
	return m, nil
}

// NewMMU returns an MMU with the default memory map. The boot ROM,
// cartridge and peripheral are all optional.
//
//	0x0000 - 0x00FF - boot ROM (overlay, until BDIS is written)
//	0x0000 - 0x3FFF - cartridge bank 0
//	0x4000 - 0x7FFF - cartridge bank 1 (images larger than 16kB)
//	0x8000 - 0x9FFF - video RAM
//	0xC000 - 0xDFFF - work RAM
//	0xFF00 - 0xFF4B - I/O registers
//	0xFF50          - BDIS (with a boot ROM)
//	0xFF80 - 0xFFFE - high RAM
func NewMMU(bootROM *boot.ROM, cart *cartridge.Cartridge, peripheral IOBus) (*MMU, error) {
	m := &MMU{Log: log.NewNullLogger()}

	var regions []Region
	if cart != nil {
		regions = append(regions, NewReadOnlyImage("cartridge bank 0", types.CartridgeBank0Start, cart.Bank(0)))
		if cart.Banks() > 1 {
			regions = append(regions, NewReadOnlyImage("cartridge bank 1", types.CartridgeBank1Start, cart.Bank(1)))
		}
	}
	regions = append(regions,
		NewReadWriteMemory("vram", types.VRAMStart, types.Size(types.VRAMStart, types.VRAMEnd)),
		NewReadWriteMemory("wram", types.WRAMStart, types.Size(types.WRAMStart, types.WRAMEnd)),
		NewIO(peripheral),
	)
	if bootROM != nil {
		// it's assumed any non-zero write to this register will disable the boot rom
		regions = append(regions, NewHardwareRegister("bdis", types.BDIS, nil, m.disableBootROM))
		m.bootROM = NewReadOnlyImage("boot rom", types.BootROMStart, bootROM.Bytes())
	}
	regions = append(regions, NewReadWriteMemory("hram", types.HRAMStart, types.Size(types.HRAMStart, types.HRAMEnd)))

	if err := m.init(regions); err != nil {
		return nil, err
	}
	return m, nil
}

// init validates the regions and fills the address table.
func (m *MMU) init(regions []Region) error {
	var result *multierror.Error
	for i, r := range regions {
		if r.Size() <= 0 || end(r) > 0xFFFF {
			result = multierror.Append(result, fmt.Errorf("%w: %s at 0x%04X (%d bytes)", ErrRegionRange, r.Name(), r.Base(), r.Size()))
			continue
		}
		for _, prev := range regions[:i] {
			if prev.Size() <= 0 || end(prev) > 0xFFFF {
				continue
			}
			if int(r.Base()) <= end(prev) && int(prev.Base()) <= end(r) {
				first := r.Base()
				if prev.Base() > first {
					first = prev.Base()
				}
				result = multierror.Append(result, &OverlapError{Address: first, First: prev.Name(), Second: r.Name()})
			}
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	m.regions = regions
	for _, r := range regions {
		for addr := int(r.Base()); addr <= end(r); addr++ {
			m.raw[addr] = r
		}
	}
	return nil
}

func (m *MMU) disableBootROM(v uint8) {
	if v == 0 || m.bootROMDone {
		return
	}
	m.bootROMDone = true
	m.Log.Infof("mmu: boot rom disabled")
}

// BootROMEnabled reports whether the boot ROM is currently
// mapped over the cartridge.
func (m *MMU) BootROMEnabled() bool {
	return m.bootROM != nil && !m.bootROMDone
}

// Regions returns the regions currently visible, with the boot
// ROM first while it is mapped.
func (m *MMU) Regions() []Region {
	var regions []Region
	if m.BootROMEnabled() {
		regions = append(regions, m.bootROM)
	}
	return append(regions, m.regions...)
}

// Map returns the region serving address.
func (m *MMU) Map(address uint16) (Region, error) {
	if m.BootROMEnabled() && contains(m.bootROM, address) {
		return m.bootROM, nil
	}
	if r := m.raw[address]; r != nil {
		return r, nil
	}
	return nil, &UnmappedAddressError{Address: address}
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) (uint8, error) {
	r, err := m.Map(address)
	if err != nil {
		return 0, err
	}
	return r.Read(address - r.Base()), nil
}

// Write writes value to the given address.
func (m *MMU) Write(address uint16, value uint8) error {
	r, err := m.Map(address)
	if err != nil {
		return err
	}
	if !r.Writable() {
		return &ReadOnlyViolationError{Address: address, Region: r.Name()}
	}
	r.Write(address-r.Base(), value)
	return nil
}

// ReadWord returns the 16-bit value at address, with the low
// byte at address and the high byte at address+1.
func (m *MMU) ReadWord(address uint16) (uint16, error) {
	low, err := m.Read(address)
	if err != nil {
		return 0, err
	}
	high, err := m.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(high)<<8 | uint16(low), nil
}

// WriteWord writes the 16-bit value to address, low byte first.
// If the high byte fails to write, the low byte stays written.
func (m *MMU) WriteWord(address uint16, value uint16) error {
	if err := m.Write(address, uint8(value)); err != nil {
		return err
	}
	return m.Write(address+1, uint8(value>>8))
}

// Dump returns a copy of the contents of the named region.
func (m *MMU) Dump(name string) ([]byte, error) {
	for _, r := range m.Regions() {
		if r.Name() != name {
			continue
		}
		b := make([]byte, r.Size())
		for i := range b {
			b[i] = r.Read(uint16(i))
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNoRegion, name)
}

var _ types.Stater = (*MMU)(nil)

// Load restores the boot ROM mapping and the contents of every
// region that keeps state.
func (m *MMU) Load(s *types.State) {
	m.bootROMDone = s.ReadBool()
	for _, r := range m.regions {
		if st, ok := r.(types.Stater); ok {
			st.Load(s)
		}
	}
}

// Save stores the boot ROM mapping and the contents of every
// region that keeps state.
func (m *MMU) Save(s *types.State) {
	s.WriteBool(m.bootROMDone)
	for _, r := range m.regions {
		if st, ok := r.(types.Stater); ok {
			st.Save(s)
		}
	}
}
