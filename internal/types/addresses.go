package types

// HardwareAddress represents an address on the 16-bit bus
// of the CPU. It is used for the boundaries of the memory
// regions, and for the few hardware registers the core
// gives meaning to.
type HardwareAddress = uint16

// The memory map of the core. Each region is described by its
// first and last address (inclusive), which keeps the constants
// comparable against the documented hardware memory map.
const (
	// BootROMStart is the first address of the boot ROM. The boot
	// ROM overlays the cartridge until it is disabled by a write
	// to BDIS.
	BootROMStart HardwareAddress = 0x0000
	// BootROMEnd is the last address of the boot ROM window.
	BootROMEnd HardwareAddress = 0x00FF

	// CartridgeBank0Start is the first address of the fixed
	// cartridge bank (16 KiB).
	CartridgeBank0Start HardwareAddress = 0x0000
	// CartridgeBank0End is the last address of the fixed cartridge bank.
	CartridgeBank0End HardwareAddress = 0x3FFF
	// CartridgeBank1Start is the first address of the second
	// cartridge bank. Only mapped when the cartridge image is
	// larger than a single bank.
	CartridgeBank1Start HardwareAddress = 0x4000
	// CartridgeBank1End is the last address of the second cartridge bank.
	CartridgeBank1End HardwareAddress = 0x7FFF

	// VRAMStart is the first address of video memory (8 KiB).
	VRAMStart HardwareAddress = 0x8000
	// VRAMEnd is the last address of video memory.
	VRAMEnd HardwareAddress = 0x9FFF

	// WRAMStart is the first address of work memory (8 KiB).
	WRAMStart HardwareAddress = 0xC000
	// WRAMEnd is the last address of work memory.
	WRAMEnd HardwareAddress = 0xDFFF

	// IOStart is the first address of the I/O register block. It
	// doubles as the base of the I/O-mapped load and store
	// instructions (LDH, LD (C)).
	IOStart HardwareAddress = 0xFF00
	// IOEnd is the last address of the I/O register block.
	IOEnd HardwareAddress = 0xFF4B

	// BDIS is the address of the BDIS hardware register. Writing
	// any non-zero value to it unmaps the boot ROM, leaving the
	// cartridge visible at 0x0000 - 0x00FF. It can not be read.
	BDIS HardwareAddress = 0xFF50

	// HRAMStart is the first address of high (zero page) memory.
	HRAMStart HardwareAddress = 0xFF80
	// HRAMEnd is the last address of high memory. 0xFFFF is not
	// part of it.
	HRAMEnd HardwareAddress = 0xFFFE
)

// Size returns the number of bytes in the inclusive
// range [start, end].
func Size(start, end HardwareAddress) int {
	return int(end) - int(start) + 1
}
