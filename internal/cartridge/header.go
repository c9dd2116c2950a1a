package cartridge

import (
	"fmt"
	"strings"
)

const (
	headerStart = 0x0100
	headerEnd   = 0x0150
)

type Flag uint8

const (
	FlagOnlyDMG Flag = iota
	FlagSupportsCGB
	FlagOnlyCGB
)

var (
	ramMAP = map[uint8]uint{
		0x00: 0,
		0x02: 8 * 1024,
		0x03: 32 * 1024,
		0x04: 128 * 1024,
		0x05: 64 * 1024,
	}
)

type Type uint8

const (
	ROM        Type = 0x00
	MBC1       Type = 0x01
	MBC1RAM    Type = 0x02
	MBC2       Type = 0x05
	ROMRAM     Type = 0x08
	ROMRAMBATT Type = 0x09
	MBC3       Type = 0x11
	MBC5       Type = 0x19
)

var typeNames = map[Type]string{
	ROM:        "ROM",
	MBC1:       "MBC1",
	MBC1RAM:    "MBC1+RAM",
	MBC2:       "MBC2",
	ROMRAM:     "ROM+RAM",
	ROMRAMBATT: "ROM+RAM+BATTERY",
	MBC3:       "MBC3",
	MBC5:       "MBC5",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%02X)", uint8(t))
}

// Header represents the header of a cartridge, located at the address
// space 0x0100-0x014F. The header contains information about the
// cartridge itself, and the hardware it expects to run on.
type Header struct {
	// 0x0134-0x0143 - Title of the game
	Title string

	// 0x0143 - CartridgeGBMode of the game. In older cartridges this byte was part
	// of the title, but the Colour Game Boy and later models interpret this byte
	// to determine if the cartridge is compatible with the Colour Game Boy.
	CartridgeGBMode Flag

	CartridgeType  Type
	ROMSize        uint
	RAMSize        uint
	HeaderChecksum uint8
	GlobalChecksum uint16

	// checksumValid is set when HeaderChecksum matches the
	// checksum computed over 0x0134-0x014C.
	checksumValid bool
}

// parseHeader parses the header of the given ROM and returns a Header.
func parseHeader(header []byte) (Header, error) {
	h := Header{}

	// check if the header is valid
	if len(header) != headerEnd-headerStart {
		return h, fmt.Errorf("cartridge: invalid header length: %d", len(header))
	}

	// parse the mode of the cartridge and parse the header accordingly
	switch header[0x43] {
	case 0x80:
		h.CartridgeGBMode = FlagSupportsCGB
	case 0xC0:
		h.CartridgeGBMode = FlagOnlyCGB
	default:
		h.CartridgeGBMode = FlagOnlyDMG
	}

	// parse the title, which is padded with zeroes
	if h.CartridgeGBMode == FlagOnlyDMG {
		h.Title = strings.TrimRight(string(header[0x34:0x44]), "\x00")
	} else {
		h.Title = strings.TrimRight(string(header[0x34:0x43]), "\x00")
	}

	h.CartridgeType = Type(header[0x47])

	// parse the ROM size (calculated by 32kB x (1 << n))
	h.ROMSize = (32 * 1024) * (1 << header[0x48])
	h.RAMSize = ramMAP[header[0x49]]

	h.HeaderChecksum = header[0x4D]
	h.GlobalChecksum = uint16(header[0x4E])<<8 | uint16(header[0x4F])

	var sum uint8
	for _, b := range header[0x34:0x4D] {
		sum = sum - b - 1
	}
	h.checksumValid = sum == h.HeaderChecksum

	return h, nil
}

// ChecksumValid reports whether the header checksum matched.
func (h *Header) ChecksumValid() bool {
	return h.checksumValid
}

func (h *Header) Hardware() string {
	switch h.CartridgeGBMode {
	case FlagOnlyDMG:
		return "DMG"
	case FlagSupportsCGB, FlagOnlyCGB:
		return "CGB"
	default:
		return "Unknown"
	}
}

func (h *Header) String() string {
	return fmt.Sprintf("%s Mode: %s | Type: %s | ROM Size: %dkB | RAM Size: %dkB", h.Title, h.Hardware(), h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}
