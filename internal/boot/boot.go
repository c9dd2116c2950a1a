// Package boot provides the boot ROM image of the emulator. The boot
// ROM is optional: without one the CPU starts executing the cartridge
// directly.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
)

// Size is the size of the boot ROM window at 0x0000 - 0x00FF.
var Size = types.Size(types.BootROMStart, types.BootROMEnd)

// ErrInvalidLength is returned by LoadBootROM for images that do
// not fit the boot ROM window.
var ErrInvalidLength = errors.New("boot: invalid boot rom length")

// ROM represents a boot ROM. When the CPU first powers on, the boot
// ROM is mapped to memory addresses 0x0000 - 0x00FF, over the
// cartridge.
//
// Once the boot ROM has completed its tasks, it is unmapped from memory
// (by writing to the types.BDIS register), and the cartridge is mapped
// over the boot ROM, thus starting the cartridge execution, and preventing
// the boot ROM from being executed again.
type ROM struct {
	raw      []byte // the raw boot rom, always Size bytes
	length   int    // the length of the image that was loaded
	checksum string // the MD5 checksum of the boot rom
}

// LoadBootROM loads a boot ROM into a new ROM struct and returns a
// pointer to it. Both full 256 byte dumps and 255 byte dumps (which
// omit the final byte) are accepted; the image is zero filled to the
// size of the boot window. The MD5 checksum of the image as given is
// used to identify the model.
func LoadBootROM(b []byte) (*ROM, error) {
	if len(b) == 0 || len(b) > Size {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, len(b))
	}

	raw := make([]byte, Size)
	copy(raw, b)

	sum := md5.Sum(b)
	return &ROM{
		raw:      raw,
		length:   len(b),
		checksum: hex.EncodeToString(sum[:]),
	}, nil
}

// Read returns the byte at the given offset.
func (b *ROM) Read(offset uint16) byte {
	return b.raw[offset]
}

// Bytes returns the boot window, zero filled past the loaded image.
func (b *ROM) Bytes() []byte {
	return b.raw
}

// Len returns the length of the loaded image.
func (b *ROM) Len() int {
	return b.length
}

// Checksum returns the MD5 checksum of the boot rom.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Model returns the model of the boot rom. The model
// is determined by the checksum of the boot rom.
func (b *ROM) Model() string {
	if b == nil {
		return "none"
	}
	if model, ok := knownBootROMChecksums[b.checksum]; ok {
		return model
	}
	return "unknown"
}

// knownBootROMChecksums maps the checksums of known boot
// ROMs to the model they were dumped from.
var knownBootROMChecksums = map[string]string{
	DMG0:         "Game Boy (DMG-0)",
	DMG:          "Game Boy (DMG-01)",
	MGB:          "Game Boy Pocket",
	SGB:          "Super Game Boy",
	SGB2:         "Super Game Boy 2",
	FORTUNE:      "Fortune/Bitman 3000B",
	GAME_FIGHTER: "Game Fighter",
	MAX_STATION:  "Max Station",
}

const (
	// DMG0 is the checksum of the DMG early boot ROM, found in very
	// early DMG units and only ever sold in Japan.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the checksum of the DMG boot rom, which is the most
	// common boot ROM found in the original DMG-01 models.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB is the checksum of the MGB boot ROM, which differs
	// only by a single byte from the DMG boot ROM, loading
	// the value 0xFF into the A register, rather than 0x01.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB is the checksum of the SGB boot ROM.
	SGB = "d574d4f9c12f305074798f54c091a8b4"
	// SGB2 is the checksum of the SGB2 boot ROM, differing from
	// the SGB boot ROM by the value loaded into the A register.
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
	// FORTUNE is the checksum of the boot ROM found in the
	// Game Boy clone "Fortune/Bitman 3000B".
	FORTUNE = "92ed4eca17d61fcd53f8a64c3ce84743"
	// GAME_FIGHTER is the checksum of the boot ROM found in the
	// Game Boy clone "Game Fighter".
	GAME_FIGHTER = "6a7b8ee12a793f66a969c6a2b8926cc9"
	// MAX_STATION is the checksum of the boot ROM found in the
	// Game Boy clone "Maxstation".
	MAX_STATION = "77a7021db824010a678791f6d062943d"
)
