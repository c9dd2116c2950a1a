// Package cartridge provides the cartridge image mapped at
// 0x0000 - 0x7FFF. Only ROM-only cartridges are supported: the
// image is mapped as up to two fixed 16 KiB banks, without a
// memory bank controller.
package cartridge

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
)

// BankSize is the size of a single cartridge bank.
var BankSize = types.Size(types.CartridgeBank0Start, types.CartridgeBank0End)

// MaxSize is the largest image that can be mapped without a
// memory bank controller.
var MaxSize = 2 * BankSize

var (
	// ErrEmpty is returned for an empty cartridge image.
	ErrEmpty = errors.New("cartridge: empty image")
	// ErrTooLarge is returned for images that need bank switching.
	ErrTooLarge = errors.New("cartridge: image too large")
)

// Cartridge represents a basic game cartridge.
type Cartridge struct {
	rom       []byte
	header    Header
	hasHeader bool
}

// NewCartridge validates rom and parses its header. Images too
// small to hold a header (0x0100 - 0x014F) are accepted, with an
// empty Header.
func NewCartridge(rom []byte) (*Cartridge, error) {
	if len(rom) == 0 {
		return nil, ErrEmpty
	}
	if len(rom) > MaxSize {
		return nil, fmt.Errorf("%w: %d bytes, at most %d can be mapped", ErrTooLarge, len(rom), MaxSize)
	}

	c := &Cartridge{rom: rom}
	if len(rom) >= headerEnd {
		// parse the cartridge header (0x0100 - 0x014F)
		h, err := parseHeader(rom[headerStart:headerEnd])
		if err != nil {
			return nil, err
		}
		c.header = h
		c.hasHeader = true
	}
	return c, nil
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() Header {
	return c.header
}

// HasHeader reports whether the image was large enough to
// hold a header.
func (c *Cartridge) HasHeader() bool {
	return c.hasHeader
}

// Title returns the cartridge title.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// Len returns the size of the image.
func (c *Cartridge) Len() int {
	return len(c.rom)
}

// Banks returns the number of 16 KiB banks the image occupies.
func (c *Cartridge) Banks() int {
	return (len(c.rom) + BankSize - 1) / BankSize
}

// Bank returns a copy of bank n, zero filled to BankSize.
func (c *Cartridge) Bank(n int) []byte {
	bank := make([]byte, BankSize)
	if start := n * BankSize; start < len(c.rom) {
		copy(bank, c.rom[start:])
	}
	return bank
}
