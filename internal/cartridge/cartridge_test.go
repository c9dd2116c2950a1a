package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newImage returns a 32 KiB image with a valid DMG header.
func newImage(title string) []byte {
	rom := make([]byte, MaxSize)
	copy(rom[0x134:], title)
	rom[0x147] = byte(ROM)
	rom[0x148] = 0x00
	rom[0x149] = 0x00

	var sum uint8
	for _, b := range rom[0x134:0x14D] {
		sum = sum - b - 1
	}
	rom[0x14D] = sum
	return rom
}

func TestNewCartridge(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := NewCartridge(nil)
		assert.ErrorIs(t, err, ErrEmpty)
	})
	t.Run("too large", func(t *testing.T) {
		_, err := NewCartridge(make([]byte, MaxSize+1))
		assert.ErrorIs(t, err, ErrTooLarge)
	})
	t.Run("no header", func(t *testing.T) {
		c, err := NewCartridge([]byte{0xAF, 0x00})
		require.NoError(t, err)
		assert.False(t, c.HasHeader())
		assert.Equal(t, 1, c.Banks())
	})
	t.Run("header", func(t *testing.T) {
		c, err := NewCartridge(newImage("TETRIS"))
		require.NoError(t, err)
		require.True(t, c.HasHeader())

		h := c.Header()
		assert.Equal(t, "TETRIS", c.Title())
		assert.Equal(t, ROM, h.CartridgeType)
		assert.Equal(t, "DMG", h.Hardware())
		assert.Equal(t, uint(32*1024), h.ROMSize)
		assert.True(t, h.ChecksumValid())
		assert.Equal(t, "TETRIS Mode: DMG | Type: ROM | ROM Size: 32kB | RAM Size: 0kB", h.String())
	})
	t.Run("bad checksum", func(t *testing.T) {
		rom := newImage("TETRIS")
		rom[0x14D]++
		c, err := NewCartridge(rom)
		require.NoError(t, err)
		h := c.Header()
		assert.False(t, h.ChecksumValid())
	})
}

func TestCartridge_Bank(t *testing.T) {
	rom := make([]byte, BankSize+2)
	rom[0] = 0x11
	rom[BankSize] = 0x22
	rom[BankSize+1] = 0x33

	c, err := NewCartridge(rom)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Banks())

	bank0, bank1 := c.Bank(0), c.Bank(1)
	assert.Len(t, bank0, BankSize)
	assert.Len(t, bank1, BankSize)
	assert.Equal(t, uint8(0x11), bank0[0])
	assert.Equal(t, []byte{0x22, 0x33, 0x00}, bank1[:3])
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "MBC1+RAM", MBC1RAM.String())
	assert.Equal(t, "unknown (FD)", Type(0xFD).String())
}
