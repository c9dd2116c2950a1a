package gameboy

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/sm83/internal/boot"
	"github.com/thelolagemann/sm83/internal/cartridge"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/trace"
)

// program returns a cartridge image with code at 0x0100.
func program(code ...byte) []byte {
	rom := make([]byte, 0x0200)
	copy(rom[0x0100:], code)
	return rom
}

func TestNewGameBoy(t *testing.T) {
	t.Run("no image", func(t *testing.T) {
		_, err := NewGameBoy(nil)
		assert.ErrorIs(t, err, ErrNoImage)
	})
	t.Run("cartridge too large", func(t *testing.T) {
		_, err := NewGameBoy(make([]byte, cartridge.MaxSize+1))
		assert.ErrorIs(t, err, cartridge.ErrTooLarge)
	})
	t.Run("boot rom too large", func(t *testing.T) {
		_, err := NewGameBoy(nil, WithBootROM(make([]byte, boot.Size+1)))
		assert.ErrorIs(t, err, boot.ErrInvalidLength)
	})
	t.Run("entry point", func(t *testing.T) {
		g, err := NewGameBoy(program(), WithEntryPoint(0x0100, 0xFFFE))
		require.NoError(t, err)
		assert.Equal(t, uint16(0x0100), g.CPU.PC())
		assert.Equal(t, uint16(0xFFFE), g.CPU.SP())
		assert.False(t, g.MMU.BootROMEnabled())
	})
	t.Run("logs the cartridge header", func(t *testing.T) {
		rom := program()
		copy(rom[0x0134:], "SM83TEST")

		var buf bytes.Buffer
		_, err := NewGameBoy(rom, WithLogger(log.NewWithWriter(&buf, false)))
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "SM83TEST Mode: DMG | Type: ROM")
	})
}

func TestGameBoy_Run(t *testing.T) {
	// LD A, 0x05; DEC A; JR NZ, -3; illegal
	g, err := NewGameBoy(program(0x3E, 0x05, 0x3D, 0x20, 0xFD, 0xD3), WithEntryPoint(0x0100, 0xFFFE))
	require.NoError(t, err)

	n, err := g.Run(context.Background(), 0)
	assert.Equal(t, 11, n)
	assert.ErrorIs(t, err, cpu.ErrIllegalOpcode)

	var stepErr *cpu.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, uint16(0x0105), stepErr.PC)
	assert.Equal(t, uint8(0x00), g.CPU.ReadByte(cpu.A))
}

func TestGameBoy_RunLimit(t *testing.T) {
	// JR -2
	g, err := NewGameBoy(program(0x18, 0xFE), WithEntryPoint(0x0100, 0xFFFE))
	require.NoError(t, err)

	n, err := g.Run(context.Background(), 5000)
	require.NoError(t, err)
	assert.Equal(t, 5000, n)
	assert.Equal(t, uint64(5000), g.CPU.Steps())
}

func TestGameBoy_RunCancelled(t *testing.T) {
	g, err := NewGameBoy(program(0x18, 0xFE), WithEntryPoint(0x0100, 0xFFFE))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := g.Run(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
}

func TestGameBoy_BootROM(t *testing.T) {
	// LD A, 0x01; LDH (0x50), A
	bootROM := []byte{0x3E, 0x01, 0xE0, 0x50}

	// the cartridge continues where the boot rom left off
	rom := program()
	rom[0x0004] = 0x00 // NOP
	rom[0x0005] = 0xD3

	rec := trace.NewRecorder(4)
	var logs bytes.Buffer
	g, err := NewGameBoy(rom, WithBootROM(bootROM), WithTracer(rec), WithLogger(log.NewWithWriter(&logs, false)))
	require.NoError(t, err)
	require.True(t, g.MMU.BootROMEnabled())
	assert.Equal(t, "unknown", g.BootROM.Model())

	n, err := g.Run(context.Background(), 0)
	assert.ErrorIs(t, err, cpu.ErrIllegalOpcode)
	assert.Equal(t, 3, n)
	assert.False(t, g.MMU.BootROMEnabled())

	var names []string
	for _, e := range rec.Events() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"LD A, d8", "LDH (a8), A", "NOP"}, names)
	assert.Contains(t, logs.String(), "boot rom disabled")
}

type sound struct {
	regs [0x4C]uint8
}

func (s *sound) Read(offset uint16) uint8 { return s.regs[offset] | 0x70 }
func (s *sound) Write(offset uint16, v uint8) {
	s.regs[offset] = v
}

func TestGameBoy_Peripheral(t *testing.T) {
	// LD A, 0x80; LDH (0x26), A; LDH A, (0x26)
	p := &sound{}
	g, err := NewGameBoy(program(0x3E, 0x80, 0xE0, 0x26, 0xF0, 0x26), WithEntryPoint(0x0100, 0xFFFE), WithPeripheral(p))
	require.NoError(t, err)

	_, err = g.Run(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x80), p.regs[0x26])
	assert.Equal(t, uint8(0xF0), g.CPU.ReadByte(cpu.A))
}

func TestGameBoy_State(t *testing.T) {
	// LD HL, 0xC000; LD (HL+), A; INC A; JR -4
	rom := program(0x21, 0x00, 0xC0, 0x22, 0x3C, 0x18, 0xFC)
	g, err := NewGameBoy(rom, WithBootROM([]byte{0x00}), WithEntryPoint(0x0100, 0xFFFE))
	require.NoError(t, err)
	require.NoError(t, g.MMU.Write(0xFF50, 0x01))

	_, err = g.Run(context.Background(), 31)
	require.NoError(t, err)
	state := g.State()

	restored, err := NewGameBoy(rom, WithBootROM([]byte{0x00}), WithState(state))
	require.NoError(t, err)
	assert.Equal(t, g.CPU.Registers, restored.CPU.Registers)
	assert.False(t, restored.MMU.BootROMEnabled())

	for _, name := range []string{"vram", "wram", "io", "hram"} {
		want, err := g.MMU.Dump(name)
		require.NoError(t, err)
		got, err := restored.MMU.Dump(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}

	// both continue identically
	for i := 0; i < 10; i++ {
		require.NoError(t, g.Step())
		require.NoError(t, restored.Step())
	}
	assert.Equal(t, g.CPU.Registers, restored.CPU.Registers)

	t.Run("file", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "sm83.state")
		require.NoError(t, g.SaveToFile(filename))

		b, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.Equal(t, g.State(), b)
	})
	t.Run("truncated", func(t *testing.T) {
		_, err := NewGameBoy(rom, WithState(state[:8]))
		assert.ErrorIs(t, err, types.ErrStateTruncated)
	})
}
