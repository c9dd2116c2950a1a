package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/sm83/internal/types"
)

func TestRegisters_Pairs(t *testing.T) {
	for _, pair := range []Pair{BC, DE, HL} {
		t.Run(pair.String(), func(t *testing.T) {
			r := NewRegisters()
			for v := 0; v <= 0xFFFF; v++ {
				r.WriteWord(pair, uint16(v))
				if r.ReadWord(pair) != uint16(v) {
					t.Fatalf("expected %s to be 0x%04X, got 0x%04X", pair, v, r.ReadWord(pair))
				}
				if r.ReadByte(Slot(pair)) != uint8(v>>8) || r.ReadByte(Slot(pair)+1) != uint8(v) {
					t.Fatalf("expected %s to split 0x%04X into %02X %02X, got %02X %02X", pair, v, v>>8, v&0xFF, r.ReadByte(Slot(pair)), r.ReadByte(Slot(pair)+1))
				}
			}
		})
	}
	t.Run("AF", func(t *testing.T) {
		r := NewRegisters()
		for v := 0; v <= 0xFFFF; v++ {
			r.WriteWord(AF, uint16(v))
			if r.ReadWord(AF) != uint16(v)&0xFFF0 {
				t.Fatalf("expected AF to be 0x%04X, got 0x%04X", v&0xFFF0, r.ReadWord(AF))
			}
		}
	})
}

func TestRegisters_Bytes(t *testing.T) {
	r := NewRegisters()
	r.WriteByte(H, 0x12)
	r.WriteByte(L, 0x34)
	assert.Equal(t, uint16(0x1234), r.ReadWord(HL))

	r.WriteByte(F, 0xFF)
	assert.Equal(t, uint8(0xF0), r.ReadByte(F), "the lower nibble of F is always zero")

	// no other register is touched
	for _, s := range []Slot{A, B, C, D, E} {
		assert.Zero(t, r.ReadByte(s), s.String())
	}
}

func TestRegisters_Flags(t *testing.T) {
	r := NewRegisters()
	for flag := FlagCarry; flag <= FlagZero; flag++ {
		r.SetFlag(flag, true)
		assert.True(t, r.Flag(flag))
	}
	assert.Equal(t, uint8(0xF0), r.ReadByte(F))

	r.SetFlag(FlagSubtract, false)
	assert.Equal(t, uint8(0xB0), r.ReadByte(F), "clearing a flag leaves the others set")
	assert.False(t, r.Flag(FlagSubtract))
}

func TestRegisters_Counters(t *testing.T) {
	r := NewRegisters()

	r.SetPC(0xFFFF)
	r.IncrementPC(1)
	assert.Equal(t, uint16(0x0000), r.PC())
	r.IncrementPC(-1)
	assert.Equal(t, uint16(0xFFFF), r.PC())
	r.SetPC(0x0500)
	r.IncrementPC(-0x80)
	assert.Equal(t, uint16(0x0480), r.PC())

	r.DecrementSP(2)
	assert.Equal(t, uint16(0xFFFE), r.SP())
	r.IncrementSP(2)
	assert.Equal(t, uint16(0x0000), r.SP())

	r.WriteWord(BC, 0xFFFF)
	r.IncrementWord(BC)
	assert.Equal(t, uint16(0x0000), r.ReadWord(BC))
	r.DecrementWord(BC)
	assert.Equal(t, uint16(0xFFFF), r.ReadWord(BC))
}

func TestRegisters_State(t *testing.T) {
	r := NewRegisters()
	for i, s := range []Slot{A, F, B, C, D, E, H, L} {
		r.WriteByte(s, uint8(0x10*i+i))
	}
	r.SetSP(0xFFFE)
	r.SetPC(0x0150)

	s := types.NewState()
	r.Save(s)

	restored := NewRegisters()
	loaded := types.StateFromBytes(s.Bytes())
	restored.Load(loaded)
	require.NoError(t, loaded.Err())
	assert.Equal(t, r, restored)
	assert.Equal(t, "A: 00 F: 10 B: 22 C: 33 D: 44 E: 55 H: 66 L: 77 SP: FFFE PC: 0150", restored.String())
}

func TestRegisters_IncrementByte(t *testing.T) {
	for _, carry := range []bool{false, true} {
		for x := 0; x < 256; x++ {
			r := NewRegisters()
			r.SetFlag(FlagCarry, carry)
			r.WriteByte(B, uint8(x))

			r.IncrementByte(B)

			want := uint8(x + 1)
			if r.ReadByte(B) != want {
				t.Fatalf("INC 0x%02X: expected 0x%02X, got 0x%02X", x, want, r.ReadByte(B))
			}
			assert.Equal(t, want == 0, r.Flag(FlagZero), "INC 0x%02X zero", x)
			assert.False(t, r.Flag(FlagSubtract), "INC 0x%02X subtract", x)
			assert.Equal(t, ((x&0xF)+1)&0x10 != 0, r.Flag(FlagHalfCarry), "INC 0x%02X half carry", x)
			assert.Equal(t, carry, r.Flag(FlagCarry), "INC 0x%02X carry", x)
		}
	}
}

func TestRegisters_DecrementByte(t *testing.T) {
	for _, carry := range []bool{false, true} {
		for x := 0; x < 256; x++ {
			r := NewRegisters()
			r.SetFlag(FlagCarry, carry)
			r.WriteByte(L, uint8(x))

			r.DecrementByte(L)

			want := uint8(x - 1)
			if r.ReadByte(L) != want {
				t.Fatalf("DEC 0x%02X: expected 0x%02X, got 0x%02X", x, want, r.ReadByte(L))
			}
			assert.Equal(t, want == 0, r.Flag(FlagZero), "DEC 0x%02X zero", x)
			assert.True(t, r.Flag(FlagSubtract), "DEC 0x%02X subtract", x)
			assert.Equal(t, x&0xF == 0, r.Flag(FlagHalfCarry), "DEC 0x%02X half carry", x)
			assert.Equal(t, carry, r.Flag(FlagCarry), "DEC 0x%02X carry", x)
		}
	}
}

func TestRegisters_Subtract(t *testing.T) {
	r := NewRegisters()
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			result := r.Subtract(uint8(a), uint8(b))
			if result != uint8(a-b) ||
				r.Flag(FlagZero) != (uint8(a-b) == 0) ||
				!r.Flag(FlagSubtract) ||
				r.Flag(FlagHalfCarry) != (a&0xF < b&0xF) ||
				r.Flag(FlagCarry) != (a < b) {
				t.Fatalf("%02X - %02X: got %02X with F=%08b", a, b, result, r.ReadByte(F))
			}
		}
	}
}

func TestRegisters_ShiftLeft(t *testing.T) {
	tests := []struct {
		value     uint8
		carryIn   bool
		want      uint8
		wantZero  bool
		wantCarry bool
	}{
		{0x00, false, 0x00, true, false},
		{0x00, true, 0x01, false, false},
		{0x80, false, 0x00, true, true},
		{0x80, true, 0x01, false, true},
		{0x95, false, 0x2A, false, true},
		{0x4F, true, 0x9F, false, false},
	}
	for _, test := range tests {
		r := NewRegisters()
		r.SetFlag(FlagSubtract, true)
		r.SetFlag(FlagHalfCarry, true)

		got := r.ShiftLeft(test.value, test.carryIn)
		assert.Equal(t, test.want, got, "%02X", test.value)
		assert.Equal(t, test.wantZero, r.Flag(FlagZero), "%02X zero", test.value)
		assert.Equal(t, test.wantCarry, r.Flag(FlagCarry), "%02X carry", test.value)
		assert.True(t, r.Flag(FlagSubtract) && r.Flag(FlagHalfCarry), "N and H are not affected")
	}
}
