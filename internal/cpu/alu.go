package cpu

import "github.com/thelolagemann/sm83/internal/types"

// IncrementByte increments the register s.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (r *Registers) IncrementByte(s Slot) {
	old := r.slots[s]
	r.WriteByte(s, old+1)

	r.SetFlag(FlagZero, old+1 == 0)
	r.SetFlag(FlagSubtract, false)
	r.SetFlag(FlagHalfCarry, ((old&types.LowNibble)+1)&0x10 != 0)
}

// DecrementByte decrements the register s.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (r *Registers) DecrementByte(s Slot) {
	old := r.slots[s]
	r.WriteByte(s, old-1)

	r.SetFlag(FlagZero, old-1 == 0)
	r.SetFlag(FlagSubtract, true)
	r.SetFlag(FlagHalfCarry, ((old&types.LowNibble)-1)&0x10 != 0)
}

// Subtract returns a - b. It is used by both SUB and CP, the
// latter discarding the result.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow (a < b).
func (r *Registers) Subtract(a, b uint8) uint8 {
	result := a - b
	r.setFlags(result == 0, true, a&types.LowNibble < b&types.LowNibble, a < b)
	return result
}

// ShiftLeft rotates value left through the carry: carryIn is
// shifted into bit 0, and bit 7 becomes the new carry.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Not affected.
//	C - Contains old bit 7 data.
func (r *Registers) ShiftLeft(value uint8, carryIn bool) uint8 {
	result := value << 1
	if carryIn {
		result |= types.Bit0
	}

	r.SetFlag(FlagCarry, value&types.Bit7 != 0)
	r.SetFlag(FlagZero, result == 0)
	return result
}
