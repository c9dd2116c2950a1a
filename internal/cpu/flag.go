package cpu

import "github.com/thelolagemann/sm83/pkg/utils"

// Flag is the bit position of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flag returns true if the given flag is set.
func (r *Registers) Flag(flag Flag) bool {
	return utils.TestBit(r.slots[F], flag)
}

// SetFlag sets or clears the given flag, leaving the
// other flags untouched.
func (r *Registers) SetFlag(flag Flag, on bool) {
	r.WriteByte(F, utils.AssignBit(r.slots[F], flag, on))
}

// setFlags sets all four flags at once.
func (r *Registers) setFlags(zero, subtract, halfCarry, carry bool) {
	r.SetFlag(FlagZero, zero)
	r.SetFlag(FlagSubtract, subtract)
	r.SetFlag(FlagHalfCarry, halfCarry)
	r.SetFlag(FlagCarry, carry)
}
