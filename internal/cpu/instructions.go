package cpu

import "github.com/thelolagemann/sm83/internal/types"

// hlIndirect is the register index of the memory operand (HL).
const hlIndirect = 6

// registerIndex maps the 3-bit register field of an opcode to a
// register. Index 6 is the memory operand (HL), not a register.
var registerIndex = [8]Slot{B, C, D, E, H, L, 0, A}

// registerName returns the name of the register at index.
func registerName(index uint8) string {
	if index == hlIndirect {
		return "(HL)"
	}
	return registerIndex[index].String()
}

// readRegister returns the register at index, or the byte
// addressed by HL for (HL).
func (c *CPU) readRegister(index uint8) (uint8, error) {
	if index == hlIndirect {
		return c.readByte(c.ReadWord(HL))
	}
	return c.ReadByte(registerIndex[index]), nil
}

// writeRegister sets the register at index, or the byte
// addressed by HL for (HL).
func (c *CPU) writeRegister(index uint8, value uint8) error {
	if index == hlIndirect {
		return c.writeByte(c.ReadWord(HL), value)
	}
	c.WriteByte(registerIndex[index], value)
	return nil
}

// condition is a flag test used by the conditional jumps,
// calls and returns.
type condition struct {
	name string
	flag Flag
	want bool
}

// conditions is indexed by the 2-bit condition field of an opcode.
var conditions = [4]condition{
	{"NZ", FlagZero, false},
	{"Z", FlagZero, true},
	{"NC", FlagCarry, false},
	{"C", FlagCarry, true},
}

func (c *CPU) test(cc condition) bool {
	return c.Flag(cc.flag) == cc.want
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) error { return nil })

	// 0x17 - RLA
	DefineInstruction(0x17, "RLA", func(c *CPU) error {
		c.WriteByte(A, c.ShiftLeft(c.ReadByte(A), c.Flag(FlagCarry)))
		return nil
	})

	// 0xAF - XOR A, which only ever yields zero
	DefineInstruction(0xAF, "XOR A", func(c *CPU) error {
		c.WriteByte(A, 0)
		c.SetFlag(FlagZero, true)
		return nil
	})

	generateLoadInstructions()
	generateJumpInstructions()
	generateArithmeticInstructions()
	generateBitInstructions()
}

// bit tests bit b of value.
//
//	BIT b, r
//	b = 0 - 7, r = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if bit b of value is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) bit(b uint8, value uint8) {
	c.SetFlag(FlagZero, value&(types.Bit0<<b) == 0)
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, true)
}
