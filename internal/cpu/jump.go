package cpu

import "fmt"

func generateJumpInstructions() {
	// 0xC3 - JP a16
	DefineInstruction(0xC3, "JP a16", func(c *CPU) error {
		return c.jumpAbsolute(true)
	})
	// 0x18 - JR r8
	DefineInstruction(0x18, "JR r8", func(c *CPU) error {
		return c.jumpRelative(true)
	})
	// 0xCD - CALL a16
	DefineInstruction(0xCD, "CALL a16", func(c *CPU) error {
		return c.call(true)
	})
	// 0xC9 - RET
	DefineInstruction(0xC9, "RET", func(c *CPU) error {
		return c.ret(true)
	})

	// conditional variants, in the order NZ, Z, NC, C
	for i := uint8(0); i < 4; i++ {
		cc := conditions[i]

		// 0xC2, 0xCA, 0xD2, 0xDA - JP cc, a16
		DefineInstruction(0xC2|i<<3, fmt.Sprintf("JP %s, a16", cc.name), func(c *CPU) error {
			return c.jumpAbsolute(c.test(cc))
		})
		// 0x20, 0x28, 0x30, 0x38 - JR cc, r8
		DefineInstruction(0x20|i<<3, fmt.Sprintf("JR %s, r8", cc.name), func(c *CPU) error {
			return c.jumpRelative(c.test(cc))
		})
		// 0xC4, 0xCC, 0xD4, 0xDC - CALL cc, a16
		DefineInstruction(0xC4|i<<3, fmt.Sprintf("CALL %s, a16", cc.name), func(c *CPU) error {
			return c.call(c.test(cc))
		})
		// 0xC0, 0xC8, 0xD0, 0xD8 - RET cc
		DefineInstruction(0xC0|i<<3, fmt.Sprintf("RET %s", cc.name), func(c *CPU) error {
			return c.ret(c.test(cc))
		})
	}
}

// jumpAbsolute reads the immediate address and jumps to it if
// condition is true. The immediate is always consumed.
//
//	JP nn
//	JP cc, nn
func (c *CPU) jumpAbsolute(condition bool) error {
	address, err := c.readOperandWord()
	if err != nil {
		return err
	}
	if condition {
		c.SetPC(address)
	}
	return nil
}

// jumpRelative reads the signed immediate offset and adds it
// to PC if condition is true.
//
//	JR n
//	JR cc, n
func (c *CPU) jumpRelative(condition bool) error {
	offset, err := c.readOperand()
	if err != nil {
		return err
	}
	if condition {
		c.IncrementPC(int16(int8(offset)))
	}
	return nil
}

// call reads the immediate address and, if condition is true,
// pushes the address of the next instruction and jumps.
//
//	CALL nn
//	CALL cc, nn
func (c *CPU) call(condition bool) error {
	address, err := c.readOperandWord()
	if err != nil {
		return err
	}
	if !condition {
		return nil
	}
	if err := c.push(c.PC()); err != nil {
		return err
	}
	c.SetPC(address)
	return nil
}

// ret pops the return address into PC if condition is true.
//
//	RET
//	RET cc
func (c *CPU) ret(condition bool) error {
	if !condition {
		return nil
	}
	address, err := c.pop()
	if err != nil {
		return err
	}
	c.SetPC(address)
	return nil
}
