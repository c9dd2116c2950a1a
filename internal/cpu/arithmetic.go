package cpu

import "fmt"

func generateArithmeticInstructions() {
	for i := uint8(0); i < 8; i++ {
		i := i

		// INC (HL) and DEC (HL) are not supported
		if i != hlIndirect {
			reg := registerIndex[i]
			// 0x04, 0x0C, ..., 0x3C - INC r
			DefineInstruction(0x04|i<<3, fmt.Sprintf("INC %s", reg), func(c *CPU) error {
				c.IncrementByte(reg)
				return nil
			})
			// 0x05, 0x0D, ..., 0x3D - DEC r
			DefineInstruction(0x05|i<<3, fmt.Sprintf("DEC %s", reg), func(c *CPU) error {
				c.DecrementByte(reg)
				return nil
			})
		}

		// 0x90 - 0x97 - SUB r
		DefineInstruction(0x90|i, fmt.Sprintf("SUB %s", registerName(i)), func(c *CPU) error {
			v, err := c.readRegister(i)
			if err != nil {
				return err
			}
			c.WriteByte(A, c.Subtract(c.ReadByte(A), v))
			return nil
		})
		// 0xB8 - 0xBF - CP r
		DefineInstruction(0xB8|i, fmt.Sprintf("CP %s", registerName(i)), func(c *CPU) error {
			v, err := c.readRegister(i)
			if err != nil {
				return err
			}
			c.Subtract(c.ReadByte(A), v)
			return nil
		})
	}

	// 0xD6 - SUB d8
	DefineInstruction(0xD6, "SUB d8", func(c *CPU) error {
		v, err := c.readOperand()
		if err != nil {
			return err
		}
		c.WriteByte(A, c.Subtract(c.ReadByte(A), v))
		return nil
	})
	// 0xFE - CP d8
	DefineInstruction(0xFE, "CP d8", func(c *CPU) error {
		v, err := c.readOperand()
		if err != nil {
			return err
		}
		c.Subtract(c.ReadByte(A), v)
		return nil
	})

	// 0x03, 0x13, 0x23, 0x33 - INC rr
	// 0x0B, 0x1B, 0x2B, 0x3B - DEC rr
	for i := uint8(0); i < 4; i++ {
		i := i
		DefineInstruction(0x03|i<<4, fmt.Sprintf("INC %s", pairName(i)), func(c *CPU) error {
			if i == 3 {
				c.IncrementSP(1)
			} else {
				c.IncrementWord(pairIndex[i])
			}
			return nil
		})
		DefineInstruction(0x0B|i<<4, fmt.Sprintf("DEC %s", pairName(i)), func(c *CPU) error {
			if i == 3 {
				c.DecrementSP(1)
			} else {
				c.DecrementWord(pairIndex[i])
			}
			return nil
		})
	}
}
