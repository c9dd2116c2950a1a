package cpu

import "fmt"

func generateBitInstructions() {
	// loop through each register (B, C, D, E, H, L, (HL), A)
	for i := uint8(0); i < 8; i++ {
		i := i

		// 0x10 - 0x17 - RL r
		DefineInstructionCB(0x10|i, fmt.Sprintf("RL %s", registerName(i)), func(c *CPU) error {
			v, err := c.readRegister(i)
			if err != nil {
				return err
			}
			return c.writeRegister(i, c.ShiftLeft(v, c.Flag(FlagCarry)))
		})

		// 0x40 - 0x7F - BIT b, r
		for b := uint8(0); b < 8; b++ {
			b := b
			DefineInstructionCB(0x40|b<<3|i, fmt.Sprintf("BIT %d, %s", b, registerName(i)), func(c *CPU) error {
				v, err := c.readRegister(i)
				if err != nil {
					return err
				}
				c.bit(b, v)
				return nil
			})
		}
	}
}
