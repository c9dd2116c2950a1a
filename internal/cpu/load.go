package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
)

// pairIndex maps the 2-bit register pair field of the 16-bit
// loads, increments and decrements. Index 3 is SP.
var pairIndex = [4]Pair{BC, DE, HL, 0}

// stackPairIndex maps the 2-bit register pair field of PUSH
// and POP, where index 3 is AF.
var stackPairIndex = [4]Pair{BC, DE, HL, AF}

func pairName(index uint8) string {
	if index == 3 {
		return "SP"
	}
	return pairIndex[index].String()
}

func generateLoadInstructions() {
	// 0x40 - 0x7F - LD r, r'
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			// LD (HL), (HL) is HALT
			if dst == hlIndirect && src == hlIndirect {
				continue
			}
			dst, src := dst, src
			DefineInstruction(0x40|dst<<3|src, fmt.Sprintf("LD %s, %s", registerName(dst), registerName(src)), func(c *CPU) error {
				v, err := c.readRegister(src)
				if err != nil {
					return err
				}
				return c.writeRegister(dst, v)
			})
		}
	}

	// 0x06, 0x0E, ..., 0x3E - LD r, d8
	for i := uint8(0); i < 8; i++ {
		i := i
		DefineInstruction(0x06|i<<3, fmt.Sprintf("LD %s, d8", registerName(i)), func(c *CPU) error {
			v, err := c.readOperand()
			if err != nil {
				return err
			}
			return c.writeRegister(i, v)
		})
	}

	// 0x01, 0x11, 0x21, 0x31 - LD rr, d16
	for i := uint8(0); i < 4; i++ {
		i := i
		DefineInstruction(0x01|i<<4, fmt.Sprintf("LD %s, d16", pairName(i)), func(c *CPU) error {
			v, err := c.readOperandWord()
			if err != nil {
				return err
			}
			if i == 3 {
				c.SetSP(v)
			} else {
				c.WriteWord(pairIndex[i], v)
			}
			return nil
		})
	}

	// 0x02 - LD (BC), A
	DefineInstruction(0x02, "LD (BC), A", func(c *CPU) error {
		return c.writeByte(c.ReadWord(BC), c.ReadByte(A))
	})
	// 0x12 - LD (DE), A
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU) error {
		return c.writeByte(c.ReadWord(DE), c.ReadByte(A))
	})
	// 0x0A - LD A, (BC)
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU) error {
		return c.loadA(c.ReadWord(BC))
	})
	// 0x1A - LD A, (DE)
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU) error {
		return c.loadA(c.ReadWord(DE))
	})

	// 0x22 - LD (HL+), A
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU) error {
		if err := c.writeByte(c.ReadWord(HL), c.ReadByte(A)); err != nil {
			return err
		}
		c.IncrementWord(HL)
		return nil
	})
	// 0x2A - LD A, (HL+)
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU) error {
		if err := c.loadA(c.ReadWord(HL)); err != nil {
			return err
		}
		c.IncrementWord(HL)
		return nil
	})
	// 0x32 - LD (HL-), A
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU) error {
		if err := c.writeByte(c.ReadWord(HL), c.ReadByte(A)); err != nil {
			return err
		}
		c.DecrementWord(HL)
		return nil
	})
	// 0x3A - LD A, (HL-)
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU) error {
		if err := c.loadA(c.ReadWord(HL)); err != nil {
			return err
		}
		c.DecrementWord(HL)
		return nil
	})

	// 0x08 - LD (a16), SP
	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU) error {
		address, err := c.readOperandWord()
		if err != nil {
			return err
		}
		return c.bus.WriteWord(address, c.SP())
	})
	// 0xEA - LD (a16), A
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU) error {
		address, err := c.readOperandWord()
		if err != nil {
			return err
		}
		return c.writeByte(address, c.ReadByte(A))
	})
	// 0xFA - LD A, (a16)
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU) error {
		address, err := c.readOperandWord()
		if err != nil {
			return err
		}
		return c.loadA(address)
	})

	// 0xE0 - LDH (a8), A
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU) error {
		offset, err := c.readOperand()
		if err != nil {
			return err
		}
		return c.writeByte(types.IOStart+uint16(offset), c.ReadByte(A))
	})
	// 0xF0 - LDH A, (a8)
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU) error {
		offset, err := c.readOperand()
		if err != nil {
			return err
		}
		return c.loadA(types.IOStart + uint16(offset))
	})
	// 0xE2 - LD (C), A
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU) error {
		return c.writeByte(types.IOStart+uint16(c.ReadByte(C)), c.ReadByte(A))
	})
	// 0xF2 - LD A, (C)
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU) error {
		return c.loadA(types.IOStart + uint16(c.ReadByte(C)))
	})

	// 0xC5, 0xD5, 0xE5, 0xF5 - PUSH rr
	// 0xC1, 0xD1, 0xE1, 0xF1 - POP rr
	for i := uint8(0); i < 4; i++ {
		pair := stackPairIndex[i]
		DefineInstruction(0xC5|i<<4, fmt.Sprintf("PUSH %s", pair), func(c *CPU) error {
			return c.push(c.ReadWord(pair))
		})
		DefineInstruction(0xC1|i<<4, fmt.Sprintf("POP %s", pair), func(c *CPU) error {
			v, err := c.pop()
			if err != nil {
				return err
			}
			c.WriteWord(pair, v)
			return nil
		})
	}
}

// loadA loads A with the byte at address.
func (c *CPU) loadA(address uint16) error {
	v, err := c.readByte(address)
	if err != nil {
		return err
	}
	c.WriteByte(A, v)
	return nil
}
