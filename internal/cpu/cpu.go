// Package cpu provides the SM83 CPU core: the register file, the
// instruction sets and the fetch, decode and execute loop.
package cpu

import (
	"github.com/thelolagemann/sm83/pkg/trace"
	"github.com/thelolagemann/sm83/pkg/utils"
)

// Bus is the memory the CPU executes from. Every access may fail,
// with the error surfacing from Step.
type Bus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, value uint8) error
	ReadWord(address uint16) (uint16, error)
	WriteWord(address uint16, value uint16) error
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// Registers contains the 8-bit registers, the register pairs,
	// the stack pointer and the program counter.
	*Registers

	// Tracer, if set, receives every decoded instruction.
	Tracer trace.Sink

	bus   Bus
	steps uint64
}

// NewCPU creates a new CPU instance executing from bus, with
// all registers zeroed.
func NewCPU(bus Bus) *CPU {
	return &CPU{
		Registers: NewRegisters(),
		bus:       bus,
	}
}

// Steps returns the number of instructions executed.
func (c *CPU) Steps() uint64 {
	return c.steps
}

// Step executes a single instruction. A prefixed instruction is
// decoded and executed in the same step as its prefix.
//
// Any error is returned as a *StepError. Changes made to the
// registers and memory before the failure are kept.
func (c *CPU) Step() error {
	pc := c.PC()
	opcode, err := c.readOperand()
	if err != nil {
		return &StepError{PC: pc, Err: err}
	}

	op, err := Decode(opcode)
	if err != nil {
		return &StepError{PC: pc, Opcode: opcode, Err: err}
	}

	// do we need to run a CB instruction?
	prefixed := op == OpPrefix
	if prefixed {
		if opcode, err = c.readOperand(); err != nil {
			return &StepError{PC: pc, Opcode: 0xCB, Err: err}
		}
		if op, err = DecodeSpecial(opcode); err != nil {
			return &StepError{PC: pc, Opcode: opcode, Prefixed: true, Err: err}
		}
	}

	if c.Tracer != nil {
		c.Tracer.Trace(trace.Event{
			Step:     c.steps,
			PC:       pc,
			Opcode:   opcode,
			Prefixed: prefixed,
			Name:     op.Name,
		})
	}
	c.steps++

	if err := op.fn(c); err != nil {
		return &StepError{PC: pc, Opcode: opcode, Prefixed: prefixed, Err: err}
	}
	return nil
}

// readOperand reads the byte at PC and advances PC.
func (c *CPU) readOperand() (uint8, error) {
	value, err := c.bus.Read(c.PC())
	if err != nil {
		return 0, err
	}
	c.IncrementPC(1)
	return value, nil
}

// readOperandWord reads the little-endian word at PC and
// advances PC past it.
func (c *CPU) readOperandWord() (uint16, error) {
	low, err := c.readOperand()
	if err != nil {
		return 0, err
	}
	high, err := c.readOperand()
	if err != nil {
		return 0, err
	}
	return utils.BytesToUint16(high, low), nil
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) (uint8, error) {
	return c.bus.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) error {
	return c.bus.Write(addr, val)
}

// push stores value in the word at SP-1, then moves SP down
// by two.
func (c *CPU) push(value uint16) error {
	if err := c.bus.WriteWord(c.SP()-1, value); err != nil {
		return err
	}
	c.DecrementSP(2)
	return nil
}

// pop loads the word at SP+1, then moves SP up by two.
func (c *CPU) pop() (uint16, error) {
	value, err := c.bus.ReadWord(c.SP() + 1)
	if err != nil {
		return 0, err
	}
	c.IncrementSP(2)
	return value, nil
}
