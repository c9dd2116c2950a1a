package cpu

import (
	"errors"
	"fmt"
)

// ErrIllegalOpcode is matched by every IllegalOpcodeError.
var ErrIllegalOpcode = errors.New("cpu: illegal opcode")

// IllegalOpcodeError is returned when an opcode has no entry
// in the primary or special instruction set.
type IllegalOpcodeError struct {
	Opcode  uint8
	Special bool
}

func (e *IllegalOpcodeError) Error() string {
	if e.Special {
		return fmt.Sprintf("cpu: illegal opcode CB %02X", e.Opcode)
	}
	return fmt.Sprintf("cpu: illegal opcode %02X", e.Opcode)
}

func (e *IllegalOpcodeError) Is(err error) bool {
	return err == ErrIllegalOpcode
}

// StepError wraps any failure during a step with the address
// the instruction was fetched from.
type StepError struct {
	PC       uint16
	Opcode   uint8
	Prefixed bool
	Err      error
}

func (e *StepError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: 0x%04X CB %02X: %v", e.PC, e.Opcode, e.Err)
	}
	return fmt.Sprintf("cpu: 0x%04X %02X: %v", e.PC, e.Opcode, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
