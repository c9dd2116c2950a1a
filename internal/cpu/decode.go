package cpu

// Operation is a decoded instruction. OpPrefix is the only
// operation without a handler: it marks that the next byte is
// decoded against the special instruction set.
type Operation struct {
	Name string
	fn   func(*CPU) error
}

func (o *Operation) String() string {
	return o.Name
}

// OpPrefix is decoded from 0xCB in the primary instruction set.
var OpPrefix = &Operation{Name: "PREFIX CB"}

var (
	// InstructionSet is the primary instruction set.
	InstructionSet [256]*Operation
	// InstructionSetCB is the special instruction set, which
	// follows the 0xCB prefix.
	InstructionSetCB [256]*Operation
)

// DefineInstruction defines the instruction in the InstructionSet,
// with the provided opcode.
func DefineInstruction(opcode uint8, name string, fn func(*CPU) error) {
	InstructionSet[opcode] = &Operation{Name: name, fn: fn}
}

// DefineInstructionCB defines the instruction in the InstructionSetCB,
// with the provided opcode.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU) error) {
	InstructionSetCB[opcode] = &Operation{Name: name, fn: fn}
}

// Decode returns the operation for opcode in the primary
// instruction set.
func Decode(opcode uint8) (*Operation, error) {
	if op := InstructionSet[opcode]; op != nil {
		return op, nil
	}
	return nil, &IllegalOpcodeError{Opcode: opcode}
}

// DecodeSpecial returns the operation for opcode in the
// special instruction set.
func DecodeSpecial(opcode uint8) (*Operation, error) {
	if op := InstructionSetCB[opcode]; op != nil {
		return op, nil
	}
	return nil, &IllegalOpcodeError{Opcode: opcode, Special: true}
}

func init() {
	InstructionSet[0xCB] = OpPrefix
}
