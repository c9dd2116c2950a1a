package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/utils"
)

// Slot is the index of an 8-bit register in the register file.
type Slot uint8

const (
	A Slot = iota
	F
	B
	C
	D
	E
	H
	L
)

var slotNames = [8]string{"A", "F", "B", "C", "D", "E", "H", "L"}

func (s Slot) String() string {
	return slotNames[s&7]
}

// Pair is the index of the high register of a 16-bit register
// pair. The low register always follows it.
type Pair uint8

const (
	AF = Pair(A)
	BC = Pair(B)
	DE = Pair(D)
	HL = Pair(H)
)

func (p Pair) String() string {
	return slotNames[p&7] + slotNames[(p+1)&7]
}

// Registers is the register file of the CPU. The 8-bit registers
// are stored in a single array, so that each pair is just a view
// over two adjacent registers, with the high byte first.
type Registers struct {
	slots [8]uint8

	// SP is the stack pointer, it points to the top of the stack.
	sp uint16
	// PC is the program counter, it points to the next instruction to be executed.
	pc uint16
}

// NewRegisters returns a zeroed register file.
func NewRegisters() *Registers {
	return &Registers{}
}

// ReadByte returns the value of the register s.
func (r *Registers) ReadByte(s Slot) uint8 {
	return r.slots[s]
}

// WriteByte sets the register s to value. The lower nibble of
// the F register always reads as 0.
func (r *Registers) WriteByte(s Slot, value uint8) {
	if s == F {
		value &= types.HighNibble
	}
	r.slots[s] = value
}

// ReadWord returns the value of the register pair p.
func (r *Registers) ReadWord(p Pair) uint16 {
	return utils.BytesToUint16(r.slots[p], r.slots[p+1])
}

// WriteWord sets the register pair p to value.
func (r *Registers) WriteWord(p Pair, value uint16) {
	high, low := utils.Uint16ToBytes(value)
	r.WriteByte(Slot(p), high)
	r.WriteByte(Slot(p+1), low)
}

// IncrementWord increments the register pair p, without
// affecting any flags.
func (r *Registers) IncrementWord(p Pair) {
	r.WriteWord(p, r.ReadWord(p)+1)
}

// DecrementWord decrements the register pair p, without
// affecting any flags.
func (r *Registers) DecrementWord(p Pair) {
	r.WriteWord(p, r.ReadWord(p)-1)
}

func (r *Registers) PC() uint16 {
	return r.pc
}

func (r *Registers) SetPC(value uint16) {
	r.pc = value
}

// IncrementPC adds the signed delta to the program counter.
func (r *Registers) IncrementPC(delta int16) {
	r.pc += uint16(delta)
}

func (r *Registers) SP() uint16 {
	return r.sp
}

func (r *Registers) SetSP(value uint16) {
	r.sp = value
}

func (r *Registers) IncrementSP(n uint16) {
	r.sp += n
}

func (r *Registers) DecrementSP(n uint16) {
	r.sp -= n
}

func (r *Registers) String() string {
	return fmt.Sprintf("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X PC: %04X",
		r.slots[A], r.slots[F], r.slots[B], r.slots[C], r.slots[D], r.slots[E], r.slots[H], r.slots[L], r.sp, r.pc)
}

var _ types.Stater = (*Registers)(nil)

func (r *Registers) Load(s *types.State) {
	for i := range r.slots {
		r.WriteByte(Slot(i), s.Read8())
	}
	r.sp = s.Read16()
	r.pc = s.Read16()
}

func (r *Registers) Save(s *types.State) {
	for _, v := range r.slots {
		s.Write8(v)
	}
	s.Write16(r.sp)
	s.Write16(r.pc)
}
