package types

import (
	"errors"
	"os"
)

// ErrStateTruncated is returned by State.Err when a read
// went past the end of the state data.
var ErrStateTruncated = errors.New("state: truncated")

// Resettable is an interface that allows an object to be reset.
type Resettable interface {
	Reset() // Reset the state of the object
}

// State is a flat little-endian byte stream used to save and
// load the register file and the writable memory regions.
//
// Reads past the end of the data return zero and latch
// ErrStateTruncated, so a sequence of reads only needs a
// single error check at the end.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
	err          error
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// ResetPosition resets the read position, allowing the
// state to be read from the beginning.
func (s *State) ResetPosition() {
	s.readPosition = 0
	s.err = nil
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
}

// take returns the next n bytes, or nil once the state
// has been exhausted.
func (s *State) take(n int) []byte {
	if s.err != nil {
		return nil
	}
	if s.readPosition+n > len(s.raw) {
		s.err = ErrStateTruncated
		return nil
	}
	b := s.raw[s.readPosition : s.readPosition+n]
	s.readPosition += n
	return b
}

func (s *State) Read8() uint8 {
	b := s.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (s *State) Read16() uint16 {
	b := s.take(2)
	if b == nil {
		return 0
	}
	return uint16(b[0]) | uint16(b[1])<<8
}

func (s *State) ReadBool() bool {
	return s.Read8() != 0
}

// ReadData fills p with the next len(p) bytes of the state.
func (s *State) ReadData(p []byte) {
	if b := s.take(len(p)); b != nil {
		copy(p, b)
	}
}

// Err returns the first error encountered while reading.
func (s *State) Err() error {
	return s.err
}

func (s *State) SaveToFile(filename string) error {
	return os.WriteFile(filename, s.raw, 0644)
}

func (s *State) Bytes() []byte {
	return s.raw
}
