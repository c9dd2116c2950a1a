// Package trace carries the per-instruction trace events emitted by
// the CPU. Tracing is purely observational: a Sink can never change
// the outcome of an instruction.
package trace

import (
	"fmt"
	"sync"
)

// Event describes a single executed instruction.
type Event struct {
	// Step is the number of instructions executed before this one.
	Step uint64 `json:"step"`
	// PC is the address the opcode was fetched from.
	PC uint16 `json:"pc"`
	// Opcode is the opcode that was dispatched. For prefixed
	// instructions this is the second byte.
	Opcode uint8 `json:"opcode"`
	// Prefixed is set when the instruction was decoded from the
	// special (0xCB prefixed) opcode table.
	Prefixed bool `json:"prefixed"`
	// Name is the mnemonic of the decoded operation.
	Name string `json:"name"`
}

func (e Event) String() string {
	if e.Prefixed {
		return fmt.Sprintf("%04X: CB %02X %s", e.PC, e.Opcode, e.Name)
	}
	return fmt.Sprintf("%04X: %02X    %s", e.PC, e.Opcode, e.Name)
}

// Sink consumes trace events.
type Sink interface {
	Trace(Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Event)

func (f SinkFunc) Trace(e Event) { f(e) }

type multi []Sink

func (m multi) Trace(e Event) {
	for _, s := range m {
		s.Trace(e)
	}
}

// Multi fans an event out to every non-nil sink.
func Multi(sinks ...Sink) Sink {
	var m multi
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	if len(m) == 1 {
		return m[0]
	}
	return m
}

// Recorder keeps the most recent events in a ring buffer, which
// is useful to print the instructions leading up to a fault.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	next   int
	full   bool
}

// NewRecorder returns a Recorder holding at most size events.
func NewRecorder(size int) *Recorder {
	if size < 1 {
		size = 1
	}
	return &Recorder{events: make([]Event, size)}
}

func (r *Recorder) Trace(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events[r.next] = e
	r.next++
	if r.next == len(r.events) {
		r.next = 0
		r.full = true
	}
}

// Events returns the recorded events, oldest first.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.full {
		return append([]Event(nil), r.events[:r.next]...)
	}
	out := make([]Event, 0, len(r.events))
	out = append(out, r.events[r.next:]...)
	return append(out, r.events[:r.next]...)
}
