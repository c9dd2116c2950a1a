package trace

import (
	"io"

	"github.com/fatih/color"
	"github.com/thelolagemann/sm83/pkg/log"
)

type logSink struct {
	log log.Logger
}

// NewLogSink returns a Sink writing every event to l at debug level.
func NewLogSink(l log.Logger) Sink {
	return &logSink{log: l}
}

func (s *logSink) Trace(e Event) {
	s.log.Debugf("%s", e)
}

// ConsoleSink writes events to a terminal, highlighting the
// program counter and prefixed instructions.
type ConsoleSink struct {
	w      io.Writer
	pc     *color.Color
	prefix *color.Color
	name   *color.Color
}

// NewConsoleSink returns a ConsoleSink writing to w. Colours are
// disabled automatically when w is not a terminal.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{
		w:      w,
		pc:     color.New(color.FgYellow, color.Bold),
		prefix: color.New(color.FgMagenta),
		name:   color.New(color.FgCyan),
	}
}

func (c *ConsoleSink) Trace(e Event) {
	c.pc.Fprintf(c.w, "%04X ", e.PC)
	if e.Prefixed {
		c.prefix.Fprintf(c.w, "CB %02X ", e.Opcode)
	} else {
		c.prefix.Fprintf(c.w, "   %02X ", e.Opcode)
	}
	c.name.Fprintln(c.w, e.Name)
}
