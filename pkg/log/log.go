// Package log provides the logger used throughout the emulator.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a logrus backed Logger writing to stderr. When
// debug is set, Debugf output is included.
func New(debug bool) Logger {
	return NewWithWriter(os.Stderr, debug)
}

// NewWithWriter is the same as New, but writes to w.
func NewWithWriter(w io.Writer, debug bool) Logger {
	l := logrus.New()
	l.SetOutput(w)
	if debug {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
