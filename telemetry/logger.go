// Package telemetry provides structured logging and run metrics.
package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog with the component field pre-set.
type Logger struct {
	zerolog.Logger
}

// NewLogger creates a console logger on stderr for the given component.
// Progress output goes to stderr so stdout stays clean for piping.
func NewLogger(component string, debug bool) *Logger {
	return newLogger(component, debug, zerolog.ConsoleWriter{Out: os.Stderr})
}

func newLogger(component string, debug bool, out io.Writer) *Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()

	return &Logger{Logger: logger}
}
