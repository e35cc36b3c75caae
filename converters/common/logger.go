package common

import (
	"io"
	"log"
)

const logPrefix = "[CSVTOSQL] "

// Logger writes conversion diagnostics. Verbose messages are dropped unless
// verbose mode is enabled. A nil *Logger discards everything.
type Logger struct {
	l       *log.Logger
	verbose bool
}

// NewLogger creates a Logger writing to w.
func NewLogger(w io.Writer, verbose bool) *Logger {
	return &Logger{
		l:       log.New(w, logPrefix, 0),
		verbose: verbose,
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *Logger) Verbose(format string, args ...interface{}) {
	if l == nil || !l.verbose {
		return
	}
	l.l.Printf(format, args...)
}

// Info logs informational messages about normal operations.
func (l *Logger) Info(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.l.Printf(format, args...)
}

// Error logs error messages.
func (l *Logger) Error(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.l.Printf("ERROR: "+format, args...)
}
