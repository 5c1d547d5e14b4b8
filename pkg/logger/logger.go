// Package logger provides logging functionality for the aster application.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted informational message. It is only visible in verbose mode.
	Logf(format string, args ...interface{})

	// Warnf logs a formatted warning. Warnings are visible unless the logger is quiet.
	Warnf(format string, args ...interface{})
}

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Warnf does nothing for noop logger.
func (n *noopLogger) Warnf(_ string, _ ...interface{}) {}

// writerLogger is a thread-safe logger writing informational messages to out
// and warnings to errOut.
type writerLogger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	verbose bool
}

// NewWarnLogger creates a logger that only reports warnings on stderr.
func NewWarnLogger() Logger {
	return NewWriterLogger(io.Discard, os.Stderr, false)
}

// NewDefaultLogger creates a verbose logger writing to stdout and stderr.
func NewDefaultLogger() Logger {
	return NewWriterLogger(os.Stdout, os.Stderr, true)
}

// NewWriterLogger creates a logger on the given writers.
func NewWriterLogger(out, errOut io.Writer, verbose bool) Logger {
	return &writerLogger{out: out, errOut: errOut, verbose: verbose}
}

// Logf writes a formatted message when the logger is verbose.
func (l *writerLogger) Logf(format string, args ...interface{}) {
	if !l.verbose {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Warnf writes a styled warning line.
func (l *writerLogger) Warnf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.errOut, warnStyle.Render("warning:")+" "+fmt.Sprintf(format, args...))
}
