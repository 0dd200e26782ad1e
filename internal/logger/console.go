// Package logger provides console output for flatten runs.
//
// The ConsoleLogger separates informational output from error output and
// supports a quiet mode that drops informational messages while always
// emitting errors. Color is enabled automatically when the error stream
// is a terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// colorScheme defines the colors used for console messages.
// Yellow: warnings. Red: errors. Informational output is uncolored.
type colorScheme struct {
	warn *color.Color
	fail *color.Color
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		warn: color.New(color.FgYellow),
		fail: color.New(color.FgRed),
	}
}

// ConsoleLogger writes informational messages to one writer and warnings
// and errors to another. It is safe for concurrent use.
type ConsoleLogger struct {
	out    io.Writer
	errOut io.Writer
	quiet  bool
	mutex  sync.Mutex
	scheme *colorScheme
	color  bool
}

// NewConsoleLogger creates a ConsoleLogger. Informational output goes to
// out, warnings and errors to errOut. With quiet set, informational
// messages are discarded; warnings and errors are always written.
func NewConsoleLogger(out, errOut io.Writer, quiet bool) *ConsoleLogger {
	return &ConsoleLogger{
		out:    out,
		errOut: errOut,
		quiet:  quiet,
		scheme: newColorScheme(),
		color:  isTerminal(errOut),
	}
}

// isTerminal reports whether the writer is a terminal that supports
// colors. NO_COLOR is honored through the color library.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Infof logs an informational message. Suppressed in quiet mode.
func (cl *ConsoleLogger) Infof(format string, args ...interface{}) {
	if cl.quiet || cl.out == nil {
		return
	}
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	fmt.Fprintf(cl.out, format+"\n", args...)
}

// Warnf logs a warning to the error stream, in yellow on terminals.
// Warnings are not suppressed by quiet mode.
func (cl *ConsoleLogger) Warnf(format string, args ...interface{}) {
	cl.writeErr(cl.scheme.warn, format, args...)
}

// Errorf logs an error to the error stream, in red on terminals. Errors
// are never suppressed.
func (cl *ConsoleLogger) Errorf(format string, args ...interface{}) {
	cl.writeErr(cl.scheme.fail, format, args...)
}

func (cl *ConsoleLogger) writeErr(c *color.Color, format string, args ...interface{}) {
	if cl.errOut == nil {
		return
	}
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	message := fmt.Sprintf(format, args...)
	if cl.color {
		c.Fprintln(cl.errOut, message)
		return
	}
	fmt.Fprintln(cl.errOut, message)
}
