// Package console implements the leveled user-facing output of privrun.
// Four message kinds exist: informational, warning, and completion lines go
// to stdout, error lines go to stderr. Styling is resolved once at startup
// into a Styles value and never consulted again.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/privrun/privrun/internal/color"
	"github.com/privrun/privrun/internal/terminal"
)

// Message prefixes. The prefix is part of the message contract: scripts that
// scrape output key off these markers.
const (
	infoPrefix      = "==>"
	warnPrefix      = "==> WARNING:"
	errorPrefix     = "==> ERROR:"
	completedPrefix = "==>"
)

// Styles holds the per-level color functions, computed once at process start.
// When the terminal cannot render escapes every entry is color.None, which
// degrades to plain prefixed text.
type Styles struct {
	Info      color.Color
	Warn      color.Color
	Error     color.Color
	Completed color.Color
}

// NewStyles builds the style table from terminal capabilities.
func NewStyles(caps terminal.Capabilities) *Styles {
	if caps == nil || !caps.SupportsColor() {
		return PlainStyles()
	}
	return &Styles{
		Info:      color.Cyan,
		Warn:      color.Yellow,
		Error:     color.Red,
		Completed: color.Green,
	}
}

// PlainStyles returns a style table that applies no styling.
func PlainStyles() *Styles {
	return &Styles{
		Info:      color.None,
		Warn:      color.None,
		Error:     color.None,
		Completed: color.None,
	}
}

// Console writes leveled single-line messages. Writers default to
// stdout/stderr; tests substitute buffers.
type Console struct {
	styles *Styles
	out    io.Writer
	errOut io.Writer
}

// Option configures a Console.
type Option func(*Console)

// WithWriters overrides the standard and error output streams.
func WithWriters(out, errOut io.Writer) Option {
	return func(c *Console) {
		c.out = out
		c.errOut = errOut
	}
}

// New creates a Console using the given styles.
func New(styles *Styles, opts ...Option) *Console {
	c := &Console{
		styles: styles,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Info prints an informational message to standard output.
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintf(c.out, "%s %s\n", c.styles.Info(infoPrefix), fmt.Sprintf(format, args...))
}

// Warn prints a warning message to standard output.
func (c *Console) Warn(format string, args ...any) {
	fmt.Fprintf(c.out, "%s %s\n", c.styles.Warn(warnPrefix), fmt.Sprintf(format, args...))
}

// Error prints an error message to standard error.
func (c *Console) Error(format string, args ...any) {
	fmt.Fprintf(c.errOut, "%s %s\n", c.styles.Error(errorPrefix), fmt.Sprintf(format, args...))
}

// Completed prints a success message to standard output.
func (c *Console) Completed(format string, args ...any) {
	fmt.Fprintf(c.out, "%s %s\n", c.styles.Completed(completedPrefix), fmt.Sprintf(format, args...))
}
