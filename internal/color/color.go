// Package color provides small helpers for wrapping text in ANSI escape
// sequences. Callers that need conditional coloring hold a Color per message
// level and swap in None when the terminal cannot render escapes.
//
//nolint:revive // package name conflicts with standard library
package color

// ANSI color codes
const (
	resetCode  = "\033[0m"
	grayCode   = "\033[90m" // Bright black/gray
	greenCode  = "\033[32m"
	yellowCode = "\033[33m"
	redCode    = "\033[31m"
	cyanCode   = "\033[36m"
)

// Color wraps text with an ANSI escape sequence.
type Color func(text string) string

// NewColor creates a color function with the specified ANSI code.
func NewColor(ansiCode string) Color {
	return func(text string) string {
		return ansiCode + text + resetCode
	}
}

// Predefined color functions
var (
	// Gray colors text in gray (bright black)
	Gray = NewColor(grayCode)

	// Green colors text in green
	Green = NewColor(greenCode)

	// Yellow colors text in yellow
	Yellow = NewColor(yellowCode)

	// Red colors text in red
	Red = NewColor(redCode)

	// Cyan colors text in cyan
	Cyan = NewColor(cyanCode)

	// None returns text unchanged, for terminals without color support.
	None = Color(func(text string) string { return text })
)
