package terminal

import (
	"os"
	"strings"
)

// PreferenceOptions carries explicit color preferences from the command line
// or configuration.
type PreferenceOptions struct {
	ForceColor   bool // enable color regardless of environment
	DisableColor bool // disable color regardless of environment
}

// Options contains all terminal-related configuration.
type Options struct {
	PreferenceOptions PreferenceOptions
	DetectorOptions   DetectorOptions
}

// Capabilities answers whether output should be styled and/or interactive.
type Capabilities interface {
	IsInteractive() bool
	SupportsColor() bool
}

// DefaultCapabilities combines environment detection with user preference.
type DefaultCapabilities struct {
	detector   Detector
	preference PreferenceOptions
}

// NewCapabilities creates a Capabilities instance with the given options.
func NewCapabilities(options Options) Capabilities {
	return &DefaultCapabilities{
		detector:   NewDetector(options.DetectorOptions),
		preference: options.PreferenceOptions,
	}
}

// IsInteractive reports whether the environment should be treated as
// interactive.
func (c *DefaultCapabilities) IsInteractive() bool {
	return c.detector.IsInteractive()
}

// SupportsColor decides whether color output should be enabled, in priority
// order:
//  1. explicit options (ForceColor / DisableColor)
//  2. CLICOLOR_FORCE (truthy value forces color on)
//  3. NO_COLOR (any value, even empty, forces color off)
//  4. CLICOLOR (consulted only when interactive)
//  5. auto-detection (interactive terminal with a color-capable TERM)
func (c *DefaultCapabilities) SupportsColor() bool {
	if c.preference.ForceColor {
		return true
	}
	if c.preference.DisableColor {
		return false
	}

	if force := os.Getenv("CLICOLOR_FORCE"); force != "" && isTruthy(force) {
		return true
	}

	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	if !c.detector.IsInteractive() || !c.detector.SupportsColor() {
		return false
	}

	// CLICOLOR only applies when a TTY is attached; pipes ignore it.
	if cliColor := os.Getenv("CLICOLOR"); cliColor != "" {
		return isTruthy(cliColor)
	}

	return true
}

// isTruthy checks if a value should be considered "true".
// Supports: "1", "true", "yes" (case insensitive).
func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
