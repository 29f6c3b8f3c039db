// Package terminal decides whether the current process should emit styled,
// interactive console output. Detection combines TTY checks, CI environment
// markers, TERM capability matching, and explicit user preference variables.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains common CI environment variables
var ciEnvVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"TRAVIS",
	"CIRCLECI",
	"JENKINS_URL",
	"BUILD_NUMBER",
	"GITLAB_CI",
	"APPVEYOR",
	"BUILDKITE",
	"DRONE",
	"TF_BUILD",
}

// colorTerminals lists TERM values (or prefixes) known to support basic
// colors. Package scope so SupportsColor does not reallocate per call.
var colorTerminals = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"vt100",
	"vt220",
	"ansi",
	"linux",
	"cygwin",
	"putty",
}

// DetectorOptions overrides interactive detection from the command line.
type DetectorOptions struct {
	ForceInteractive    bool // treat the environment as interactive regardless of detection
	ForceNonInteractive bool // treat the environment as non-interactive regardless of detection
}

// Detector reports interactive and color capabilities of the environment.
type Detector interface {
	IsInteractive() bool
	IsTerminal() bool
	IsCIEnvironment() bool
	SupportsColor() bool
}

// DefaultDetector implements Detector against the real process environment.
type DefaultDetector struct {
	options DetectorOptions
}

// NewDetector creates a detector with the given options.
func NewDetector(options DetectorOptions) Detector {
	return &DefaultDetector{options: options}
}

// IsInteractive returns true if the current environment is interactive.
// Command line overrides win, then CI detection, then the TTY check.
func (d *DefaultDetector) IsInteractive() bool {
	if d.options.ForceInteractive {
		return true
	}
	if d.options.ForceNonInteractive {
		return false
	}

	if d.IsCIEnvironment() {
		return false
	}

	return d.IsTerminal()
}

// IsTerminal checks whether both stdout and stderr are connected to a
// terminal.
func (d *DefaultDetector) IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// IsCIEnvironment checks whether the process appears to run under a CI/CD
// system. CI=false and CI=0 are not treated as CI.
func (d *DefaultDetector) IsCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		if envVar == "CI" {
			return isCITruthy(value)
		}
		return true
	}
	return false
}

// SupportsColor returns true if TERM names a terminal with basic color
// support. Unknown terminals default to no color: emitting escape sequences
// to a terminal that cannot render them is worse than missing color.
func (d *DefaultDetector) SupportsColor() bool {
	termName := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if termName == "" || termName == "dumb" {
		return false
	}

	for _, known := range colorTerminals {
		if termName == known || strings.HasPrefix(termName, known+"-") {
			return true
		}
	}
	return false
}

func isCITruthy(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	return lower != "false" && lower != "0" && lower != "no"
}
