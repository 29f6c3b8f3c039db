// Package config loads optional run preferences from a TOML file. No file is
// touched unless the user names one through the PRIVRUN_CONFIG environment
// variable; defaults cover everything.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath names the environment variable holding the preferences path.
const EnvConfigPath = "PRIVRUN_CONFIG"

// Color mode values accepted in the preferences file.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Error definitions for the config package
var (
	// ErrInvalidColorMode is returned for a color value outside
	// auto/always/never.
	ErrInvalidColorMode = errors.New("invalid color mode - valid options are: auto, always, never")
	// ErrEmptyMechanism is returned when the mechanism key is present but blank.
	ErrEmptyMechanism = errors.New("mechanism cannot be empty")
	// ErrEmptyAction is returned when the action key is present but blank.
	ErrEmptyAction = errors.New("action cannot be empty")
)

// Config holds the user preferences.
type Config struct {
	// Mechanism is the elevation executable name.
	Mechanism string `toml:"mechanism"`
	// Color selects the styling mode: auto, always, or never.
	Color string `toml:"color"`
	// Action is the privileged command to run.
	Action string `toml:"action"`
}

// Default returns the built-in preferences.
func Default() *Config {
	return &Config{
		Mechanism: "sudo",
		Color:     ColorAuto,
		Action:    "whoami",
	}
}

// Loader reads and validates preference files.
type Loader struct {
	readFile func(path string) ([]byte, error)
}

// NewLoader creates a config loader.
func NewLoader() *Loader {
	return &Loader{readFile: os.ReadFile}
}

// LoadFromEnv loads the file named by PRIVRUN_CONFIG, or returns defaults
// when the variable is unset or empty.
func (l *Loader) LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		return Default(), nil
	}
	return l.Load(path)
}

// Load reads, decodes, and validates a preferences file. Keys the file omits
// keep their defaults; unknown keys are rejected.
func (l *Loader) Load(path string) (*Config, error) {
	data, err := l.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColorMode, c.Color)
	}
	if c.Mechanism == "" {
		return ErrEmptyMechanism
	}
	if c.Action == "" {
		return ErrEmptyAction
	}
	return nil
}
