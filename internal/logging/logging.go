// Package logging configures the diagnostic slog logger. The user-facing
// surface is the leveled console; slog carries trace-level diagnostics only
// and stays quiet unless tracing is requested.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// EnvTrace is the environment variable that enables verbose tracing. Only
// the exact value "1" activates it; tracing changes diagnostics, never
// behavior.
const EnvTrace = "TRACE"

// GenerateRunID generates a new UUID v4 for run identification.
func GenerateRunID() string {
	return uuid.New().String()
}

// TraceEnabled reports whether verbose tracing was requested.
func TraceEnabled() bool {
	return os.Getenv(EnvTrace) == "1"
}

// Setup installs the default slog logger on the given writer (stderr when
// nil). With tracing the level drops to Debug so every stage logs its
// decision; otherwise Warn keeps diagnostics out of normal output.
func Setup(trace bool, runID string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelWarn
	if trace {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With("run_id", runID)
	slog.SetDefault(logger)
	return logger
}
