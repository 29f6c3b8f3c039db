package main

import (
	"io"
	"os"
	"testing"

	"github.com/privrun/privrun/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout redirects os.Stdout for the duration of fn.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestRun_HelpPrintsUsage(t *testing.T) {
	for _, args := range [][]string{
		{"--help"},
		{"-h"},
		{},
		{"-xyz"},
	} {
		t.Run("args="+joinArgs(args), func(t *testing.T) {
			var runErr error
			out := captureStdout(t, func() {
				runErr = run("test-run", args)
			})
			assert.NoError(t, runErr, "help and unknown input succeed")
			assert.Contains(t, out, "Usage:")
		})
	}
}

func TestRun_ConfigLoadFailureIsFatal(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "/nonexistent/privrun-prefs.toml")

	err := run("test-run", []string{"-c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func joinArgs(args []string) string {
	if len(args) == 0 {
		return "<none>"
	}
	return args[0]
}
