package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(content string, readErr error) *Loader {
	return &Loader{
		readFile: func(string) ([]byte, error) {
			if readErr != nil {
				return nil, readErr
			}
			return []byte(content), nil
		},
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "sudo", cfg.Mechanism)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, "whoami", cfg.Action)
}

func TestLoad_FullFile(t *testing.T) {
	content := `
mechanism = "doas"
color = "never"
action = "id"
`
	cfg, err := newTestLoader(content, nil).Load("prefs.toml")
	require.NoError(t, err)
	assert.Equal(t, "doas", cfg.Mechanism)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, "id", cfg.Action)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := newTestLoader(`color = "always"`, nil).Load("prefs.toml")
	require.NoError(t, err)
	assert.Equal(t, "sudo", cfg.Mechanism)
	assert.Equal(t, ColorAlways, cfg.Color)
	assert.Equal(t, "whoami", cfg.Action)
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	_, err := newTestLoader(`mechansim = "doas"`, nil).Load("prefs.toml")
	assert.Error(t, err, "typoed keys must not be silently ignored")
}

func TestLoad_InvalidTOML(t *testing.T) {
	_, err := newTestLoader(`color = `, nil).Load("prefs.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_ReadFailure(t *testing.T) {
	_, err := newTestLoader("", errors.New("permission denied")).Load("prefs.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"bad color mode", `color = "rainbow"`, ErrInvalidColorMode},
		{"blank mechanism", `mechanism = ""`, ErrEmptyMechanism},
		{"blank action", `action = ""`, ErrEmptyAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestLoader(tt.content, nil).Load("prefs.toml")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("unset variable returns defaults without reading", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		l := newTestLoader("", errors.New("must not be called"))
		cfg, err := l.LoadFromEnv()
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("set variable loads the named file", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/tmp/prefs.toml")
		cfg, err := newTestLoader(`mechanism = "doas"`, nil).LoadFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "doas", cfg.Mechanism)
	})
}
