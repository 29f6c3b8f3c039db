package logging

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRunID_Format(t *testing.T) {
	id := GenerateRunID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestGenerateRunID_Uniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := GenerateRunID()
		_, dup := seen[id]
		require.False(t, dup, "run IDs must be unique")
		seen[id] = struct{}{}
	}
}

func TestTraceEnabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"", false},
		{"0", false},
		{"true", false}, // only the exact value "1" enables tracing
		{"yes", false},
	}
	for _, tt := range tests {
		t.Run("TRACE="+tt.value, func(t *testing.T) {
			t.Setenv(EnvTrace, tt.value)
			assert.Equal(t, tt.want, TraceEnabled())
		})
	}
}

func TestSetup_TraceLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(true, "test-run", &buf)

	logger.Debug("stage decision", "stage", "resolver")
	out := buf.String()
	assert.Contains(t, out, "stage decision")
	assert.Contains(t, out, "run_id=test-run")
}

func TestSetup_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(false, "test-run", &buf)

	logger.Debug("hidden")
	logger.Info("also hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
