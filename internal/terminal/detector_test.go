package terminal

import "testing"

// clearCIEnv unsets every CI marker so detection tests are not polluted by
// the environment the tests themselves run under.
func clearCIEnv(t *testing.T) {
	t.Helper()
	for _, envVar := range ciEnvVars {
		t.Setenv(envVar, "")
	}
}

func TestDefaultDetector_SupportsColor(t *testing.T) {
	tests := []struct {
		name string
		term string
		want bool
	}{
		{"xterm supports color", "xterm", true},
		{"xterm-256color supports color", "xterm-256color", true},
		{"screen supports color", "screen", true},
		{"tmux-256color supports color", "tmux-256color", true},
		{"vt100 supports color", "vt100", true},
		{"linux console supports color", "linux", true},
		{"dumb terminal does not", "dumb", false},
		{"empty TERM does not", "", false},
		{"unknown terminal defaults to no color", "mysteryterm", false},
		{"prefix requires dash separator", "xtermfoo", false},
		{"case insensitive match", "XTERM", true},
		{"whitespace trimmed", "  xterm  ", true},
	}

	d := NewDetector(DetectorOptions{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TERM", tt.term)
			if got := d.SupportsColor(); got != tt.want {
				t.Errorf("SupportsColor() with TERM=%q = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestDefaultDetector_IsCIEnvironment(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		want   bool
	}{
		{"no CI markers", "", "", false},
		{"generic CI truthy", "CI", "true", true},
		{"CI=1", "CI", "1", true},
		{"CI=false is not CI", "CI", "false", false},
		{"CI=0 is not CI", "CI", "0", false},
		{"GitHub Actions", "GITHUB_ACTIONS", "true", true},
		{"Jenkins by URL", "JENKINS_URL", "https://ci.example.com", true},
		{"GitLab CI", "GITLAB_CI", "true", true},
	}

	d := NewDetector(DetectorOptions{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearCIEnv(t)
			if tt.envVar != "" {
				t.Setenv(tt.envVar, tt.value)
			}
			if got := d.IsCIEnvironment(); got != tt.want {
				t.Errorf("IsCIEnvironment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultDetector_IsInteractive_Overrides(t *testing.T) {
	clearCIEnv(t)

	force := NewDetector(DetectorOptions{ForceInteractive: true})
	if !force.IsInteractive() {
		t.Error("ForceInteractive should win over environment detection")
	}

	quiet := NewDetector(DetectorOptions{ForceNonInteractive: true})
	if quiet.IsInteractive() {
		t.Error("ForceNonInteractive should win over environment detection")
	}
}

func TestDefaultDetector_IsInteractive_CIWins(t *testing.T) {
	clearCIEnv(t)
	t.Setenv("CI", "true")

	d := NewDetector(DetectorOptions{})
	if d.IsInteractive() {
		t.Error("CI environment should never be interactive")
	}
}
