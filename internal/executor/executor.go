// Package executor runs the privileged action under the elevation prefix
// established by the privilege gate. Execution goes through an interface so
// tests can substitute a fake process runner.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/privrun/privrun/internal/privilege"
)

// Error definitions
var (
	ErrEmptyAction = errors.New("action command cannot be empty")
)

// identityCommand queries the identity the action runs as. Executed under an
// elevation prefix it reports the elevated identity.
const identityCommand = "whoami"

// Action is one external command, optionally run under an elevation prefix.
type Action struct {
	Name   string
	Args   []string
	Prefix []string
}

// NewAction builds an action that runs name under the grant's elevation
// prefix.
func NewAction(name string, grant privilege.Grant) Action {
	return Action{Name: name, Prefix: grant.Prefix}
}

// IdentityAction builds the privileged identity query for a grant.
func IdentityAction(grant privilege.Grant) Action {
	return NewAction(identityCommand, grant)
}

// Result contains the result of an action execution.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Output returns stdout trimmed of trailing whitespace.
func (r *Result) Output() string {
	return strings.TrimSpace(r.Stdout)
}

// Runner executes actions.
type Runner interface {
	Run(ctx context.Context, action Action) (*Result, error)
}

// DefaultRunner executes actions with os/exec.
type DefaultRunner struct {
	// lookPath is a seam for tests; defaults to exec.LookPath.
	lookPath func(name string) (string, error)
}

// NewRunner creates the default action runner.
func NewRunner() *DefaultRunner {
	return &DefaultRunner{lookPath: exec.LookPath}
}

// Run resolves the action's entry executable on the search path and executes
// it, capturing output. A prefix moves resolution to the prefix head: the
// mechanism decides how to find the wrapped command.
func (r *DefaultRunner) Run(ctx context.Context, action Action) (*Result, error) {
	name, args := action.commandLine()
	if name == "" {
		return nil, ErrEmptyAction
	}

	path, err := r.lookPath(name)
	if err != nil {
		return nil, fmt.Errorf("failed to find command %q: %w", name, err)
	}

	// #nosec G204 - name and args come from the fixed action table, not user input
	cmd := exec.CommandContext(ctx, path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	// ProcessState is nil when the command never started.
	exitCode := -1
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}
	result := &Result{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}

	if runErr != nil {
		return result, fmt.Errorf("command %q failed: %w", name, runErr)
	}
	return result, nil
}

// commandLine flattens the prefix and action into an argv. An empty prefix
// runs the action directly.
func (a Action) commandLine() (name string, args []string) {
	if a.Name == "" {
		return "", nil
	}

	argv := make([]string, 0, len(a.Prefix)+1+len(a.Args))
	argv = append(argv, a.Prefix...)
	argv = append(argv, a.Name)
	argv = append(argv, a.Args...)
	return argv[0], argv[1:]
}
