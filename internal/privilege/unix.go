//go:build !windows

package privilege

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// UnixManager implements Manager for Unix systems using an external
// elevation mechanism (sudo by default).
type UnixManager struct {
	logger    *slog.Logger
	mechanism string
	metrics   Metrics

	// Seams for tests; production values are set by newPlatformManager.
	effectiveUID func() int
	lookPath     func(name string) (string, error)
	validate     func(ctx context.Context, path string) error
}

func newPlatformManager(logger *slog.Logger, options managerOptions) Manager {
	return &UnixManager{
		logger:       logger,
		mechanism:    options.mechanism,
		effectiveUID: syscall.Geteuid,
		lookPath:     exec.LookPath,
		validate:     validateCredentials,
	}
}

// EffectiveUID returns the effective user ID of the process.
func (m *UnixManager) EffectiveUID() int {
	return m.effectiveUID()
}

// Mechanism returns the configured elevation executable name.
func (m *UnixManager) Mechanism() string {
	return m.mechanism
}

// Metrics returns a snapshot of elevation metrics.
func (m *UnixManager) Metrics() MetricsSnapshot {
	return m.metrics.Snapshot()
}

// Elevate determines the privilege state for this invocation.
//
// A superuser effective UID short-circuits to StateAlreadyElevated without
// touching the mechanism. Otherwise the mechanism executable is located on
// the search path and its credential cache is primed; either step failing is
// fatal to the invocation.
func (m *UnixManager) Elevate(ctx context.Context) (Grant, error) {
	uid := m.effectiveUID()
	start := time.Now()

	if uid == superuserUID {
		m.logger.Debug("effective uid is superuser, no elevation needed", "uid", uid)
		m.metrics.RecordSuccess(time.Since(start))
		return Grant{State: StateAlreadyElevated}, nil
	}

	m.logger.Debug("elevation required", "uid", uid, "mechanism", m.mechanism)

	path, err := m.lookPath(m.mechanism)
	if err != nil {
		wrapped := &Error{
			Mechanism: m.mechanism,
			UID:       uid,
			Err:       fmt.Errorf("%w: %w", ErrMechanismNotFound, err),
		}
		m.metrics.RecordFailure(wrapped)
		return Grant{}, wrapped
	}
	m.logger.Debug("elevation mechanism located", "path", path)

	if err := m.validate(ctx, path); err != nil {
		wrapped := &Error{
			Mechanism: m.mechanism,
			UID:       uid,
			Err:       fmt.Errorf("%w: %w", ErrElevationDenied, err),
		}
		m.metrics.RecordFailure(wrapped)
		return Grant{}, wrapped
	}

	m.metrics.RecordSuccess(time.Since(start))
	return Grant{State: StateElevationGranted, Prefix: []string{path}}, nil
}

// validateCredentials primes the mechanism's credential cache (`sudo -v`),
// prompting the user on the controlling terminal when necessary. A non-zero
// exit means authentication was refused or timed out.
func validateCredentials(ctx context.Context, path string) error {
	// #nosec G204 - path comes from LookPath on a configured mechanism name
	cmd := exec.CommandContext(ctx, path, "-v")
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
