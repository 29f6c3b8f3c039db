//go:build windows

package privilege

import (
	"context"
	"log/slog"
)

// WindowsManager rejects elevation requests; privrun's elevation mechanism
// is Unix-only.
type WindowsManager struct {
	logger    *slog.Logger
	mechanism string
}

func newPlatformManager(logger *slog.Logger, options managerOptions) Manager {
	return &WindowsManager{
		logger:    logger,
		mechanism: options.mechanism,
	}
}

func (m *WindowsManager) Elevate(_ context.Context) (Grant, error) {
	m.logger.Error("privilege elevation requested on unsupported platform",
		"mechanism", m.mechanism)
	return Grant{}, ErrPlatformUnsupported
}

func (m *WindowsManager) EffectiveUID() int {
	return -1 // Windows doesn't use UIDs
}

func (m *WindowsManager) Mechanism() string {
	return m.mechanism
}

func (m *WindowsManager) Metrics() MetricsSnapshot {
	return MetricsSnapshot{}
}
