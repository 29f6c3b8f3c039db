package privilege

import (
	"context"
	"log/slog"
)

// DefaultMechanism is the elevation executable used when none is configured.
const DefaultMechanism = "sudo"

// Manager establishes elevated rights for one invocation.
//
// Elevate performs the full check every time it is called; it caches nothing.
// Callers must call it at most once per invocation.
type Manager interface {
	// Elevate returns a Grant describing how elevated rights were obtained,
	// or an error when the mechanism is missing or the user is refused.
	Elevate(ctx context.Context) (Grant, error)
	// EffectiveUID returns the effective user ID of the process.
	EffectiveUID() int
	// Mechanism returns the configured elevation executable name.
	Mechanism() string
	// Metrics returns a snapshot of elevation metrics.
	Metrics() MetricsSnapshot
}

// Option configures a Manager.
type Option func(*managerOptions)

type managerOptions struct {
	mechanism string
}

// WithMechanism overrides the elevation executable name (e.g. "doas").
func WithMechanism(name string) Option {
	return func(o *managerOptions) {
		if name != "" {
			o.mechanism = name
		}
	}
}

// NewManager creates a platform-appropriate privilege manager.
func NewManager(logger *slog.Logger, opts ...Option) Manager {
	options := managerOptions{mechanism: DefaultMechanism}
	for _, opt := range opts {
		opt(&options)
	}
	return newPlatformManager(logger, options)
}
