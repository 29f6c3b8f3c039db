package privilege

import (
	"sync"
	"time"
)

// Metrics counts elevation attempts for diagnostic tracing.
type Metrics struct {
	mu                 sync.RWMutex
	ElevationAttempts  int64         `json:"elevation_attempts"`
	ElevationSuccesses int64         `json:"elevation_successes"`
	ElevationFailures  int64         `json:"elevation_failures"`
	TotalElevationTime time.Duration `json:"total_elevation_time"`
	LastElevationTime  time.Time     `json:"last_elevation_time"`
	LastError          string        `json:"last_error,omitempty"`
}

// RecordSuccess records a successful elevation.
func (m *Metrics) RecordSuccess(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ElevationAttempts++
	m.ElevationSuccesses++
	m.TotalElevationTime += duration
	m.LastElevationTime = time.Now()
}

// RecordFailure records a failed elevation.
func (m *Metrics) RecordFailure(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ElevationAttempts++
	m.ElevationFailures++
	m.LastError = err.Error()
}

// Snapshot returns a copy of the current metrics safe for concurrent reads.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return MetricsSnapshot{
		ElevationAttempts:  m.ElevationAttempts,
		ElevationSuccesses: m.ElevationSuccesses,
		ElevationFailures:  m.ElevationFailures,
		TotalElevationTime: m.TotalElevationTime,
		LastElevationTime:  m.LastElevationTime,
		LastError:          m.LastError,
	}
}

// MetricsSnapshot is a point-in-time copy of Metrics without the lock.
type MetricsSnapshot struct {
	ElevationAttempts  int64
	ElevationSuccesses int64
	ElevationFailures  int64
	TotalElevationTime time.Duration
	LastElevationTime  time.Time
	LastError          string
}
