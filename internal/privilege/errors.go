// Package privilege implements the elevation gate: it decides whether the
// process already holds superuser rights and, if not, obtains them through an
// external elevation mechanism such as sudo.
package privilege

import (
	"errors"
	"fmt"
)

// Standard errors
var (
	// ErrMechanismNotFound is returned when the elevation mechanism
	// executable cannot be located on the search path.
	ErrMechanismNotFound = errors.New("elevation mechanism not found")
	// ErrElevationDenied is returned when credential validation fails or the
	// user declines to authenticate.
	ErrElevationDenied = errors.New("elevation denied")
	// ErrPlatformUnsupported is returned on platforms without a supported
	// elevation mechanism.
	ErrPlatformUnsupported = errors.New("privilege elevation not supported on this platform")
)

// Error carries detail about a failed elevation attempt.
type Error struct {
	Mechanism string
	UID       int
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("elevation via %q failed for uid %d: %v", e.Mechanism, e.UID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
