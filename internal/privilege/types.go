package privilege

// State describes how the process came to hold elevated rights.
type State int

// Privilege states
const (
	// StateNone is the zero value: no elevation has been established.
	StateNone State = iota
	// StateAlreadyElevated means the process already runs as the superuser.
	StateAlreadyElevated
	// StateElevationGranted means the elevation mechanism validated
	// credentials for this invocation.
	StateElevationGranted
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateAlreadyElevated:
		return "already_elevated"
	case StateElevationGranted:
		return "elevation_granted"
	default:
		return "none"
	}
}

// Grant is the read-only outcome of a successful Elevate call.
type Grant struct {
	// State records how elevation was satisfied.
	State State
	// Prefix is prepended to privileged commands. Empty when the process is
	// already the superuser; the mechanism name (e.g. "sudo") otherwise.
	Prefix []string
}

// superuserUID is the effective UID of the superuser on Unix systems.
const superuserUID = 0
