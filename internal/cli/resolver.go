// Package cli classifies the command line into a closed command set and
// renders the usage text. Resolution is a pure function of the first
// positional argument; it has no side effects and consults no environment.
package cli

import "strings"

// Command is the closed set of commands privrun understands.
type Command int

// Recognized commands
const (
	// CommandUnknown is the zero value: nothing matched. Callers treat it
	// exactly like CommandHelp.
	CommandUnknown Command = iota
	// CommandHelp prints the usage text.
	CommandHelp
	// CommandRun performs the privileged action.
	CommandRun
)

// Long option spellings. Short forms are prefixes of these, so a single
// prefix rule covers -h, --h, -hel, --help, -c, --com, --command, and so on.
const (
	helpSpelling    = "help"
	commandSpelling = "command"
)

// String returns the command name for logging.
func (c Command) String() string {
	switch c {
	case CommandHelp:
		return "help"
	case CommandRun:
		return "run"
	default:
		return "unknown"
	}
}

// Invocation is the immutable raw argument list of one process run.
type Invocation struct {
	args []string
}

// NewInvocation captures the argument list (os.Args[1:]). The slice is copied
// so later mutation of the caller's slice cannot change the invocation.
func NewInvocation(args []string) Invocation {
	captured := make([]string, len(args))
	copy(captured, args)
	return Invocation{args: captured}
}

// First returns the first positional argument, or "" if none was given.
func (inv Invocation) First() string {
	if len(inv.args) == 0 {
		return ""
	}
	return inv.args[0]
}

// Resolve classifies a single argument. Matching is case-sensitive and
// anchored: one or more leading dashes, then a non-empty prefix of the long
// spelling. Anything else, including the empty string, resolves to
// CommandUnknown.
func Resolve(arg string) Command {
	body := strings.TrimLeft(arg, "-")
	if body == "" || body == arg {
		// No dashes at all, or nothing after them.
		return CommandUnknown
	}

	switch {
	case strings.HasPrefix(helpSpelling, body):
		return CommandHelp
	case strings.HasPrefix(commandSpelling, body):
		return CommandRun
	default:
		return CommandUnknown
	}
}
