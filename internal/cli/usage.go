package cli

import (
	"fmt"
	"io"
)

const usageText = `privrun - run a privileged command through an elevation gate

Usage:
    privrun [option]

Options:
    -c, --command    run the privileged command (elevates via sudo if needed)
    -h, --help       show this help text

Long options may be shortened to any unambiguous prefix (e.g. --com, --h).
Unrecognized or missing options display this help text.

Environment:
    TRACE=1          enable verbose diagnostic tracing
    PRIVRUN_CONFIG   path to an optional TOML preferences file
`

// Usage writes the static usage text.
func Usage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
