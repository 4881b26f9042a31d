// Package cliutil provides the input and output helpers shared by the
// namecase command-line handlers.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to w. Write failures are reported on
// stderr instead of being returned, so handlers can print without checking
// every call.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
