// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf writes a non-fatal diagnostic to dst unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// WarnfFunc adapts Warnf to the Warnf hooks the core parsers and the pair
// filter accept.
func WarnfFunc(dst io.Writer, quiet bool) func(format string, a ...any) {
	return func(format string, a ...any) {
		Warnf(dst, quiet, format, a...)
	}
}
