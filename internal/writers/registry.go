// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"readstats-core/stats"
)

// WriteFunc renders one summary.
type WriteFunc func(w io.Writer, s stats.Summary) error

// Report writers (format → handler). Formats register themselves in init().
var reportWriters = map[string]WriteFunc{}

// Register adds or replaces (last wins) the writer for format.
func Register(format string, fn WriteFunc) { reportWriters[format] = fn }

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, s stats.Summary) error {
	fn, ok := reportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, s)
}

// Known reports whether a writer exists for format.
func Known(format string) bool {
	_, ok := reportWriters[format]
	return ok
}

// Formats lists the registered formats in sorted order.
func Formats() []string {
	out := make([]string, 0, len(reportWriters))
	for f := range reportWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
