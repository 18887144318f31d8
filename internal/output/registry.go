// internal/output/registry.go
package output

import (
	"fmt"
	"io"
	"sort"
)

// WriteFunc renders a batch of scored candidates to w.
type WriteFunc func(w io.Writer, list []Scored, header bool) error

// writers maps format name to handler. Files register in init().
var writers = map[string]WriteFunc{}

// Register installs a writer for a format (idempotent, last wins).
func Register(format string, fn WriteFunc) { writers[format] = fn }

// Write dispatches to the registered writer for format.
func Write(format string, w io.Writer, list []Scored, header bool) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, list, header)
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(writers))
	for k := range writers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
