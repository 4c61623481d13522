// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"minspace/pkg/api"
)

// DumpWriter renders one decoded file.
type DumpWriter func(w io.Writer, d api.MinspaceV1) error

var dumpWriters = map[string]DumpWriter{}

// Register adds or replaces the writer for format.
func Register(format string, fn DumpWriter) { dumpWriters[format] = fn }

// Formats lists the registered format names in order.
func Formats() []string {
	out := make([]string, 0, len(dumpWriters))
	for k := range dumpWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Known reports whether a writer is registered for format.
func Known(format string) bool {
	_, ok := dumpWriters[format]
	return ok
}

// Write dispatches d to the writer registered for format.
func Write(format string, w io.Writer, d api.MinspaceV1) error {
	fn, ok := dumpWriters[format]
	if !ok {
		return fmt.Errorf("unknown dump format %q (no writer registered)", format)
	}
	return fn(w, d)
}
