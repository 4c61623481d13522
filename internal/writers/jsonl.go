// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"minspace/internal/jsonlutil"
	"minspace/pkg/api"
)

func init() { Register("jsonl", WriteJSONL) }

// WriteJSONL streams one TokenV1 per line. A file without tokens (or a
// header-only dump) yields a single header line instead.
func WriteJSONL(w io.Writer, d api.MinspaceV1) error {
	if len(d.Tokens) == 0 {
		return json.NewEncoder(w).Encode(d)
	}
	in, done := jsonlutil.Start[api.TokenV1](w, 256,
		func(enc *json.Encoder, t api.TokenV1) error {
			t.File = d.File
			return enc.Encode(t)
		},
		IsBrokenPipe,
	)
	for _, t := range d.Tokens {
		in <- t
	}
	close(in)
	return <-done
}
