// internal/writers/json.go
package writers

import (
	"encoding/json"
	"io"

	"minspace/pkg/api"
)

func init() { Register("json", WriteJSON) }

// WriteJSON prints d as one indented JSON document.
func WriteJSON(w io.Writer, d api.MinspaceV1) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
