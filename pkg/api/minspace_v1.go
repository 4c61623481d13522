// pkg/api/minspace_v1.go
package api

// MinspaceV1 is the stable JSON schema printed by minspace-dump.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MinspaceV1 struct {
	File     string `json:"file"`
	Count    uint64 `json:"count"`
	MaxValue uint64 `json:"max_value"`
	Width    int    `json:"width"` // payload bytes per token: 4 | 8

	// From the .toml sidecar, when present.
	Mode            string `json:"mode,omitempty"`
	MinimizerLength int    `json:"minimizer_length,omitempty"`
	Window          int    `json:"window,omitempty"`

	Tokens    []TokenV1 `json:"tokens,omitempty"`
	Truncated bool      `json:"truncated,omitempty"` // --head cut the token list
}

// TokenV1 is one payload value of a minspace file.
type TokenV1 struct {
	File  string `json:"file,omitempty"` // set on JSONL lines only
	Index int    `json:"index"`
	Value uint64 `json:"value"`
	Kmer  string `json:"kmer,omitempty"`
}
