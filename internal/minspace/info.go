// internal/minspace/info.go
package minspace

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// FormatVersion identifies the token-stream layout described in this package.
const FormatVersion = 1

// Info is the optional TOML sidecar describing how a minspace file was made.
// The binary header cannot tell a reader which mode, L or W produced it.
type Info struct {
	FormatVersion   uint8  `toml:"format-version" comment:"minspace token stream"`
	Mode            string `toml:"mode" comment:"sequence | opaque"`
	MinimizerLength int    `toml:"minimizer-length"`
	Window          int    `toml:"window"`
	Count           int64  `toml:"count" comment:"Token stream"`
	MaxValue        string `toml:"max-value" comment:"decimal, may exceed the TOML integer range"`
	Width           int    `toml:"width" comment:"payload bytes per token"`
	Input           string `toml:"input"`
}

// InfoPath is where the sidecar of a minspace file lives.
func InfoPath(output string) string { return output + ".toml" }

// WriteInfo writes info as TOML to path.
func WriteInfo(path string, info Info) error {
	data, err := toml.Marshal(info)
	if err != nil {
		return errors.Wrap(err, "encode info")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, path)
	}
	return nil
}

// ReadInfo reads a sidecar written by WriteInfo.
func ReadInfo(path string) (Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, err
	}
	var info Info
	if err := toml.Unmarshal(data, &info); err != nil {
		return Info{}, errors.Wrap(err, path)
	}
	return info, nil
}
