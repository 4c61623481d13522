// internal/config/config.go
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// File is a TOML defaults file for the minspace CLI. Unset keys leave the
// built-in defaults alone; explicit flags always win.
//
//	window = 31
//	length = 10
//	info = true
//	quiet = false
type File struct {
	Window *int  `toml:"window"`
	Length *int  `toml:"length"`
	Info   *bool `toml:"info"`
	Quiet  *bool `toml:"quiet"`
}

// Load parses path. Unknown keys are rejected so typos do not pass silently.
func Load(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer fh.Close()

	var f File
	dec := toml.NewDecoder(fh).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return File{}, errors.Wrapf(err, "config %s", path)
	}
	return f, nil
}
