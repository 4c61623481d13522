// internal/input/concat.go
package input

import (
	"io"

	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
)

// ReadConcat returns the whole (decompressed) content of path as one
// opaque sequence.
func ReadConcat(path string) ([]byte, error) {
	r, err := xopen.Ropen(path)
	if err != nil {
		if errors.Is(err, xopen.ErrNoContent) {
			return nil, nil
		}
		return nil, errors.Wrap(err, path)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return data, nil
}
