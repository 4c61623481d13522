// internal/minspace/file.go
package minspace

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteFile encodes values into path, replacing any existing file.
// The data goes to a temporary sibling first and is renamed into place
// only after a successful sync, so a failed run leaves no partial output.
func WriteFile(path string, values []uint64, max uint64) (width int, err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	fh, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return 0, errors.Wrap(err, path)
	}
	tmp := fh.Name()
	defer func() {
		if err != nil {
			_ = fh.Close()
			_ = os.Remove(tmp)
		}
	}()

	if width, err = Encode(fh, values, max); err != nil {
		return width, errors.Wrap(err, path)
	}
	if err = fh.Sync(); err != nil {
		return width, errors.Wrap(err, path)
	}
	if err = fh.Close(); err != nil {
		return width, errors.Wrap(err, path)
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return width, errors.Wrap(err, path)
	}
	if err = os.Rename(tmp, path); err != nil {
		return width, errors.Wrap(err, path)
	}
	return width, nil
}

// ReadFile decodes the minspace file at path.
func ReadFile(path string) (Header, []uint64, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Header{}, nil, err
	}
	defer fh.Close()

	h, values, err := Decode(fh)
	if err != nil {
		return h, values, errors.Wrap(err, path)
	}
	return h, values, nil
}

// ReadHeader decodes only the header of the file at path.
func ReadHeader(path string) (Header, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Header{}, err
	}
	defer fh.Close()

	h, err := DecodeHeader(fh)
	if err != nil {
		return h, errors.Wrap(err, path)
	}
	if err := checkSize(fh, h); err != nil {
		return h, errors.Wrap(err, path)
	}
	return h, nil
}

// checkSize compares the size of a regular file with the length its
// header promises, so a header-only read still rejects damaged files.
func checkSize(fh *os.File, h Header) error {
	st, err := fh.Stat()
	if err != nil {
		return err
	}
	if !st.Mode().IsRegular() {
		return nil
	}
	size := uint64(st.Size())
	if size < HeaderSize || h.Count > (size-HeaderSize)/uint64(h.Width()) {
		return ErrTruncated
	}
	if size > HeaderSize+h.PayloadSize() {
		return ErrTrailing
	}
	return nil
}
