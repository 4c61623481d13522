// internal/minspace/format.go
package minspace

import "github.com/pkg/errors"

// Payload widths in bytes.
const (
	Narrow = 4
	Wide   = 8
)

// HeaderSize is the fixed byte length of the header.
const HeaderSize = 16

// Limit is the count/max_value threshold at which the payload turns wide.
const Limit = 1<<31 - 1

var (
	ErrOverflow  = errors.New("minspace: token exceeds header max_value")
	ErrTruncated = errors.New("minspace: truncated file")
	ErrTrailing  = errors.New("minspace: trailing bytes after payload")
)

// Header is the fixed-size prefix of a minspace file.
type Header struct {
	Count    uint64
	MaxValue uint64
}

// Width is the payload width implied by the header.
func (h Header) Width() int { return WidthFor(h.Count, h.MaxValue) }

// PayloadSize is the byte length of the payload that must follow the header.
func (h Header) PayloadSize() uint64 { return h.Count * uint64(h.Width()) }

// WidthFor chooses the payload width for a stream. Streams with count or
// max_value at or above Limit are written wide.
func WidthFor(count, max uint64) int {
	if count >= Limit || max >= Limit {
		return Wide
	}
	return Narrow
}
