// internal/minspace/encode.go
package minspace

import (
	"bufio"
	"encoding/binary"
	"io"
)

// Encode writes the header and payload for values to w and returns the
// payload width used. Every value must be <= max.
func Encode(w io.Writer, values []uint64, max uint64) (int, error) {
	h := Header{Count: uint64(len(values)), MaxValue: max}
	width := h.Width()

	bw := bufio.NewWriterSize(w, 64<<10)
	var buf [HeaderSize]byte
	binary.LittleEndian.PutUint64(buf[0:8], h.Count)
	binary.LittleEndian.PutUint64(buf[8:16], h.MaxValue)
	if _, err := bw.Write(buf[:]); err != nil {
		return width, err
	}

	for _, v := range values {
		if v > max {
			return width, ErrOverflow
		}
		if width == Narrow {
			binary.LittleEndian.PutUint32(buf[:Narrow], uint32(v))
		} else {
			binary.LittleEndian.PutUint64(buf[:Wide], v)
		}
		if _, err := bw.Write(buf[:width]); err != nil {
			return width, err
		}
	}
	return width, bw.Flush()
}
