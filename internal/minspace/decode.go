// internal/minspace/decode.go
package minspace

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// DecodeHeader reads the 16-byte header from r.
func DecodeHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, errors.Wrap(ErrTruncated, "header")
		}
		return Header{}, err
	}
	return Header{
		Count:    binary.LittleEndian.Uint64(buf[0:8]),
		MaxValue: binary.LittleEndian.Uint64(buf[8:16]),
	}, nil
}

// Decode reads a whole minspace stream: header, payload, and nothing after.
func Decode(r io.Reader) (Header, []uint64, error) {
	br := bufio.NewReaderSize(r, 64<<10)
	h, err := DecodeHeader(br)
	if err != nil {
		return Header{}, nil, err
	}
	width := h.Width()

	// A corrupt count must not trigger a huge allocation up front.
	values := make([]uint64, 0, min(h.Count, 1<<20))
	var buf [Wide]byte
	for i := uint64(0); i < h.Count; i++ {
		if _, err := io.ReadFull(br, buf[:width]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return h, values, errors.Wrapf(ErrTruncated, "token %d of %d", i, h.Count)
			}
			return h, values, err
		}
		if width == Narrow {
			values = append(values, uint64(binary.LittleEndian.Uint32(buf[:Narrow])))
		} else {
			values = append(values, binary.LittleEndian.Uint64(buf[:Wide]))
		}
	}
	if _, err := br.ReadByte(); err == nil {
		return h, values, ErrTrailing
	} else if err != io.EOF {
		return h, values, err
	}
	return h, values, nil
}
