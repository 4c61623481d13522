// internal/kmer/encoder.go
package kmer

import (
	"errors"
	"fmt"
)

// Mode selects how bytes are interpreted.
type Mode int

const (
	// ModeSequence reads nucleotides and canonicalizes against the reverse complement.
	ModeSequence Mode = iota
	// ModeOpaque reads arbitrary bytes; no complement is defined.
	ModeOpaque
)

// MaxNucleotideLength is the longest window a 64-bit 2-bit code can hold.
const MaxNucleotideLength = 32

// ErrLength reports a window length the selected mode cannot encode.
var ErrLength = errors.New("invalid minimizer length")

func (m Mode) String() string {
	switch m {
	case ModeSequence:
		return "sequence"
	case ModeOpaque:
		return "opaque"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the mode names and their input-kind aliases.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "sequence", "fasta":
		return ModeSequence, nil
	case "opaque", "concat":
		return ModeOpaque, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want sequence|opaque)", s)
}

// Encoder consumes one byte at a time. Once Len() bytes have been pushed,
// every Push ends a window; ok=false then means the window carries no value
// (an ambiguous base inside it).
type Encoder interface {
	Push(b byte) (v uint64, ok bool)
	Len() int
	Reset()
}

// New returns the rolling encoder for mode with window length l.
func New(mode Mode, l int) (Encoder, error) {
	switch mode {
	case ModeSequence:
		return NewNucleotide(l)
	case ModeOpaque:
		return NewOpaque(l)
	}
	return nil, fmt.Errorf("unknown mode %v", mode)
}
