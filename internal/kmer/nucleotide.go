// internal/kmer/nucleotide.go
package kmer

import "fmt"

// Nucleotide keeps the forward and reverse-complement codes of the last l
// bases. A window holding an ambiguous base is excluded rather than
// substituted, so runs of N never produce spurious poly-A minimizers.
type Nucleotide struct {
	l     int
	mask  uint64
	shift uint // bit offset of the first base in the rc code
	fwd   uint64
	rc    uint64
	run   int // encodable bases since the last ambiguous one
}

// NewNucleotide returns a canonical 2-bit encoder for windows of l bases.
func NewNucleotide(l int) (*Nucleotide, error) {
	if l < 1 || l > MaxNucleotideLength {
		return nil, fmt.Errorf("%w: %d (sequence mode needs 1..%d)", ErrLength, l, MaxNucleotideLength)
	}
	mask := ^uint64(0)
	if l < MaxNucleotideLength {
		mask = 1<<(2*uint(l)) - 1
	}
	return &Nucleotide{l: l, mask: mask, shift: 2 * uint(l-1)}, nil
}

func (n *Nucleotide) Len() int { return n.l }

func (n *Nucleotide) Reset() { n.fwd, n.rc, n.run = 0, 0, 0 }

func (n *Nucleotide) Push(b byte) (uint64, bool) {
	c, ok := Code(b)
	if !ok {
		n.run = 0
		return 0, false
	}
	n.fwd = (n.fwd<<2 | c) & n.mask
	n.rc = n.rc>>2 | (3-c)<<n.shift
	if n.run < n.l {
		n.run++
	}
	if n.run < n.l {
		return 0, false
	}
	return Canonical(n.fwd, n.rc), true
}
