// internal/kmer/opaque.go
package kmer

import (
	"fmt"
	"math/bits"
)

// Windows of up to PackedLength bytes are packed exactly; longer ones are
// hashed modulo the Mersenne prime 2^61-1.
const (
	PackedLength = 8

	mersenne61 = 1<<61 - 1
	hashBase   = 257
)

// Opaque encodes raw byte windows without complementation.
type Opaque struct {
	l    int
	mask uint64
	pow  uint64 // hashBase^(l-1) mod p, weight of the outgoing byte
	win  []byte // ring of the last l bytes (hash mode only)
	head int
	seen int
	v    uint64
}

// NewOpaque returns an encoder over l-byte windows.
func NewOpaque(l int) (*Opaque, error) {
	if l < 1 {
		return nil, fmt.Errorf("%w: %d (must be >= 1)", ErrLength, l)
	}
	o := &Opaque{l: l}
	if l <= PackedLength {
		o.mask = ^uint64(0)
		if l < PackedLength {
			o.mask = 1<<(8*uint(l)) - 1
		}
		return o, nil
	}
	o.win = make([]byte, l)
	o.pow = 1
	for i := 1; i < l; i++ {
		o.pow = mulMod(o.pow, hashBase)
	}
	return o, nil
}

func (o *Opaque) Len() int { return o.l }

func (o *Opaque) Reset() { o.head, o.seen, o.v = 0, 0, 0 }

func (o *Opaque) Push(b byte) (uint64, bool) {
	if o.win == nil {
		o.v = (o.v<<8 | uint64(b)) & o.mask
	} else {
		if o.seen >= o.l {
			out := o.win[o.head]
			o.v = subMod(o.v, mulMod(uint64(out), o.pow))
		}
		o.v = addMod(mulMod(o.v, hashBase), uint64(b))
		o.win[o.head] = b
		o.head++
		if o.head == o.l {
			o.head = 0
		}
	}
	if o.seen < o.l {
		o.seen++
	}
	if o.seen < o.l {
		return 0, false
	}
	return o.v, true
}

func mulMod(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	r := (hi<<3 | lo>>61) + lo&mersenne61
	if r >= mersenne61 {
		r -= mersenne61
	}
	if r >= mersenne61 {
		r -= mersenne61
	}
	return r
}

func addMod(a, b uint64) uint64 {
	r := a + b
	if r >= mersenne61 {
		r -= mersenne61
	}
	return r
}

func subMod(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + mersenne61 - b
}
