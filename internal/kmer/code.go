// internal/kmer/code.go
package kmer

/* ------------------------- 2-bit nucleotide codes ------------------------ */

const noCode = 0xff

var codes [256]byte // A=0 C=1 G=2 T=3, noCode otherwise

func init() {
	for i := range codes {
		codes[i] = noCode
	}
	set := func(c byte, v byte) { codes[c] = v; codes[c|0x20] = v }
	set('A', 0)
	set('C', 1)
	set('G', 2)
	set('T', 3)
	set('U', 3) // RNA input reads as T
}

var bases = [4]byte{'A', 'C', 'G', 'T'}

// Code returns the 2-bit code of a nucleotide. Anything outside ACGTU
// (either case) is ambiguous and reports ok=false.
func Code(b byte) (code uint64, ok bool) {
	c := codes[b]
	if c == noCode {
		return 0, false
	}
	return uint64(c), true
}

// Canonical is the strand-independent representative of a window.
func Canonical(fwd, rc uint64) uint64 {
	if rc < fwd {
		return rc
	}
	return fwd
}

// RevComp returns the reverse complement of an l-base 2-bit code.
func RevComp(code uint64, l int) uint64 {
	var rc uint64
	for i := 0; i < l; i++ {
		rc = rc<<2 | (3 - code&3)
		code >>= 2
	}
	return rc
}

// Encode packs seq (at most 32 bases) into a 2-bit code, first base most
// significant. ok is false if seq holds an ambiguous base.
func Encode(seq []byte) (code uint64, ok bool) {
	for _, b := range seq {
		c, good := Code(b)
		if !good {
			return 0, false
		}
		code = code<<2 | c
	}
	return code, true
}

// RevCompSeq returns the reverse complement of seq as uppercase bases.
// Ambiguous bytes become 'N'.
func RevCompSeq(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := codes[seq[n-1-i]]
		if c == noCode {
			out[i] = 'N'
			continue
		}
		out[i] = bases[3-c]
	}
	return out
}
