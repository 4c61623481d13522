// internal/minimizer/extract.go
package minimizer

import (
	"context"

	"minspace/internal/kmer"
)

// cancelEvery is how many bytes are consumed between ctx checks.
const cancelEvery = 1 << 16

// Stream is the ordered, deduplicated minimizer values of one sequence.
type Stream struct {
	Values []uint64
	Max    uint64
}

// Count is the number of tokens in the stream.
func (s Stream) Count() int { return len(s.Values) }

// Extract runs seq through enc and sel and calls emit for every minimizer.
// Both enc and sel are used from their current state; callers reuse them
// across sequences with Reset.
func Extract(ctx context.Context, enc kmer.Encoder, sel *Selector, seq []byte, emit func(Minimizer) error) error {
	first := enc.Len() - 1 // index of the byte that completes the first window
	for i, b := range seq {
		if i%cancelEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		v, ok := enc.Push(b)
		if i < first {
			continue
		}
		var (
			m   Minimizer
			hit bool
		)
		if ok {
			m, hit = sel.Push(v)
		} else {
			m, hit = sel.Skip()
		}
		if !hit {
			continue
		}
		if err := emit(m); err != nil {
			return err
		}
	}
	return nil
}

// Collect extracts the whole token stream of seq into memory.
// A sequence shorter than l+w-1 yields an empty stream, not an error.
func Collect(ctx context.Context, mode kmer.Mode, l, w int, seq []byte) (Stream, error) {
	enc, err := kmer.New(mode, l)
	if err != nil {
		return Stream{}, err
	}
	sel, err := NewSelector(w)
	if err != nil {
		return Stream{}, err
	}
	var s Stream
	if n := len(seq) - l - w + 2; n > 0 {
		// the bound is loose for real data; cap the up-front reservation
		s.Values = make([]uint64, 0, min(n, 1<<20))
	}
	err = Extract(ctx, enc, sel, seq, func(m Minimizer) error {
		s.Values = append(s.Values, m.Value)
		return nil
	})
	if err != nil {
		return Stream{}, err
	}
	s.Max = sel.Max()
	return s, nil
}
