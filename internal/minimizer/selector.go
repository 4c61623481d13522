// internal/minimizer/selector.go
package minimizer

import (
	"errors"
	"fmt"
)

// ErrWindow reports a window width below 1.
var ErrWindow = errors.New("invalid window width")

// Minimizer is an emitted window minimum and the leftmost position holding it.
type Minimizer struct {
	Value uint64
	Pos   int
}

type entry struct {
	val uint64
	pos int
}

// Selector is a monotonic deque over the last w positions.
//
// The deque lives in a fixed ring of w entries addressed by head and n, so
// evictions only move indices. Values are non-decreasing from front to back.
// Consecutive windows sharing a minimum value emit it once.
type Selector struct {
	w    int
	ring []entry
	head int
	n    int
	pos  int // position of the next Push/Skip

	emitted bool
	last    uint64
	max     uint64
	count   int
}

// NewSelector returns a Selector for windows of w consecutive positions.
func NewSelector(w int) (*Selector, error) {
	if w < 1 {
		return nil, fmt.Errorf("%w: %d (must be >= 1)", ErrWindow, w)
	}
	return &Selector{w: w, ring: make([]entry, w)}, nil
}

// Push adds the value at the next position and reports the window
// minimizer if this step emits one.
func (s *Selector) Push(v uint64) (Minimizer, bool) {
	s.evictExpired()
	// Strictly greater: an equal value already queued is further left and wins ties.
	for s.n > 0 && s.ring[s.back()].val > v {
		s.n--
	}
	s.ring[(s.head+s.n)%s.w] = entry{val: v, pos: s.pos}
	s.n++
	return s.advance()
}

// Skip consumes a position that has no value (an excluded window).
func (s *Selector) Skip() (Minimizer, bool) {
	s.evictExpired()
	return s.advance()
}

// Max is the largest value emitted so far (0 before any emission).
func (s *Selector) Max() uint64 { return s.max }

// Count is the number of emissions so far.
func (s *Selector) Count() int { return s.count }

// Reset returns the selector to its initial filling state.
func (s *Selector) Reset() {
	s.head, s.n, s.pos = 0, 0, 0
	s.emitted, s.last, s.max, s.count = false, 0, 0, 0
}

func (s *Selector) back() int { return (s.head + s.n - 1) % s.w }

// evictExpired drops front entries that fall outside the window ending at s.pos.
func (s *Selector) evictExpired() {
	for s.n > 0 && s.ring[s.head].pos <= s.pos-s.w {
		s.head++
		if s.head == s.w {
			s.head = 0
		}
		s.n--
	}
}

func (s *Selector) advance() (Minimizer, bool) {
	p := s.pos
	s.pos++
	if p < s.w-1 || s.n == 0 {
		return Minimizer{}, false
	}
	front := s.ring[s.head]
	if s.emitted && front.val == s.last {
		return Minimizer{}, false
	}
	s.emitted = true
	s.last = front.val
	s.count++
	if front.val > s.max {
		s.max = front.val
	}
	return Minimizer{Value: front.val, Pos: front.pos}, true
}
