package tonecurve

import (
	"math"
	"slices"
)

// state tracks which cached data of a spline is stale. States are ordered:
// a spline in state s also needs the work of every state between s and
// clean.
type state uint8

const (
	clean state = iota
	needsRecompute
	needsSort
	needsMerge
)

func (s state) String() string {
	switch s {
	case clean:
		return "clean"
	case needsRecompute:
		return "needs recompute"
	case needsSort:
		return "needs sort"
	case needsMerge:
		return "needs merge"
	default:
		return "invalid state"
	}
}

// Spline is a piecewise cubic curve through a set of knots.
//
// The zero value is an empty spline with the natural runout.
type Spline struct {
	knots   []Knot
	pending []Knot
	segs    []Segment
	runout  Runout
	state   state
}

// New returns a spline through knots, which may be in any order. The slice
// is copied.
//
// The knots can be moved and deleted right away. Until the first read, their
// indices are their positions in knots; reads sort them by x.
func New(knots []Knot, runout Runout) *Spline {
	s := &Spline{
		knots:  slices.Clone(knots),
		runout: runout,
	}
	s.invalidate(needsSort)
	return s
}

// Identity returns the spline through (0, 0) and (1, 1).
func Identity(runout Runout) *Spline {
	return New([]Knot{{0, 0}, {1, 1}}, runout)
}

func (s *Spline) invalidate(st state) {
	s.state = max(s.state, st)
}

// Runout returns the spline's boundary condition.
func (s *Spline) Runout() Runout {
	return s.runout
}

// SetRunout replaces the spline's boundary condition.
func (s *Spline) SetRunout(r Runout) {
	if r == s.runout {
		return
	}
	s.runout = r
	s.invalidate(needsRecompute)
}

// Add adds the knot (x, y). It doesn't affect the indices of existing knots
// until the next read.
func (s *Spline) Add(x, y float64) {
	s.pending = append(s.pending, Knot{x, y})
	s.invalidate(needsMerge)
}

// Move replaces the knot at index i. The index refers to the knots as of the
// last read, or as passed to [New] if there was none; knots added since then
// can't be moved yet.
//
// Moving a knot past one of its neighbours changes the indices of both.
func (s *Spline) Move(i int, x, y float64) error {
	if i < 0 || i >= len(s.knots) {
		return &IndexError{Op: "move", Index: i, Len: len(s.knots)}
	}
	s.knots[i] = Knot{x, y}
	s.invalidate(needsSort)
	return nil
}

// Delete removes the knot at index i. Indices are interpreted as by
// [Spline.Move].
func (s *Spline) Delete(i int) error {
	if i < 0 || i >= len(s.knots) {
		return &IndexError{Op: "delete", Index: i, Len: len(s.knots)}
	}
	s.knots = slices.Delete(s.knots, i, i+1)
	s.invalidate(needsRecompute)
	return nil
}

// Len returns the number of knots, including knots that have been added but
// not yet merged.
func (s *Spline) Len() int {
	return len(s.knots) + len(s.pending)
}

// Knots returns a copy of the spline's knots, sorted by x.
func (s *Spline) Knots() []Knot {
	s.consolidate()
	return slices.Clone(s.knots)
}

// Knot returns the knot at index i of the sorted knots.
func (s *Spline) Knot(i int) (Knot, error) {
	s.consolidate()
	if i < 0 || i >= len(s.knots) {
		return Knot{}, &IndexError{Op: "knot", Index: i, Len: len(s.knots)}
	}
	return s.knots[i], nil
}

// Nearest returns the index of the knot closest to (x, y), or -1 if the
// spline has no knots. Ties resolve to the lower index.
func (s *Spline) Nearest(x, y float64) int {
	s.consolidate()
	best := -1
	bestDist := math.Inf(1)
	for i, k := range s.knots {
		dx, dy := k.X-x, k.Y-y
		if d := dx*dx + dy*dy; d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// consolidate merges pending knots and sorts the knots by x. It leaves the
// spline in state needsRecompute or clean.
func (s *Spline) consolidate() {
	switch s.state {
	case needsMerge:
		s.knots = append(s.knots, s.pending...)
		s.pending = s.pending[:0]
		fallthrough
	case needsSort:
		slices.SortStableFunc(s.knots, compareKnots)
		s.state = needsRecompute
	}
}

// refresh brings the knots and segments up to date. If the segments can't
// be built, the previous segments are kept and the spline stays stale.
func (s *Spline) refresh() error {
	s.consolidate()
	if s.state == needsRecompute {
		segs, err := buildSegments(s.knots, s.runout)
		if err != nil {
			return err
		}
		s.segs = segs
		s.state = clean
	}
	if len(s.knots) < 2 {
		return ErrEmpty
	}
	return nil
}

// Segments returns a copy of the spline's polynomials, one per interval
// between neighbouring knots.
func (s *Spline) Segments() ([]Segment, error) {
	if err := s.refresh(); err != nil {
		return nil, err
	}
	return slices.Clone(s.segs), nil
}
