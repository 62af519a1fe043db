package tonecurve

import (
	"math"
	"sort"

	"honnef.co/go/curve"
)

// segmentAt returns the index of the segment to use for x: the segment i
// with knots[i].X ≤ x < knots[i+1].X, the first segment for x left of the
// curve, and the last segment for x at or right of the last knot. The spline
// must be clean and have at least two knots.
func (s *Spline) segmentAt(x float64) int {
	// Find the first knot strictly greater than x.
	i := sort.Search(len(s.knots), func(i int) bool { return s.knots[i].X > x })
	return min(max(i-1, 0), len(s.segs)-1)
}

// ValueAt returns the spline's value at x.
//
// Outside of its knots, the spline continues the polynomial of the first or
// last interval. Use [Spline.Sample] for flat extension.
func (s *Spline) ValueAt(x float64) (float64, error) {
	if err := s.refresh(); err != nil {
		return 0, err
	}
	return s.valueAt(x), nil
}

func (s *Spline) valueAt(x float64) float64 {
	if last := s.knots[len(s.knots)-1]; x == last.X {
		// The last knot lies at the open end of the last segment. Return its y
		// instead of evaluating the polynomial, which is off by rounding.
		return last.Y
	}
	return s.segs[s.segmentAt(x)].Eval(x)
}

// Slope returns the spline's first derivative at x.
func (s *Spline) Slope(x float64) (float64, error) {
	if err := s.refresh(); err != nil {
		return 0, err
	}
	return s.segs[s.segmentAt(x)].Deriv(x), nil
}

// Curvature returns the spline's second derivative at x.
func (s *Spline) Curvature(x float64) (float64, error) {
	if err := s.refresh(); err != nil {
		return 0, err
	}
	return s.segs[s.segmentAt(x)].Deriv2(x), nil
}

// Bounds returns the smallest rectangle containing the spline between its
// first and last knot. Overshoot between knots is included.
func (s *Spline) Bounds() (curve.Rect, error) {
	if err := s.refresh(); err != nil {
		return curve.Rect{}, err
	}
	first, last := s.knots[0], s.knots[len(s.knots)-1]
	r := curve.NewRectFromPoints(first.Point(), last.Point())
	for _, k := range s.knots[1 : len(s.knots)-1] {
		r = r.UnionPoint(k.Point())
	}
	for _, seg := range s.segs {
		ext, n := seg.Extrema()
		for _, x := range ext[:n] {
			r = r.UnionPoint(curve.Pt(x, seg.Eval(x)))
		}
	}
	return r, nil
}

// Invert returns an x between the first and last knot at which the spline's
// value is y, to within accuracy. The spline should be monotonic; otherwise,
// one of possibly several solutions is returned. If y isn't between the
// values at the first and last knot, [ErrNoInverse] is returned.
func (s *Spline) Invert(y, accuracy float64) (float64, error) {
	if err := s.refresh(); err != nil {
		return 0, err
	}
	first, last := s.knots[0], s.knots[len(s.knots)-1]
	switch y {
	case first.Y:
		return first.X, nil
	case last.Y:
		return last.X, nil
	}
	sign := 1.0
	if first.Y > last.Y {
		sign = -1
	}
	f := func(x float64) float64 { return sign * (s.valueAt(x) - y) }
	ya, yb := f(first.X), f(last.X)
	if !(ya < 0 && yb > 0) || math.IsNaN(y) {
		return 0, ErrNoInverse
	}
	a, b := first.X, last.X
	return curve.SolveITP(f, a, b, accuracy, 1, 0.2/(b-a), ya, yb), nil
}
