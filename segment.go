package tonecurve

import (
	"fmt"

	"honnef.co/go/curve"
)

// Segment is the cubic polynomial of a spline between two neighbouring knots.
//
// For x in [X0, X1) the spline's value is D + C·t + B·t² + A·t³, with
// t = x − X0. D is the left knot's y.
type Segment struct {
	X0, X1     float64
	A, B, C, D float64
}

func (s Segment) String() string {
	return fmt.Sprintf("[%g, %g): %g + %g·t + %g·t² + %g·t³", s.X0, s.X1, s.D, s.C, s.B, s.A)
}

// Eval evaluates the polynomial at x. x isn't restricted to the segment.
func (s Segment) Eval(x float64) float64 {
	t := x - s.X0
	return s.D + t*(s.C+t*(s.B+t*s.A))
}

// Deriv evaluates the first derivative at x.
func (s Segment) Deriv(x float64) float64 {
	t := x - s.X0
	return s.C + t*(2*s.B+t*3*s.A)
}

// Deriv2 evaluates the second derivative at x.
func (s Segment) Deriv2(x float64) float64 {
	t := x - s.X0
	return 2*s.B + 6*s.A*t
}

// Start returns the segment's left knot.
func (s Segment) Start() curve.Point {
	return curve.Pt(s.X0, s.D)
}

// End returns the segment's value at X1.
func (s Segment) End() curve.Point {
	return curve.Pt(s.X1, s.Eval(s.X1))
}

// Bez returns the cubic Bézier that traces the segment's graph from X0 to X1.
// The conversion is exact, up to rounding.
func (s Segment) Bez() curve.CubicBez {
	h := s.X1 - s.X0
	// Power basis in u = t/h, then Bernstein basis.
	p0 := s.D
	p1 := s.C * h
	p2 := s.B * h * h
	p3 := s.A * h * h * h
	return curve.CubicBez{
		P0: curve.Pt(s.X0, p0),
		P1: curve.Pt(s.X0+h/3, p0+p1/3),
		P2: curve.Pt(s.X0+2*h/3, p0+2*p1/3+p2/3),
		P3: curve.Pt(s.X1, p0+p1+p2+p3),
	}
}

// Extrema returns the x positions strictly inside the segment at which its
// first derivative is zero, in increasing order.
func (s Segment) Extrema() ([2]float64, int) {
	var out [2]float64
	var n int
	if s.A == 0 && s.B == 0 {
		// Linear or constant. SolveQuadratic reports a root of 0 for the
		// constant case, which isn't an extremum we care about.
		return out, 0
	}
	roots, nr := curve.SolveQuadratic(s.C, 2*s.B, 3*s.A)
	h := s.X1 - s.X0
	for _, t := range roots[:nr] {
		if t > 0 && t < h {
			out[n] = s.X0 + t
			n++
		}
	}
	return out, n
}

// buildSegments computes the polynomials of the spline through knots, which
// must be sorted by x. It returns nil for fewer than two knots.
func buildSegments(knots []Knot, runout Runout) ([]Segment, error) {
	n := len(knots)
	if n < 2 {
		return nil, nil
	}
	for i := range n - 1 {
		if knots[i+1].X == knots[i].X {
			return nil, &SolveError{Knot: i, Err: ErrSingular}
		}
	}
	if n == 2 {
		k0, k1 := knots[0], knots[1]
		return []Segment{{
			X0: k0.X,
			X1: k1.X,
			C:  (k1.Y - k0.Y) / (k1.X - k0.X),
			D:  k0.Y,
		}}, nil
	}

	h := make([]float64, n-1)
	slope := make([]float64, n-1)
	for i := range n - 1 {
		h[i] = knots[i+1].X - knots[i].X
		slope[i] = (knots[i+1].Y - knots[i].Y) / h[i]
	}

	// One row per interior knot.
	rows := n - 2
	a := make([]float64, rows)
	b := make([]float64, rows)
	c := make([]float64, rows)
	r := make([]float64, rows)
	for j := range rows {
		a[j] = h[j]
		b[j] = 2 * (h[j] + h[j+1])
		c[j] = h[j+1]
		r[j] = 6 * (slope[j+1] - slope[j])
	}
	interior, err := SolveTridiagonal(a, b, c, r)
	if err != nil {
		return nil, &SolveError{Knot: -1, Err: err}
	}

	m := make([]float64, n)
	copy(m[1:], interior)
	runout.apply(m)

	segs := make([]Segment, n-1)
	for i := range segs {
		segs[i] = Segment{
			X0: knots[i].X,
			X1: knots[i+1].X,
			A:  (m[i+1] - m[i]) / (6 * h[i]),
			B:  m[i] / 2,
			C:  slope[i] - h[i]*(m[i+1]+2*m[i])/6,
			D:  knots[i].Y,
		}
	}
	return segs, nil
}
