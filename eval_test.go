package tonecurve

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestValueAtKnots(t *testing.T) {
	for _, knots := range [][]Knot{sCurve, bump} {
		for _, r := range runouts {
			s := New(knots, r)
			for _, k := range knots {
				if got := mustValue(t, s, k.X); got != k.Y {
					t.Errorf("%v: ValueAt(%g) = %g, want %g", r, k.X, got, k.Y)
				}
			}
		}
	}
}

func TestValueAtOutside(t *testing.T) {
	// Outside of the knots, ValueAt continues the end polynomials instead of
	// clamping.
	s := New([]Knot{{0.2, 0.2}, {0.8, 0.6}}, Natural)
	if got, want := mustValue(t, s, 0), 0.2-0.2*(0.4/0.6); math.Abs(got-want) > 1e-12 {
		t.Errorf("ValueAt(0) = %g, want %g", got, want)
	}
	if got, want := mustValue(t, s, 1), 0.6+0.2*(0.4/0.6); math.Abs(got-want) > 1e-12 {
		t.Errorf("ValueAt(1) = %g, want %g", got, want)
	}
}

func TestNaturalBoundary(t *testing.T) {
	s := New(bump, Natural)
	first, last := bump[0].X, bump[len(bump)-1].X

	for _, x := range []float64{first, last} {
		c, err := s.Curvature(x)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(c) > 1e-9 {
			t.Errorf("Curvature(%g) = %g, want 0", x, c)
		}
	}

	// Finite differences approach zero as the step shrinks.
	f := func(x float64) float64 { return mustValue(t, s, x) }
	prevStart, prevEnd := math.Inf(1), math.Inf(1)
	for _, h := range []float64{1e-2, 1e-3, 1e-4} {
		start := math.Abs(f(first+2*h)-2*f(first+h)+f(first)) / (h * h)
		end := math.Abs(f(last)-2*f(last-h)+f(last-2*h)) / (h * h)
		if start >= prevStart || end >= prevEnd {
			t.Errorf("h=%g: second differences %g and %g didn't shrink", h, start, end)
		}
		prevStart, prevEnd = start, end
	}
	if prevStart > 1e-2 || prevEnd > 1e-2 {
		t.Errorf("second differences %g and %g not close to zero", prevStart, prevEnd)
	}
}

func TestSlope(t *testing.T) {
	s := Identity(Natural)
	for _, x := range []float64{0, 0.3, 1} {
		got, err := s.Slope(x)
		if err != nil {
			t.Fatal(err)
		}
		if got != 1 {
			t.Errorf("Slope(%g) = %g, want 1", x, got)
		}
	}

	// Compare against central differences on a curved spline.
	s = New(bump, Natural)
	const h = 1e-6
	for _, x := range []float64{0.1, 0.3, 0.45, 0.9} {
		got, err := s.Slope(x)
		if err != nil {
			t.Fatal(err)
		}
		want := (mustValue(t, s, x+h) - mustValue(t, s, x-h)) / (2 * h)
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("Slope(%g) = %g, want ≈%g", x, got, want)
		}
	}
}

func TestBounds(t *testing.T) {
	s := New(bump, Natural)
	r, err := s.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	if r.X0 != 0 || r.X1 != 1 || r.Y0 != 0 {
		t.Errorf("got bounds %v, want x ∈ [0, 1] and minimum y 0", r)
	}
	// The curve overshoots its second knot.
	if r.Y1 <= 0.5 {
		t.Errorf("maximum y %g doesn't include the overshoot", r.Y1)
	}

	samples, err := s.Sample(nil, 1001)
	if err != nil {
		t.Fatal(err)
	}
	top := math.Inf(-1)
	for i, y := range samples {
		if y < r.Y0-1e-12 || y > r.Y1+1e-12 {
			t.Errorf("sample %d = %g outside of bounds [%g, %g]", i, y, r.Y0, r.Y1)
		}
		top = max(top, y)
	}
	if r.Y1-top > 1e-4 {
		t.Errorf("bounds %v not tight, maximum sample is %g", r, top)
	}
}

func TestInvert(t *testing.T) {
	s := New(sCurve, Natural)
	for _, y := range []float64{0.05, 0.3, 0.6, 0.95} {
		t.Run(fmt.Sprint(y), func(t *testing.T) {
			x, err := s.Invert(y, 1e-10)
			if err != nil {
				t.Fatal(err)
			}
			if got := mustValue(t, s, x); math.Abs(got-y) > 1e-8 {
				t.Errorf("Invert(%g) = %g, which maps to %g", y, x, got)
			}
		})
	}

	for _, k := range []Knot{sCurve[0], sCurve[len(sCurve)-1]} {
		if x, err := s.Invert(k.Y, 1e-10); err != nil || x != k.X {
			t.Errorf("Invert(%g) = (%g, %v), want (%g, nil)", k.Y, x, err, k.X)
		}
	}
	for _, y := range []float64{-0.5, 1.5, math.NaN()} {
		if _, err := s.Invert(y, 1e-10); !errors.Is(err, ErrNoInverse) {
			t.Errorf("Invert(%g): got error %v, want %v", y, err, ErrNoInverse)
		}
	}

	// Decreasing curves work, too.
	s = New([]Knot{{0, 1}, {1, 0}}, Natural)
	x, err := s.Invert(0.25, 1e-10)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(x-0.75) > 1e-9 {
		t.Errorf("Invert(0.25) = %g, want 0.75", x)
	}
}
