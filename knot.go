package tonecurve

import (
	"fmt"

	"honnef.co/go/curve"
)

// Knot is a control point that a spline passes through.
type Knot struct {
	X float64
	Y float64
}

// K returns the knot (x, y).
func K(x, y float64) Knot {
	return Knot{X: x, Y: y}
}

// KnotFromPoint converts a point, such as the position of a pointer in curve
// coordinates, into a knot.
func KnotFromPoint(pt curve.Point) Knot {
	return Knot(pt)
}

// Point returns the knot as a point in curve coordinates.
func (k Knot) Point() curve.Point {
	return curve.Point(k)
}

func (k Knot) String() string {
	return fmt.Sprintf("(%g, %g)", k.X, k.Y)
}

func compareKnots(a, b Knot) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	default:
		return 0
	}
}
