package tonecurve

import (
	"honnef.co/go/curve"
)

// Path returns the spline between its first and last knot as a path of cubic
// Béziers, one per segment.
func (s *Spline) Path() (curve.BezPath, error) {
	if err := s.refresh(); err != nil {
		return nil, err
	}
	p := make(curve.BezPath, 0, len(s.segs)+1)
	p.MoveTo(s.knots[0].Point())
	for i, seg := range s.segs {
		c := seg.Bez()
		// Use the exact knot position instead of the rounded segment end.
		p.CubicTo(c.P1, c.P2, s.knots[i+1].Point())
	}
	return p, nil
}

// PathIn returns [Spline.Path] mapped from the unit square into r, with the
// y axis pointing down. This is the path a curve editor draws into a widget
// occupying r.
func (s *Spline) PathIn(r curve.Rect) (curve.BezPath, error) {
	p, err := s.Path()
	if err != nil {
		return nil, err
	}
	// Flip y inside the unit square, then map the unit square onto r.
	flip := curve.FlipY.ThenTranslate(curve.Vec(0, 1))
	p.ApplyTransform(curve.MapUnitSquare(r).Mul(flip))
	return p, nil
}

// SVG returns the spline's path as SVG path data.
func (s *Spline) SVG(opts curve.SVGOptions) (string, error) {
	p, err := s.Path()
	if err != nil {
		return "", err
	}
	return p.SVG(opts), nil
}
