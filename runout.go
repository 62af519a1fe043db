package tonecurve

import "fmt"

// Runout selects the boundary condition at the first and last knot.
type Runout uint8

const (
	// Natural sets the second derivative at both ends to zero.
	Natural Runout = iota
	// Parabolic gives each end the second derivative of its neighbour, so the
	// end intervals are parabolas.
	Parabolic
	// CubicExtrapolated extrapolates each end's second derivative linearly
	// from the two nearest interior knots.
	CubicExtrapolated
)

var runoutNames = [...]string{
	Natural:           "natural",
	Parabolic:         "parabolic",
	CubicExtrapolated: "cubic",
}

func (r Runout) String() string {
	if int(r) < len(runoutNames) {
		return runoutNames[r]
	}
	return fmt.Sprintf("Runout(%d)", uint8(r))
}

func (r Runout) valid() bool {
	return int(r) < len(runoutNames)
}

// ParseRunout returns the runout named s, as produced by [Runout.String].
func ParseRunout(s string) (Runout, error) {
	for i, name := range runoutNames {
		if name == s {
			return Runout(i), nil
		}
	}
	return 0, fmt.Errorf("unknown runout %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (r Runout) MarshalText() ([]byte, error) {
	if !r.valid() {
		return nil, fmt.Errorf("invalid runout %d", uint8(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (r *Runout) UnmarshalText(b []byte) error {
	v, err := ParseRunout(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// apply fills in m[0] and m[len(m)-1] after the interior values have been
// solved for. m must have at least three elements and both ends must still
// hold the natural value of zero.
func (r Runout) apply(m []float64) {
	n := len(m)
	switch r {
	case Parabolic:
		m[0] = m[1]
		m[n-1] = m[n-2]
	case CubicExtrapolated:
		// Both ends extrapolate from the natural vector. With three knots
		// each end reads the other one, which must not be patched yet.
		first := 2*m[1] - m[2]
		last := 2*m[n-2] - m[n-3]
		m[0], m[n-1] = first, last
	default:
		m[0] = 0
		m[n-1] = 0
	}
}
