package tonecurve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-12)

// Knots from the end-to-end examples: a monotone S-shape, and a curve that
// overshoots between its second and third knot.
var (
	sCurve = []Knot{{0, 0}, {0.2, 0.1}, {0.5, 0.6}, {0.8, 0.9}, {1, 1}}
	bump   = []Knot{{0, 0}, {0.3, 0.5}, {0.6, 0.4}, {1, 1}}
)

var runouts = []Runout{Natural, Parabolic, CubicExtrapolated}
