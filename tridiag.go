package tonecurve

import "fmt"

// SolveTridiagonal solves A·x = r for x, where A is the n×n matrix with
// sub-diagonal a, diagonal b, and super-diagonal c. a[0] and c[n-1] lie
// outside of the matrix and are ignored.
//
// The system is solved by forward elimination and back substitution (the
// Thomas algorithm), without pivoting. This is stable for diagonally dominant
// matrices, which includes every system built for a spline with distinct
// knots. If a pivot is exactly zero, [ErrSingular] is returned.
//
// The inputs are not modified. All four slices must have the same length.
func SolveTridiagonal(a, b, c, r []float64) ([]float64, error) {
	n := len(b)
	if len(a) != n || len(c) != n || len(r) != n {
		return nil, fmt.Errorf("mismatched tridiagonal system: len(a)=%d, len(b)=%d, len(c)=%d, len(r)=%d",
			len(a), n, len(c), len(r))
	}
	if n == 0 {
		return []float64{}, nil
	}
	if b[0] == 0 {
		return nil, ErrSingular
	}

	g := make([]float64, n)
	d := make([]float64, n)
	g[0] = c[0] / b[0]
	d[0] = r[0] / b[0]
	for i := 1; i < n; i++ {
		pivot := b[i] - a[i]*g[i-1]
		if pivot == 0 {
			return nil, ErrSingular
		}
		d[i] = (r[i] - a[i]*d[i-1]) / pivot
		g[i] = c[i] / pivot
	}
	for i := n - 2; i >= 0; i-- {
		d[i] -= g[i] * d[i+1]
	}
	return d, nil
}
