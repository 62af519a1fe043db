package tonecurve

import "math"

// Sample evaluates the spline at n evenly spaced positions across [0, 1] and
// stores the values in dst, which is returned resliced to length n. If dst
// is too small, a new slice is allocated. Position i is i/(n−1); a single
// sample is taken at 0.
//
// Positions left of the first knot take the first knot's y, and positions
// right of the last knot take the last knot's y.
func (s *Spline) Sample(dst []float64, n int) ([]float64, error) {
	return s.SampleRange(dst, n, 0, 1)
}

// SampleRange is like [Spline.Sample] but samples across [x0, x1].
func (s *Spline) SampleRange(dst []float64, n int, x0, x1 float64) ([]float64, error) {
	if err := s.refresh(); err != nil {
		return dst[:0], err
	}
	if n <= 0 {
		return dst[:0], nil
	}
	if cap(dst) >= n {
		dst = dst[:n]
	} else {
		dst = make([]float64, n)
	}

	first, last := s.knots[0], s.knots[len(s.knots)-1]
	step := 0.0
	if n > 1 {
		step = (x1 - x0) / float64(n-1)
	}
	for i := range dst {
		x := x0 + float64(i)*step
		if i == n-1 && n > 1 {
			// Avoid rounding past the end of the domain.
			x = x1
		}
		switch {
		case x < first.X:
			dst[i] = first.Y
		case x > last.X:
			dst[i] = last.Y
		default:
			dst[i] = s.valueAt(x)
		}
	}
	return dst, nil
}

// SampleUint16 is like [Spline.Sample] but clamps the values to [0, 1] and
// scales them to [0, 65535], for use as a lookup table.
func (s *Spline) SampleUint16(dst []uint16, n int) ([]uint16, error) {
	return s.SampleLevels(dst, n, math.MaxUint16)
}

// SampleLevels is like [Spline.Sample] but clamps the values to [0, 1] and
// scales them to the integers [0, maxVal], rounding to the nearest level.
func (s *Spline) SampleLevels(dst []uint16, n int, maxVal uint16) ([]uint16, error) {
	vals, err := s.Sample(nil, n)
	if err != nil {
		return dst[:0], err
	}
	if cap(dst) >= len(vals) {
		dst = dst[:len(vals)]
	} else {
		dst = make([]uint16, len(vals))
	}
	for i, v := range vals {
		dst[i] = quantize(v, maxVal)
	}
	return dst, nil
}

func quantize(v float64, maxVal uint16) uint16 {
	if !(v > 0) {
		// Also catches NaN.
		return 0
	}
	if v >= 1 {
		return maxVal
	}
	return uint16(math.Round(v * float64(maxVal)))
}
