// Package pdftransfer converts tone curves into PDF sampled functions.
//
// A PDF Type 0 function with one input and one output is a lookup table
// that PDF consumers interpolate linearly. Such a function can serve as a
// transfer function in a graphics state, or as the tint transform of a
// separation colour space, applying a [tonecurve.Spline] to page content.
package pdftransfer

import (
	"fmt"

	"seehuhn.de/go/pdf/function"
)

// Sampler is implemented by curves that can be sampled evenly across
// [0, 1] and quantised to integer levels, such as *tonecurve.Spline.
type Sampler interface {
	SampleLevels(dst []uint16, n int, maxVal uint16) ([]uint16, error)
}

// Type0 samples c at n evenly spaced positions across [0, 1] and returns the
// samples as a PDF Type 0 function with domain and range [0, 1]. Samples are
// clamped to [0, 1] and stored with bitsPerSample bits, which must be 8 or
// 16.
func Type0(c Sampler, n int, bitsPerSample int) (*function.Type0, error) {
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 samples, got %d", n)
	}
	if bitsPerSample != 8 && bitsPerSample != 16 {
		return nil, fmt.Errorf("unsupported bits per sample %d", bitsPerSample)
	}
	maxVal := uint16(uint32(1)<<bitsPerSample - 1)
	levels, err := c.SampleLevels(nil, n, maxVal)
	if err != nil {
		return nil, err
	}

	bytesPerSample := bitsPerSample / 8
	data := make([]byte, 0, n*bytesPerSample)
	for _, q := range levels {
		if bytesPerSample == 2 {
			data = append(data, byte(q>>8))
		}
		data = append(data, byte(q))
	}

	return &function.Type0{
		Domain:        []float64{0, 1},
		Range:         []float64{0, 1},
		Size:          []int{n},
		BitsPerSample: bitsPerSample,
		UseCubic:      false,
		Samples:       data,
	}, nil
}
