// Package tonecurve implements piecewise cubic splines for tone-response
// curves, such as the exposure and contrast curves of a raw photo editor.
//
// A user places a small number of control points, called knots, and the
// package generates a smooth function that passes through every one of them.
// Between two neighbouring knots the function is a single cubic polynomial.
// Values, first derivatives and second derivatives agree where two
// polynomials meet.
//
// # Knots and staleness
//
// A [Spline] owns an ordered sequence of knots. Knots may be added in any
// order with [Spline.Add]. New knots are staged and only merged into the
// sorted sequence when a read requires it, so that a burst of additions
// costs a single sort. [Spline.Move] and [Spline.Delete] address knots by
// their index in the sorted sequence; before the first read, that is their
// position in the slice passed to [New].
//
// Every read ([Spline.ValueAt], [Spline.Sample], [Spline.Knots], and so on)
// first brings the cached polynomials up to date. Between mutations, reads
// reuse the cached polynomials.
//
// # Runout
//
// The interpolation conditions leave the second derivative at the two end
// knots undetermined. The [Runout] of a spline fixes them:
//
//   - [Natural]: the second derivative is zero at both ends.
//   - [Parabolic]: each end copies the second derivative of its neighbour.
//   - [CubicExtrapolated]: each end extrapolates linearly from its two
//     nearest interior neighbours.
//
// The curvature at interior knots is always solved under the natural
// condition; the parabolic and extrapolated runouts only replace the two
// end values afterwards. This keeps curves identical to the ones produced
// by earlier versions of the editor, but it means that with the other
// runouts, slope and curvature jump slightly at the second and
// second-to-last knot.
//
// # Sampling
//
// Image pipelines don't evaluate curves point by point. [Spline.Sample]
// fills a caller-provided buffer with evenly spaced samples across [0, 1],
// extending the curve flatly beyond its first and last knot. The
// pdftransfer subpackage packs such samples into a PDF sampled function.
//
// # Drawing
//
// Each polynomial converts exactly into a cubic Bézier. [Spline.Path]
// returns the curve as a [honnef.co/go/curve.BezPath] that can be drawn,
// transformed, or written as SVG path data.
//
// # Concurrency
//
// A Spline performs no locking. Callers that share one between goroutines
// must serialize all access, including reads, since reads update caches.
package tonecurve
