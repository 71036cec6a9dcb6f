// Package curve provides Bézier curves of degree 1 to 3 and the adaptive
// approximation of cubic curves by sequences of quadratic curves.
//
// # Curves
//
// [Linear], [Quadratic] and [Cubic] are one-dimensional Bézier curves over any
// floating-point type. They are small immutable values; every operation
// returns new curves. Planar curves are pairs of one-dimensional curves, one
// per axis ([LinearPair], [QuadraticPair], [CubicPair]), and every operation on
// a pair is the same operation applied to each axis independently, see [Lift].
//
// The operations are described by small interfaces:
//
//   - [Evaluator]: evaluation at t ∈ [0, 1]
//   - [Subdivider]: exact splitting at t ∈ (0, 1), using de Casteljau
//   - [Reducer]: least-squares degree reduction
//   - [Expander]: exact degree elevation
//   - [Aligner]: pinning the endpoints of a reduced curve to the original's
//   - [ControlPointer]: access to control points, per axis
//
// Parameters outside of the documented ranges are programming errors and
// cause panics.
//
// # Approximation
//
// [Approximation] approximates a curve by curves of lower degree. A candidate
// is obtained by reducing the curve and aligning its endpoints. It is then
// expanded back to the original degree, so that a [Goodness] can compare it
// control point by control point with the original. Rejected curves are
// subdivided, and the halves are approximated in turn.
//
// The subdivision is driven by an explicit stack rather than recursion, and
// segments are produced lazily, in order from t = 0 to t = 1. Each [Segment]
// reports the parameter range of the original curve that it covers.
//
// The [Tolerance] goodness keeps a subdivision budget that is shared by the
// whole approximation. Once it is used up, candidates are admitted regardless
// of their error, which guarantees termination even for tolerances that
// cannot be met. Such segments are marked as [Segment.Exhausted].
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package curve
