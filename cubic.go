package curve

import (
	"fmt"
	"iter"
)

// DefaultMaxSubdivisions is the subdivision budget used by
// [Cubic.Quadratics] and [CubicPair.Quadratics].
const DefaultMaxSubdivisions = 1024

var _ Evaluator[float64, float64] = Cubic[float64]{}
var _ Reducible[float64, Cubic[float64], Quadratic[float64]] = Cubic[float64]{}

// Cubic is a cubic Bézier curve in one dimension.
type Cubic[T Float] struct {
	P0 T
	P1 T
	P2 T
	P3 T
}

// NewCubic returns the cubic curve with control points p0, p1, p2 and p3.
func NewCubic[T Float](p0, p1, p2, p3 T) Cubic[T] {
	return Cubic[T]{p0, p1, p2, p3}
}

// Eval evaluates the curve at t using de Casteljau's algorithm.
func (c Cubic[T]) Eval(t T) T {
	checkParam(t)
	b0 := lerp(c.P0, c.P1, t)
	b1 := lerp(c.P1, c.P2, t)
	b2 := lerp(c.P2, c.P3, t)
	b0 = lerp(b0, b1, t)
	b1 = lerp(b1, b2, t)
	return lerp(b0, b1, t)
}

// Subdivide splits the curve at t, using de Casteljau.
//
// The head covers [0, t] and the tail [t, 1] of the original curve, both
// reparametrized onto [0, 1]. Together they reproduce the curve exactly.
func (c Cubic[T]) Subdivide(t T) (Cubic[T], Cubic[T]) {
	checkSplit(t)
	b0 := lerp(c.P0, c.P1, t)
	b1 := lerp(c.P1, c.P2, t)
	b2 := lerp(c.P2, c.P3, t)
	bb0 := lerp(b0, b1, t)
	bb1 := lerp(b1, b2, t)
	m := lerp(bb0, bb1, t)
	return Cubic[T]{c.P0, b0, bb0, m}, Cubic[T]{m, bb1, b2, c.P3}
}

// Subsegment returns the part of the curve between t0 and t1, reparametrized
// onto [0, 1]. It panics unless 0 ≤ t0 < t1 ≤ 1.
func (c Cubic[T]) Subsegment(t0, t1 T) Cubic[T] {
	if !(t0 >= 0 && t0 < t1 && t1 <= 1) {
		panic(fmt.Sprintf("invalid subsegment [%v, %v]", t0, t1))
	}
	out := c
	if t1 < 1 {
		out, _ = out.Subdivide(t1)
	}
	if t0 > 0 {
		_, out = out.Subdivide(t0 / t1)
	}
	return out
}

// Reduce returns the quadratic curve that best fits c in the least-squares
// sense.
//
// The coefficients are the pseudo-inverse of the degree elevation performed
// by [Quadratic.Expand], so reducing an expanded quadratic gives back the
// quadratic. They are applied to offsets from P0, which makes constant curves
// reduce exactly.
func (c Cubic[T]) Reduce() Quadratic[T] {
	d1 := c.P1 - c.P0
	d2 := c.P2 - c.P0
	d3 := c.P3 - c.P0
	return Quadratic[T]{
		c.P0 + 0.15*d1 - 0.15*d2 + 0.05*d3,
		c.P0 + 0.75*d1 + 0.75*d2 - 0.25*d3,
		c.P0 - 0.15*d1 + 0.15*d2 + 0.95*d3,
	}
}

func (c Cubic[T]) Start() T { return c.P0 }
func (c Cubic[T]) End() T   { return c.P3 }

func (c Cubic[T]) ControlPoints() [][]T {
	return [][]T{{c.P0, c.P1, c.P2, c.P3}}
}

// Trace returns an iterator over the given number of evenly spaced samples of
// the curve.
func (c Cubic[T]) Trace(points int) iter.Seq[T] {
	return Trace[T, T](c, points)
}

// Approximate returns an approximation of c by quadratic curves, admitted by
// goodness.
func (c Cubic[T]) Approximate(
	goodness Goodness[Cubic[T]],
	opts ...ApproximationOption,
) *Approximation[T, Cubic[T], Quadratic[T]] {
	return NewApproximation[T, Cubic[T], Quadratic[T]](c, goodness, opts...)
}

// Quadratics approximates c by quadratic curves whose control points, once
// expanded, are within tolerance of those of the approximated part of c.
//
// At most [DefaultMaxSubdivisions] subdivisions are made. The iterator always
// produces at least one value.
func (c Cubic[T]) Quadratics(tolerance T) iter.Seq[Quadratic[T]] {
	g := NewTolerance[Cubic[T]](tolerance, WithMaxSubdivisions(DefaultMaxSubdivisions))
	return c.Approximate(g).Curves()
}

func (c Cubic[T]) IsInf() bool {
	return isInf(c.P0) || isInf(c.P1) || isInf(c.P2) || isInf(c.P3)
}

func (c Cubic[T]) IsNaN() bool {
	return isNaN(c.P0) || isNaN(c.P1) || isNaN(c.P2) || isNaN(c.P3)
}
