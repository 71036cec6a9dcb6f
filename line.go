package curve

import "iter"

var _ Evaluator[float64, float64] = Linear[float64]{}
var _ Subdivider[float64, Linear[float64]] = Linear[float64]{}
var _ Expander[Quadratic[float64]] = Linear[float64]{}

// Linear is a linear Bézier curve in one dimension, that is, a linear
// interpolation between its two control points.
type Linear[T Float] struct {
	P0 T
	P1 T
}

// NewLinear returns the linear curve with control points p0 and p1.
func NewLinear[T Float](p0, p1 T) Linear[T] {
	return Linear[T]{p0, p1}
}

func (l Linear[T]) Eval(t T) T {
	checkParam(t)
	return lerp(l.P0, l.P1, t)
}

func (l Linear[T]) Subdivide(t T) (Linear[T], Linear[T]) {
	checkSplit(t)
	m := lerp(l.P0, l.P1, t)
	return Linear[T]{l.P0, m}, Linear[T]{m, l.P1}
}

// Expand raises the degree by 1.
//
// The midpoint of the line becomes the quadratic's middle control point, which
// represents the line exactly.
func (l Linear[T]) Expand() Quadratic[T] {
	return Quadratic[T]{l.P0, lerp(l.P0, l.P1, 0.5), l.P1}
}

func (l Linear[T]) Start() T { return l.P0 }
func (l Linear[T]) End() T   { return l.P1 }

func (l Linear[T]) ControlPoints() [][]T {
	return [][]T{{l.P0, l.P1}}
}

// Trace returns an iterator over the given number of evenly spaced samples of
// the curve.
func (l Linear[T]) Trace(points int) iter.Seq[T] {
	return Trace[T, T](l, points)
}

func (l Linear[T]) IsInf() bool {
	return isInf(l.P0) || isInf(l.P1)
}

func (l Linear[T]) IsNaN() bool {
	return isNaN(l.P0) || isNaN(l.P1)
}

// lerp linearly interpolates between a and b.
func lerp[T Float](a, b, t T) T {
	return a*(1-t) + b*t
}
