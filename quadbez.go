package curve

import "iter"

var _ Evaluator[float64, float64] = Quadratic[float64]{}
var _ Subdivider[float64, Quadratic[float64]] = Quadratic[float64]{}
var _ Reduced[Cubic[float64], Quadratic[float64]] = Quadratic[float64]{}

// Quadratic is a quadratic Bézier curve in one dimension.
type Quadratic[T Float] struct {
	P0 T
	P1 T
	P2 T
}

// NewQuadratic returns the quadratic curve with control points p0, p1 and p2.
func NewQuadratic[T Float](p0, p1, p2 T) Quadratic[T] {
	return Quadratic[T]{p0, p1, p2}
}

// Eval evaluates the curve at t using de Casteljau's algorithm.
func (q Quadratic[T]) Eval(t T) T {
	checkParam(t)
	b0 := lerp(q.P0, q.P1, t)
	b1 := lerp(q.P1, q.P2, t)
	return lerp(b0, b1, t)
}

// Subdivide splits the curve at t, using de Casteljau.
func (q Quadratic[T]) Subdivide(t T) (Quadratic[T], Quadratic[T]) {
	checkSplit(t)
	b0 := lerp(q.P0, q.P1, t)
	b1 := lerp(q.P1, q.P2, t)
	m := lerp(b0, b1, t)
	return Quadratic[T]{q.P0, b0, m}, Quadratic[T]{m, b1, q.P2}
}

// Expand raises the order by 1.
//
// Returns a cubic Bézier curve that exactly represents this quadratic.
func (q Quadratic[T]) Expand() Cubic[T] {
	return Cubic[T]{
		q.P0,
		q.P0 + (q.P1-q.P0)*(2.0/3.0),
		q.P2 + (q.P1-q.P2)*(2.0/3.0),
		q.P2,
	}
}

// Align returns q with its endpoints replaced by those of the cubic it was
// reduced from.
func (q Quadratic[T]) Align(original Cubic[T]) Quadratic[T] {
	q.P0 = original.P0
	q.P2 = original.P3
	return q
}

func (q Quadratic[T]) Start() T { return q.P0 }
func (q Quadratic[T]) End() T   { return q.P2 }

func (q Quadratic[T]) ControlPoints() [][]T {
	return [][]T{{q.P0, q.P1, q.P2}}
}

// Trace returns an iterator over the given number of evenly spaced samples of
// the curve.
func (q Quadratic[T]) Trace(points int) iter.Seq[T] {
	return Trace[T, T](q, points)
}

func (q Quadratic[T]) IsInf() bool {
	return isInf(q.P0) || isInf(q.P1) || isInf(q.P2)
}

func (q Quadratic[T]) IsNaN() bool {
	return isNaN(q.P0) || isNaN(q.P1) || isNaN(q.P2)
}
