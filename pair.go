package curve

import "iter"

// Pair is a planar curve made of two curves of the same degree, one per axis,
// so that evaluating it at t yields (X(t), Y(t)).
//
// Every operation on a pair is the operation applied independently to each
// component; [Lift], [Lift2] and [LiftSplit] do the bookkeeping.
type Pair[C any] struct {
	X C
	Y C
}

// Lift applies f to each component of p.
func Lift[A, B any](p Pair[A], f func(A) B) Pair[B] {
	return Pair[B]{f(p.X), f(p.Y)}
}

// Lift2 applies f to corresponding components of p and q.
func Lift2[A, B, R any](p Pair[A], q Pair[B], f func(A, B) R) Pair[R] {
	return Pair[R]{f(p.X, q.X), f(p.Y, q.Y)}
}

// LiftSplit applies f, which splits a curve in two, to each component of p.
func LiftSplit[A any](p Pair[A], f func(A) (A, A)) (Pair[A], Pair[A]) {
	xh, xt := f(p.X)
	yh, yt := f(p.Y)
	return Pair[A]{xh, yh}, Pair[A]{xt, yt}
}

func axes[T Float, C ControlPointer[T]](p Pair[C]) [][]T {
	return append(p.X.ControlPoints(), p.Y.ControlPoints()...)
}

var _ Evaluator[float64, Point[float64]] = LinearPair[float64]{}
var _ Evaluator[float64, Point[float64]] = QuadraticPair[float64]{}
var _ Evaluator[float64, Point[float64]] = CubicPair[float64]{}
var _ Reduced[CubicPair[float64], QuadraticPair[float64]] = QuadraticPair[float64]{}
var _ Reducible[float64, CubicPair[float64], QuadraticPair[float64]] = CubicPair[float64]{}

// LinearPair is a planar line segment.
type LinearPair[T Float] Pair[Linear[T]]

// QuadraticPair is a planar quadratic Bézier curve.
type QuadraticPair[T Float] Pair[Quadratic[T]]

// CubicPair is a planar cubic Bézier curve.
type CubicPair[T Float] Pair[Cubic[T]]

func NewLinearPair[T Float](x, y Linear[T]) LinearPair[T] {
	return LinearPair[T]{x, y}
}

func NewQuadraticPair[T Float](x, y Quadratic[T]) QuadraticPair[T] {
	return QuadraticPair[T]{x, y}
}

func NewCubicPair[T Float](x, y Cubic[T]) CubicPair[T] {
	return CubicPair[T]{x, y}
}

// NewCubicPairFromPoints returns the planar cubic with the given control
// points.
func NewCubicPairFromPoints[T Float](p0, p1, p2, p3 Point[T]) CubicPair[T] {
	return CubicPair[T]{
		X: Cubic[T]{p0.X, p1.X, p2.X, p3.X},
		Y: Cubic[T]{p0.Y, p1.Y, p2.Y, p3.Y},
	}
}

func (p LinearPair[T]) Eval(t T) Point[T] {
	return Point[T](Lift(Pair[Linear[T]](p), func(l Linear[T]) T { return l.Eval(t) }))
}

func (p LinearPair[T]) Subdivide(t T) (LinearPair[T], LinearPair[T]) {
	head, tail := LiftSplit(Pair[Linear[T]](p), func(l Linear[T]) (Linear[T], Linear[T]) {
		return l.Subdivide(t)
	})
	return LinearPair[T](head), LinearPair[T](tail)
}

func (p LinearPair[T]) Expand() QuadraticPair[T] {
	return QuadraticPair[T](Lift(Pair[Linear[T]](p), Linear[T].Expand))
}

func (p LinearPair[T]) Start() Point[T] { return Point[T]{p.X.P0, p.Y.P0} }
func (p LinearPair[T]) End() Point[T]   { return Point[T]{p.X.P1, p.Y.P1} }

func (p LinearPair[T]) ControlPoints() [][]T {
	return axes[T](Pair[Linear[T]](p))
}

// Trace returns an iterator over the given number of evenly spaced samples of
// the curve.
func (p LinearPair[T]) Trace(points int) iter.Seq[Point[T]] {
	return Trace[T, Point[T]](p, points)
}

func (p QuadraticPair[T]) Eval(t T) Point[T] {
	return Point[T](Lift(Pair[Quadratic[T]](p), func(q Quadratic[T]) T { return q.Eval(t) }))
}

func (p QuadraticPair[T]) Subdivide(t T) (QuadraticPair[T], QuadraticPair[T]) {
	head, tail := LiftSplit(Pair[Quadratic[T]](p), func(q Quadratic[T]) (Quadratic[T], Quadratic[T]) {
		return q.Subdivide(t)
	})
	return QuadraticPair[T](head), QuadraticPair[T](tail)
}

func (p QuadraticPair[T]) Expand() CubicPair[T] {
	return CubicPair[T](Lift(Pair[Quadratic[T]](p), Quadratic[T].Expand))
}

func (p QuadraticPair[T]) Align(original CubicPair[T]) QuadraticPair[T] {
	return QuadraticPair[T](Lift2(Pair[Quadratic[T]](p), Pair[Cubic[T]](original), Quadratic[T].Align))
}

// Points returns the control points of the curve.
func (p QuadraticPair[T]) Points() [3]Point[T] {
	return [3]Point[T]{
		{p.X.P0, p.Y.P0},
		{p.X.P1, p.Y.P1},
		{p.X.P2, p.Y.P2},
	}
}

func (p QuadraticPair[T]) Start() Point[T] { return Point[T]{p.X.P0, p.Y.P0} }
func (p QuadraticPair[T]) End() Point[T]   { return Point[T]{p.X.P2, p.Y.P2} }

func (p QuadraticPair[T]) ControlPoints() [][]T {
	return axes[T](Pair[Quadratic[T]](p))
}

// Trace returns an iterator over the given number of evenly spaced samples of
// the curve.
func (p QuadraticPair[T]) Trace(points int) iter.Seq[Point[T]] {
	return Trace[T, Point[T]](p, points)
}

func (p CubicPair[T]) Eval(t T) Point[T] {
	return Point[T](Lift(Pair[Cubic[T]](p), func(c Cubic[T]) T { return c.Eval(t) }))
}

func (p CubicPair[T]) Subdivide(t T) (CubicPair[T], CubicPair[T]) {
	head, tail := LiftSplit(Pair[Cubic[T]](p), func(c Cubic[T]) (Cubic[T], Cubic[T]) {
		return c.Subdivide(t)
	})
	return CubicPair[T](head), CubicPair[T](tail)
}

// Subsegment returns the part of the curve between t0 and t1, reparametrized
// onto [0, 1].
func (p CubicPair[T]) Subsegment(t0, t1 T) CubicPair[T] {
	return CubicPair[T](Lift(Pair[Cubic[T]](p), func(c Cubic[T]) Cubic[T] {
		return c.Subsegment(t0, t1)
	}))
}

func (p CubicPair[T]) Reduce() QuadraticPair[T] {
	return QuadraticPair[T](Lift(Pair[Cubic[T]](p), Cubic[T].Reduce))
}

// Points returns the control points of the curve.
func (p CubicPair[T]) Points() [4]Point[T] {
	return [4]Point[T]{
		{p.X.P0, p.Y.P0},
		{p.X.P1, p.Y.P1},
		{p.X.P2, p.Y.P2},
		{p.X.P3, p.Y.P3},
	}
}

func (p CubicPair[T]) Start() Point[T] { return Point[T]{p.X.P0, p.Y.P0} }
func (p CubicPair[T]) End() Point[T]   { return Point[T]{p.X.P3, p.Y.P3} }

func (p CubicPair[T]) ControlPoints() [][]T {
	return axes[T](Pair[Cubic[T]](p))
}

// Trace returns an iterator over the given number of evenly spaced samples of
// the curve.
func (p CubicPair[T]) Trace(points int) iter.Seq[Point[T]] {
	return Trace[T, Point[T]](p, points)
}

// Approximate returns an approximation of p by planar quadratic curves,
// admitted by goodness.
func (p CubicPair[T]) Approximate(
	goodness Goodness[CubicPair[T]],
	opts ...ApproximationOption,
) *Approximation[T, CubicPair[T], QuadraticPair[T]] {
	return NewApproximation[T, CubicPair[T], QuadraticPair[T]](p, goodness, opts...)
}

// Quadratics is like [Cubic.Quadratics], but for planar curves. A candidate is
// admitted only if both axes are within tolerance.
func (p CubicPair[T]) Quadratics(tolerance T) iter.Seq[QuadraticPair[T]] {
	g := NewTolerance[CubicPair[T]](tolerance, WithMaxSubdivisions(DefaultMaxSubdivisions))
	return p.Approximate(g).Curves()
}
