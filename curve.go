package curve

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of scalar types curves can be built over.
type Float interface {
	constraints.Float
}

// Evaluator describes curves that can be evaluated at a parameter t ∈ [0, 1].
//
// Scalar curves evaluate to a single coordinate, paired curves to a [Point].
type Evaluator[T Float, R any] interface {
	// Eval evaluates the curve at parameter t. It panics if t is outside of
	// [0, 1].
	Eval(t T) R
}

// Reducer describes curves that can be approximated by a curve of lower
// degree.
//
// Reduction is a global least-squares fit. It does not reproduce any specific
// point of the original curve, not even its endpoints; see [Aligner].
type Reducer[R any] interface {
	Reduce() R
}

// Expander describes curves that can be represented exactly by a curve of
// higher degree.
type Expander[C any] interface {
	Expand() C
}

// Aligner describes reduced curves whose endpoints can be pinned to those of
// the curve they were reduced from.
type Aligner[C, R any] interface {
	Align(original C) R
}

// Subdivider describes curves that can be split at a parameter t ∈ (0, 1)
// into two curves covering [0, t] and [t, 1], each reparametrized onto
// [0, 1].
type Subdivider[T Float, C any] interface {
	Subdivide(t T) (C, C)
}

// ControlPointer describes curves that expose their control points. Scalar
// curves report a single axis, paired curves one axis per component.
type ControlPointer[T Float] interface {
	ControlPoints() [][]T
}

// Reducible is the set of capabilities the approximation engine needs from
// the curve being approximated.
type Reducible[T Float, C, R any] interface {
	Reducer[R]
	Subdivider[T, C]
}

// Reduced is the set of capabilities the approximation engine needs from the
// approximating curve.
type Reduced[C, R any] interface {
	Aligner[C, R]
	Expander[C]
}

func checkParam[T Float](t T) {
	if !(t >= 0 && t <= 1) {
		panic(fmt.Sprintf("parameter %v outside of [0, 1]", t))
	}
}

func checkSplit[T Float](t T) {
	if !(t > 0 && t < 1) {
		panic(fmt.Sprintf("split parameter %v outside of (0, 1)", t))
	}
}

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func isNaN[T Float](x T) bool {
	return math.IsNaN(float64(x))
}

func isInf[T Float](x T) bool {
	return math.IsInf(float64(x), 0)
}
