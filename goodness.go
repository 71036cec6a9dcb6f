package curve

import (
	"fmt"
	"math"
	"strconv"
)

// Admission is the outcome of a [Goodness] check.
type Admission int

const (
	// Reject means the candidate is not close enough. The caller should
	// subdivide the original curve and try again on both halves.
	Reject Admission = iota
	// Accept means the candidate is within tolerance.
	Accept
	// Exhausted means the candidate is not within tolerance, but the
	// subdivision budget has been used up and the candidate has to be
	// accepted as it is.
	Exhausted
)

func (a Admission) String() string {
	switch a {
	case Reject:
		return "reject"
	case Accept:
		return "accept"
	case Exhausted:
		return "exhausted"
	default:
		return "Admission(" + strconv.Itoa(int(a)) + ")"
	}
}

// Admitted reports whether the candidate is to be used, either because it is
// within tolerance or because refinement was given up on.
func (a Admission) Admitted() bool {
	return a == Accept || a == Exhausted
}

// Goodness decides whether a candidate curve is close enough to the curve it
// approximates.
//
// A Goodness may be stateful. The approximation engine threads a single
// Goodness through the whole run, so any budget it keeps is shared by all
// parts of the curve.
type Goodness[C any] interface {
	Admit(candidate, original C) Admission
}

// Compare is a stateless comparison of two curves.
type Compare[C any] interface {
	Compare(one, other C) bool
}

// ToleranceOption configures a [Tolerance].
type ToleranceOption func(*toleranceOptions)

type toleranceOptions struct {
	relative        float64
	maxSubdivisions int
}

func defaultToleranceOptions() toleranceOptions {
	return toleranceOptions{
		relative:        math.Inf(1),
		maxSubdivisions: math.MaxInt,
	}
}

// WithRelative bounds the distance between control points relative to the size
// of the original curve, which is the largest coordinate-wise distance between
// its endpoints. The effective distance is the smaller of the absolute and the
// relative one.
//
// The relative bound is disabled by default. It panics if relative is negative
// or NaN.
func WithRelative(relative float64) ToleranceOption {
	if !(relative >= 0) {
		panic(fmt.Sprintf("invalid relative tolerance %v", relative))
	}
	return func(o *toleranceOptions) {
		o.relative = relative
	}
}

// WithMaxSubdivisions limits the number of subdivisions that can be made over
// the whole approximation. Once the limit is reached, every candidate is
// admitted with [Exhausted].
//
// The number of subdivisions is unbounded by default, which means that the
// approximation might not terminate for tolerances that cannot be met, such
// as zero.
func WithMaxSubdivisions(n int) ToleranceOption {
	if n < 0 {
		panic("negative maximum number of subdivisions")
	}
	return func(o *toleranceOptions) {
		o.maxSubdivisions = n
	}
}

// Tolerance is a [Goodness] based on the coordinate-wise distance between the
// control points of a candidate curve and those of the original curve.
//
// For curves with several axes, every axis has to be within the distance
// independently.
type Tolerance[C ControlPointer[T], T Float] struct {
	absolute        T
	relative        T
	maxSubdivisions int
	subdivisions    int
}

var _ Goodness[Cubic[float64]] = (*Tolerance[Cubic[float64], float64])(nil)
var _ Goodness[CubicPair[float64]] = (*Tolerance[CubicPair[float64], float64])(nil)
var _ Compare[Cubic[float64]] = (*Tolerance[Cubic[float64], float64])(nil)
var _ Compare[Cubic[float64]] = Absolute[Cubic[float64], float64]{}

// NewTolerance returns a Tolerance that admits candidates whose control points
// are all within absolute of the original's.
func NewTolerance[C ControlPointer[T], T Float](absolute T, opts ...ToleranceOption) *Tolerance[C, T] {
	if !(absolute >= 0) {
		panic("negative or NaN tolerance")
	}
	o := defaultToleranceOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Tolerance[C, T]{
		absolute:        absolute,
		relative:        T(o.relative),
		maxSubdivisions: o.maxSubdivisions,
	}
}

// Admit implements [Goodness].
func (tol *Tolerance[C, T]) Admit(candidate, original C) Admission {
	if tol.Compare(candidate, original) {
		return Accept
	}
	if tol.subdivisions < tol.maxSubdivisions {
		tol.subdivisions++
		return Reject
	}
	return Exhausted
}

// Compare reports whether candidate is within the tolerance of original. It
// does not affect the subdivision budget.
func (tol *Tolerance[C, T]) Compare(candidate, original C) bool {
	one := candidate.ControlPoints()
	other := original.ControlPoints()
	distance := tol.distance(other)
	for i := range other {
		if !within(one[i], other[i], distance) {
			return false
		}
	}
	return true
}

func (tol *Tolerance[C, T]) distance(original [][]T) T {
	var size T
	for _, axis := range original {
		size = max(size, abs(axis[0]-axis[len(axis)-1]))
	}
	distance := tol.absolute
	// The relative term is NaN for a disabled bound and a zero-sized curve.
	if r := tol.relative * size; r < distance {
		distance = r
	}
	return distance
}

// Subdivisions returns the number of subdivisions granted so far.
func (tol *Tolerance[C, T]) Subdivisions() int {
	return tol.subdivisions
}

// Absolute is a stateless [Compare] based on the coordinate-wise absolute
// distance between control points. Unlike [Tolerance], the distance has to be
// strictly smaller than the tolerance.
type Absolute[C ControlPointer[T], T Float] struct {
	Tolerance T
}

// Compare implements [Compare].
func (a Absolute[C, T]) Compare(one, other C) bool {
	x := one.ControlPoints()
	y := other.ControlPoints()
	for i := range x {
		for j := range x[i] {
			if !(abs(x[i][j]-y[i][j]) < a.Tolerance) {
				return false
			}
		}
	}
	return true
}

func within[T Float](one, other []T, distance T) bool {
	for i := range one {
		if !(abs(one[i]-other[i]) <= distance) {
			return false
		}
	}
	return true
}
