package curve

import (
	"fmt"
	"math"
)

// Point is the result of evaluating a paired curve.
type Point[T Float] struct {
	X T
	Y T
}

// Pt returns the point (x, y).
func Pt[T Float](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func (pt Point[T]) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Distance returns the euclidean distance between two points.
func (pt Point[T]) Distance(o Point[T]) T {
	x := float64(pt.X - o.X)
	y := float64(pt.Y - o.Y)
	return T(math.Hypot(x, y))
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point[T]) IsInf() bool {
	return isInf(pt.X) || isInf(pt.Y)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point[T]) IsNaN() bool {
	return isNaN(pt.X) || isNaN(pt.Y)
}
