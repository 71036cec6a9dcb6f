package curve

import (
	"fmt"
	"iter"
)

// Trace returns an iterator over the given number of samples of c, evaluated
// at evenly spaced parameters from 0 to 1 inclusive.
//
// It panics if points is less than 2, as no such sampling covers [0, 1].
func Trace[T Float, R any](c Evaluator[T, R], points int) iter.Seq[R] {
	if points < 2 {
		panic(fmt.Sprintf("cannot trace a curve with %d points", points))
	}
	return func(yield func(R) bool) {
		last := T(points - 1)
		for i := range points {
			// The last parameter is exactly 1.
			if !yield(c.Eval(T(i) / last)) {
				return
			}
		}
	}
}
