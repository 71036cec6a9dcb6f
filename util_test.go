package curve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var nan = math.NaN()

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxEqual[T Float](a, b T) bool {
	const epsilon = 1e-9
	return math.Abs(float64(a-b)) <= epsilon*max(1, math.Abs(float64(a)), math.Abs(float64(b)))
}
