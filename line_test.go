package curve

import (
	"math"
	"testing"
)

func TestLinearEval(t *testing.T) {
	l := NewLinear(10.0, 20)
	if got := l.Eval(0.25); got != 12.5 {
		t.Errorf("got %v, want 12.5", got)
	}
}

func TestLinearSubdivide(t *testing.T) {
	head, tail := NewLinear(10.0, 20).Subdivide(0.25)
	diff(t, NewLinear(10.0, 12.5), head)
	diff(t, NewLinear(12.5, 20.0), tail)
}

func TestLinearExpand(t *testing.T) {
	diff(t, NewQuadratic(10.0, 15, 20), NewLinear(10.0, 20).Expand())
	// Lines expand all the way to cubics without error.
	diff(t, NewCubic(0.0, 2, 4, 6), NewLinear(0.0, 6).Expand().Expand(), approx)
}

func TestLinearIsInf(t *testing.T) {
	if NewLinear(0.0, 1).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}
	if !NewLinear(0.0, math.Inf(1)).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}
