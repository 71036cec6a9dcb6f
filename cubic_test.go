package curve

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/mat"
)

func TestCubicEval(t *testing.T) {
	c := NewCubic(0.0, 0, 90, 100)
	if got := c.Eval(0); got != 0 {
		t.Errorf("got %v at t=0, want 0", got)
	}
	if got := c.Eval(1); got != 100 {
		t.Errorf("got %v at t=1, want 100", got)
	}
	// 3·(1-t)·t²·90 + t³·100 at t = 0.5
	if got := c.Eval(0.5); got != 46.25 {
		t.Errorf("got %v at t=0.5, want 46.25", got)
	}
}

func TestCubicEvalPanics(t *testing.T) {
	c := NewCubic(0.0, 1, 2, 3)
	for _, p := range []float64{-0.1, 1.1, nan} {
		t.Run(fmt.Sprint(p), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("no panic evaluating at %v", p)
				}
			}()
			c.Eval(p)
		})
	}
}

func TestCubicSubdivide(t *testing.T) {
	c := NewCubic(0.0, 0, 90, 100)
	head, tail := c.Subdivide(0.5)
	diff(t, NewCubic(0.0, 0, 22.5, 46.25), head)
	diff(t, NewCubic(46.25, 70, 95, 100), tail)

	for _, split := range []float64{0.25, 0.5, 0.8} {
		head, tail := c.Subdivide(split)
		if head.P3 != tail.P0 {
			t.Errorf("split at %v: head ends at %v, tail starts at %v", split, head.P3, tail.P0)
		}
		const n = 16
		for i := range n + 1 {
			u := float64(i) / n
			if got, want := head.Eval(u), c.Eval(u*split); !approxEqual(got, want) {
				t.Errorf("head(%v) = %v, want %v", u, got, want)
			}
			if got, want := tail.Eval(u), c.Eval(min(1, split+u*(1-split))); !approxEqual(got, want) {
				t.Errorf("tail(%v) = %v, want %v", u, got, want)
			}
		}
	}
}

func TestCubicSubdividePanics(t *testing.T) {
	c := NewCubic(0.0, 1, 2, 3)
	for _, p := range []float64{0, 1, -1, nan} {
		t.Run(fmt.Sprint(p), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("no panic subdividing at %v", p)
				}
			}()
			c.Subdivide(p)
		})
	}
}

func TestCubicSubsegment(t *testing.T) {
	c := NewCubic(0.0, 0, 90, 100)
	diff(t, c, c.Subsegment(0, 1))

	head, tail := c.Subdivide(0.5)
	diff(t, head, c.Subsegment(0, 0.5), approx)
	diff(t, tail, c.Subsegment(0.5, 1), approx)

	s := c.Subsegment(0.25, 0.75)
	const n = 8
	for i := range n + 1 {
		u := float64(i) / n
		if got, want := s.Eval(u), c.Eval(0.25+u*0.5); !approxEqual(got, want) {
			t.Errorf("subsegment(%v) = %v, want %v", u, got, want)
		}
	}

	for _, r := range [][2]float64{{0.5, 0.5}, {0.6, 0.4}, {-0.1, 0.5}, {0.5, 1.1}} {
		t.Run(fmt.Sprint(r), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("no panic for subsegment %v", r)
				}
			}()
			c.Subsegment(r[0], r[1])
		})
	}
}

func TestCubicSubsegmentAdjacent(t *testing.T) {
	// t0/t1 stays below 1 for any t0 < t1, down to adjacent floats.
	c := NewCubic(0.0, 0, 90, 100)
	for _, t1 := range []float64{1, 0.5, 0.75, 1.0 / 3, 0x1p-1000, math.SmallestNonzeroFloat64 * 2} {
		t0 := math.Nextafter(t1, 0)
		s := c.Subsegment(t0, t1)
		if !approxEqual(s.P0, c.Eval(t0)) || !approxEqual(s.P3, c.Eval(t1)) {
			t.Errorf("subsegment [%v, %v] = %v", t0, t1, s)
		}
	}
	c32 := NewCubic[float32](0, 0, 90, 100)
	for _, t1 := range []float32{1, 0.5, 0.75, 1.0 / 3} {
		c32.Subsegment(math.Nextafter32(t1, 0), t1)
	}
}

func TestCubicReduce(t *testing.T) {
	tests := []struct {
		c    Cubic[float64]
		want Quadratic[float64]
	}{
		{NewCubic(0.0, 0, 90, 100), NewQuadratic(-8.5, 42.5, 108.5)},
		{NewCubic(0.0, 100, 100, 0), NewQuadratic(0.0, 150, 0)},
		{NewCubic(0.0, 0, 0, 0), NewQuadratic(0.0, 0, 0)},
		{NewCubic(7.0, 7, 7, 7), NewQuadratic(7.0, 7, 7)},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.c.Reduce(), approx)
	}
}

func TestCubicReduceExpanded(t *testing.T) {
	// Reducing an elevated quadratic gives back the quadratic.
	for _, q := range []Quadratic[float64]{
		NewQuadratic(-10.0, 50, 110),
		NewQuadratic(0.0, 150, 0),
		NewQuadratic(3.0, -4, 5),
	} {
		diff(t, q, q.Expand().Reduce(), approx)
	}
}

func TestCubicReduceLeastSquares(t *testing.T) {
	// The reduction is the pseudo-inverse of degree elevation.
	elevation := mat.NewDense(4, 3, []float64{
		1, 0, 0,
		1.0 / 3, 2.0 / 3, 0,
		0, 2.0 / 3, 1.0 / 3,
		0, 0, 1,
	})
	var pinv mat.Dense
	if err := pinv.Inverse(toSquare(elevation)); err != nil {
		t.Fatal(err)
	}
	var reduction mat.Dense
	reduction.Mul(&pinv, elevation.T())

	for j := range 4 {
		var ps [4]float64
		ps[j] = 1
		got := NewCubic(ps[0], ps[1], ps[2], ps[3]).Reduce()
		want := NewQuadratic(reduction.At(0, j), reduction.At(1, j), reduction.At(2, j))
		diff(t, want, got, approx)
	}
}

// toSquare returns EᵀE, the normal matrix of the least-squares problem.
func toSquare(e mat.Matrix) mat.Matrix {
	var m mat.Dense
	m.Mul(e.T(), e)
	return &m
}

func TestCubicQuadratics(t *testing.T) {
	c := NewCubic(0.0, 0, 90, 100)
	var got []Quadratic[float64]
	for q := range c.Quadratics(1) {
		got = append(got, q)
	}
	want := []Quadratic[float64]{
		{0, 0.6640625, 14.21875},
		{14.21875, 27.7734375, 46.25},
		{46.25, 64.7265625, 80.15625},
		{80.15625, 95.5859375, 100},
	}
	diff(t, want, got, approx)
}

func TestCubicTrace(t *testing.T) {
	c := NewCubic(0.0, 0, 90, 100)
	var got []float64
	for v := range c.Trace(3) {
		got = append(got, v)
	}
	diff(t, []float64{0, 46.25, 100}, got)
}

var approx = cmpopts.EquateApprox(0, 1e-9)
