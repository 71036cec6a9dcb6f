package main

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/bodoni/curve"
)

type config struct {
	tolerance       float64
	relative        float64
	maxSubdivisions int
	split           float64
	svg             curve.SVGOptions
}

func (cfg config) validate() error {
	if !(cfg.tolerance >= 0) {
		return fmt.Errorf("tolerance must be non-negative, got %v", cfg.tolerance)
	}
	if !(cfg.relative >= 0) {
		return fmt.Errorf("relative tolerance must be non-negative, got %v", cfg.relative)
	}
	if cfg.maxSubdivisions < 0 {
		return fmt.Errorf("maximum number of subdivisions must be non-negative, got %d", cfg.maxSubdivisions)
	}
	if !(cfg.split > 0 && cfg.split < 1) {
		return fmt.Errorf("split must be in (0, 1), got %v", cfg.split)
	}
	return nil
}

type stats struct {
	segments     int
	subdivisions int
	exhausted    int
	// Largest distance between a segment and the curve, a quarter into the
	// segment's parameter range.
	maxError     float64
}

// parseCubic parses four comma-separated control points.
func parseCubic(s string) (curve.Cubic[float64], error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return curve.Cubic[float64]{}, fmt.Errorf("expected 4 control points, got %d", len(fields))
	}
	var ps [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return curve.Cubic[float64]{}, fmt.Errorf("control point %d: %w", i, err)
		}
		ps[i] = v
	}
	return curve.NewCubic(ps[0], ps[1], ps[2], ps[3]), nil
}

func parseCubicPair(xs, ys string) (curve.CubicPair[float64], error) {
	x, errX := parseCubic(xs)
	y, errY := parseCubic(ys)
	if err := errors.Join(errX, errY); err != nil {
		return curve.CubicPair[float64]{}, err
	}
	c := curve.NewCubicPair(x, y)
	for i, pt := range c.Points() {
		if pt.IsNaN() || pt.IsInf() {
			return curve.CubicPair[float64]{}, fmt.Errorf("control point %d is not finite: %v", i, pt)
		}
	}
	return c, nil
}

// run approximates c and writes the resulting SVG path to w.
func run(w io.Writer, c curve.CubicPair[float64], cfg config) (stats, error) {
	g := curve.NewTolerance[curve.CubicPair[float64]](cfg.tolerance,
		curve.WithRelative(cfg.relative),
		curve.WithMaxSubdivisions(cfg.maxSubdivisions))
	a := c.Approximate(g, curve.WithSplit(cfg.split))

	var st stats
	var seq iter.Seq[curve.QuadraticPair[float64]] = func(yield func(curve.QuadraticPair[float64]) bool) {
		for seg := range a.All() {
			st.segments++
			if seg.Exhausted {
				st.exhausted++
			}
			want := c.Eval(seg.Start + (seg.End-seg.Start)/4)
			st.maxError = max(st.maxError, seg.Curve.Eval(0.25).Distance(want))
			if !yield(seg.Curve) {
				return
			}
		}
	}
	err := curve.WriteSVG(w, seq, cfg.svg)
	st.subdivisions = g.Subdivisions()
	return st, err
}
