package curve

import (
	"iter"
	"log/slog"
)

// Segment is one curve produced by an [Approximation].
type Segment[R any] struct {
	// Start and End delimit the parameter range of the original curve that is
	// approximated by Curve. They are tracked in float64 regardless of the
	// curve's scalar type.
	Start, End float64
	Curve      R
	// Exhausted is set if Curve was admitted only because the subdivision
	// budget ran out, in which case it may not be within tolerance.
	Exhausted bool
}

// ApproximationOption configures an [Approximation].
type ApproximationOption func(*approximationOptions)

type approximationOptions struct {
	split float64
}

// WithSplit sets the parameter at which curves are subdivided when a
// candidate is rejected. It must lie in (0, 1) and defaults to 0.5.
func WithSplit(t float64) ApproximationOption {
	checkSplit(t)
	return func(o *approximationOptions) {
		o.split = t
	}
}

type pending[C any] struct {
	curve      C
	start, end float64
}

// Approximation approximates a curve of type C by a sequence of curves of the
// lower degree type R.
//
// Each step reduces a curve, pins the endpoints of the reduction to those of
// the curve, and lets the [Goodness] judge the reduction after expanding it
// back to the original degree. Curves whose reduction is rejected are
// subdivided and both halves are tried again. Pending curves are kept on an
// explicit stack instead of recursing, and the head of a subdivision is always
// processed before its tail, so that segments are produced in order, from
// the start of the curve to its end.
//
// A curve whose parameter range has become too narrow to be split any further
// is admitted as [Exhausted].
//
// An Approximation is lazy: work is only done when the next segment is
// requested. It can be consumed only once and is not safe for concurrent use.
type Approximation[T Float, C Reducible[T, C, R], R Reduced[C, R]] struct {
	pending  []pending[C]
	goodness Goodness[C]
	split    float64
}

// NewApproximation returns an approximation of curve. The goodness is used for
// the whole approximation and shouldn't be shared with other approximations.
func NewApproximation[T Float, C Reducible[T, C, R], R Reduced[C, R]](
	curve C,
	goodness Goodness[C],
	opts ...ApproximationOption,
) *Approximation[T, C, R] {
	o := approximationOptions{split: 0.5}
	for _, opt := range opts {
		opt(&o)
	}
	return &Approximation[T, C, R]{
		pending:  []pending[C]{{curve: curve, start: 0, end: 1}},
		goodness: goodness,
		split:    o.split,
	}
}

// Next returns the next segment of the approximation. It returns false once
// the whole curve has been covered.
func (a *Approximation[T, C, R]) Next() (Segment[R], bool) {
	log := Logger()
	for len(a.pending) > 0 {
		p := a.pending[len(a.pending)-1]
		a.pending = a.pending[:len(a.pending)-1]

		candidate := p.curve.Reduce().Align(p.curve)
		seg := Segment[R]{Start: p.start, End: p.end, Curve: candidate}
		switch a.goodness.Admit(candidate.Expand(), p.curve) {
		case Accept:
			return seg, true
		case Exhausted:
			log.Warn("subdivision budget exhausted, admitting candidate outside of tolerance",
				slog.Float64("start", p.start),
				slog.Float64("end", p.end))
			seg.Exhausted = true
			return seg, true
		}

		mid := p.start + (p.end-p.start)*a.split
		if !(p.start < mid && mid < p.end) {
			log.Warn("parameter range too narrow to subdivide, admitting candidate outside of tolerance",
				slog.Float64("start", p.start),
				slog.Float64("end", p.end))
			seg.Exhausted = true
			return seg, true
		}
		head, tail := p.curve.Subdivide(T(a.split))
		log.Debug("subdividing",
			slog.Float64("start", p.start),
			slog.Float64("end", p.end),
			slog.Float64("at", mid))
		// The head is pushed last so that it is popped first.
		a.pending = append(a.pending,
			pending[C]{curve: tail, start: mid, end: p.end},
			pending[C]{curve: head, start: p.start, end: mid})
	}
	a.pending = nil
	return Segment[R]{}, false
}

// All returns an iterator over the remaining segments of the approximation.
//
// The iterator is single-use, as it drives the approximation forward.
func (a *Approximation[T, C, R]) All() iter.Seq[Segment[R]] {
	return func(yield func(Segment[R]) bool) {
		for {
			seg, ok := a.Next()
			if !ok || !yield(seg) {
				return
			}
		}
	}
}

// Curves is like [Approximation.All], but only yields the approximating
// curves.
func (a *Approximation[T, C, R]) Curves() iter.Seq[R] {
	return func(yield func(R) bool) {
		for seg := range a.All() {
			if !yield(seg.Curve) {
				return
			}
		}
	}
}
