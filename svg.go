package curve

import (
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// Round rounds coordinates to the nearest integers. It takes precedence
	// over MaxPrecision.
	Round bool
}

// SVG converts a sequence of planar quadratic curves to a string of SVG path
// commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG[T Float](seq iter.Seq[QuadraticPair[T]], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of planar quadratic curves to a string of SVG
// path commands and writes it to w.
//
// A move command is emitted for the first curve and for every curve that
// doesn't start where the previous one ended.
func WriteSVG[T Float](w io.Writer, seq iter.Seq[QuadraticPair[T]], opts SVGOptions) error {
	space := []byte(" ")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(v T) string {
		n := float64(v)
		switch {
		case opts.Round:
			n = math.Round(n)
			if n == 0 {
				// Avoid printing -0.
				n = 0
			}
			return strconv.FormatFloat(n, 'f', -1, 64)
		case opts.MaxPrecision <= 0:
			return strconv.FormatFloat(n, 'f', -1, bitSize[T]())
		default:
			s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
			if s == "-0" {
				s = "0"
			}
			return s
		}
	}
	first := true
	var last Point[T]
	for q := range seq {
		if err != nil {
			return err
		}
		pts := q.Points()
		if first || pts[0] != last {
			if !first {
				write(space)
			}
			writef("M%s,%s", format(pts[0].X), format(pts[0].Y))
		}
		first = false
		write(space)
		writef("Q%s,%s,%s,%s",
			format(pts[1].X), format(pts[1].Y),
			format(pts[2].X), format(pts[2].Y))
		last = pts[2]
	}
	return err
}

func bitSize[T Float]() int {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 32
	}
	return 64
}
