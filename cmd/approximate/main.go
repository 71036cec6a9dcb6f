// Command approximate approximates a planar cubic Bézier curve with quadratic
// Bézier curves and prints the result as an SVG path.
//
// Example:
//
//	approximate -x 0,0,90,100 -y 0,50,0,0 -tolerance 1 -round
//	M0,0 Q1,18,14,21 Q28,24,46,19 Q65,13,80,7 Q96,1,100,0
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/bodoni/curve"
)

func main() {
	var (
		xs              = flag.String("x", defaultX, "Control points of the x axis, comma separated")
		ys              = flag.String("y", defaultY, "Control points of the y axis, comma separated")
		tolerance       = flag.Float64("tolerance", defaultTolerance, "Maximum distance between control points")
		relative        = flag.Float64("relative", math.Inf(1), "Maximum distance relative to the size of the curve")
		maxSubdivisions = flag.Int("max-subdivisions", curve.DefaultMaxSubdivisions, "Maximum number of subdivisions")
		split           = flag.Float64("split", defaultSplit, "Parameter at which to subdivide rejected curves")
		round           = flag.Bool("round", false, "Round coordinates to integers")
		precision       = flag.Int("precision", 0, "Maximum number of decimals, 0 for shortest exact representation")
		verbose         = flag.Bool("v", false, "Log subdivisions to stderr")
	)
	flag.Parse()

	if *verbose {
		curve.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	c, err := parseCubicPair(*xs, *ys)
	if err != nil {
		log.Fatalf("Invalid curve: %v", err)
	}
	cfg := config{
		tolerance:       *tolerance,
		relative:        *relative,
		maxSubdivisions: *maxSubdivisions,
		split:           *split,
		svg: curve.SVGOptions{
			MaxPrecision: *precision,
			Round:        *round,
		},
	}
	if err := cfg.validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	st, err := run(os.Stdout, c, cfg)
	if err != nil {
		log.Fatalf("Writing path failed: %v", err)
	}
	fmt.Println()
	if *verbose {
		fmt.Fprintf(os.Stderr, "segments: %d, subdivisions: %d, exhausted: %d, max error: %g\n",
			st.segments, st.subdivisions, st.exhausted, st.maxError)
	}
}
