package main

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/jbeda/geom"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/osuushi/penfill/fill"
	"github.com/osuushi/penfill/geomfill"
	"github.com/osuushi/penfill/svg"
)

func runBenchmark() error {
	if *benchmarkSpacing <= 0 {
		return errors.Errorf("spacing must be positive, got %v", *benchmarkSpacing)
	}
	if *benchmarkRuns < 1 {
		return errors.Errorf("need at least one run, got %d", *benchmarkRuns)
	}

	raw, err := readInput(*benchmarkInput)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}

	extractStart := time.Now()
	shapes, _, err := svg.Extract(bytes.NewReader(raw))
	extractTime := time.Since(extractStart)
	if err != nil {
		return err
	}
	if len(shapes) == 0 {
		return errors.New("no fillable shapes found")
	}

	coords := make([][]geom.Coord, len(shapes))
	for i := range shapes {
		coords[i] = geomfill.FromFillPolygon(shapes[i])
	}

	nativeTime, nativeSegments := bestRun(*benchmarkRuns, func() int {
		total := 0
		for i := range shapes {
			total += len(fill.GenerateConcentric(shapes[i], *benchmarkSpacing, true))
		}
		return total
	})

	referenceTime, referenceSegments := bestRun(*benchmarkRuns, func() int {
		total := 0
		for i := range coords {
			total += len(geomfill.Generate(coords[i], *benchmarkSpacing, true))
		}
		return total
	})

	fmt.Printf("%s, spacing %v, best of %s\n\n",
		aurora.Bold(fmt.Sprintf("%s from %s", pluralize(len(shapes), "shape"), inputName(*benchmarkInput))),
		*benchmarkSpacing,
		pluralize(*benchmarkRuns, "run"))
	fmt.Printf("  %-15s %10s\n", "extract", formatDuration(extractTime))
	fmt.Printf("  %-15s %10s   %s\n", "fill (native)", formatDuration(nativeTime), pluralize(nativeSegments, "segment"))
	fmt.Printf("  %-15s %10s   %s\n", "fill (geom)", formatDuration(referenceTime), pluralize(referenceSegments, "segment"))

	ratio := float64(referenceTime) / float64(nativeTime)
	if ratio >= 1 {
		fmt.Printf("\n%s\n", aurora.Green(fmt.Sprintf("native is %.2fx faster", ratio)))
	} else {
		fmt.Printf("\n%s\n", aurora.Red(fmt.Sprintf("native is %.2fx slower", 1/ratio)))
	}
	return nil
}

// bestRun times fn repeatedly and keeps the fastest wall time, which is the
// least noisy single number a shared machine will give you.
func bestRun(runs int, fn func() int) (time.Duration, int) {
	best := time.Duration(math.MaxInt64)
	count := 0
	for i := 0; i < runs; i++ {
		start := time.Now()
		count = fn()
		if elapsed := time.Since(start); elapsed < best {
			best = elapsed
		}
	}
	return best, count
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1e3)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
