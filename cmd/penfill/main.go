package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

// penfill reads an SVG, fills each closed shape with concentric pen strokes,
// and writes the result back out as a single-path SVG ready to plot. Curves
// are flattened to their endpoints on the way in, so the fill follows the
// straight-edge approximation of the original outline.

var (
	app     = kingpin.New("penfill", "Concentric fill generator for pen plotters.")
	verbose = app.Flag("verbose", "Chatty progress on stderr.").Short('v').Bool()
	quiet   = app.Flag("quiet", "Suppress non-error chatter on stderr.").Short('q').Bool()

	fillCmd       = app.Command("fill", "Fill the shapes of an SVG with pen strokes.").Default()
	fillInput     = fillCmd.Arg("input", "Input SVG, or - for stdin.").Default("-").String()
	fillOutput    = fillCmd.Flag("output", "Output file, or - for stdout.").Short('o').Default("-").String()
	fillPattern   = fillCmd.Flag("pattern", "Fill pattern.").Short('p').Default("concentric").Enum("concentric", "lines")
	fillSpacing   = fillCmd.Flag("spacing", "Distance between rings, in document units.").Short('s').Default("2.0").Float64()
	fillConnect   = fillCmd.Flag("connect", "Join each shape's rings into one traversable stroke.").Default("true").Bool()
	fillStroke    = fillCmd.Flag("stroke", "Stroke color for SVG output.").Default("black").String()
	fillStrokeW   = fillCmd.Flag("stroke-width", "Stroke width for SVG output.").Default("1").String()
	fillPrecision = fillCmd.Flag("precision", "Decimal places in output coordinates.").Default("2").Int()
	fillRaw       = fillCmd.Flag("raw", "Emit one stroke per segment instead of chained polylines.").Bool()
	fillChainTol  = fillCmd.Flag("chain-tolerance", "Endpoint gap that still counts as connected.").Default("0.1").Float64()
	fillOrder     = fillCmd.Flag("order", "Shape visit order.").Default("document").Enum("document", "doc", "original", "nearest", "nn", "nearest-neighbor")
	fillFormat    = fillCmd.Flag("format", "Output format.").Short('f').Default("svg").Enum("svg", "json")

	patternsCmd = app.Command("patterns", "List available fill patterns.")

	previewCmd     = app.Command("preview", "Render the fill to a PNG.")
	previewInput   = previewCmd.Arg("input", "Input SVG, or - for stdin.").Default("-").String()
	previewOutput  = previewCmd.Flag("output", "Output PNG path.").Short('o').Default("preview.png").String()
	previewSize    = previewCmd.Flag("size", "Long edge of the rendered image, in pixels.").Default("800").Int()
	previewShow    = previewCmd.Flag("show", "Cat the image to the terminal when done.").Bool()
	previewSpacing = previewCmd.Flag("spacing", "Distance between rings, in document units.").Short('s').Default("2.0").Float64()
	previewConnect = previewCmd.Flag("connect", "Join each shape's rings into one traversable stroke.").Default("true").Bool()

	benchmarkCmd     = app.Command("benchmark", "Time the native fill against the geom-based reference.")
	benchmarkInput   = benchmarkCmd.Arg("input", "Input SVG, or - for stdin.").Default("-").String()
	benchmarkRuns    = benchmarkCmd.Flag("runs", "Timing runs per implementation, best one wins.").Default("5").Int()
	benchmarkSpacing = benchmarkCmd.Flag("spacing", "Distance between rings, in document units.").Short('s').Default("2.0").Float64()
)

func main() {
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case fillCmd.FullCommand():
		if err := runFill(); err != nil {
			app.Fatalf("%v", err)
		}
	case patternsCmd.FullCommand():
		runPatterns()
	case previewCmd.FullCommand():
		if err := runPreview(); err != nil {
			app.Fatalf("%v", err)
		}
	case benchmarkCmd.FullCommand():
		if err := runBenchmark(); err != nil {
			app.Fatalf("%v", err)
		}
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, content []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(content)
		return err
	}
	return os.WriteFile(path, content, 0644)
}

func inputName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}

func logVerbose(format string, args ...interface{}) {
	if *verbose && !*quiet {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

func logNotice(format string, args ...interface{}) {
	if !*quiet {
		fmt.Fprintf(os.Stderr, "%s %s\n", aurora.Yellow("warning:"), fmt.Sprintf(format, args...))
	}
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
