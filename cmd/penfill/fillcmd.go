package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/osuushi/penfill"
	"github.com/osuushi/penfill/dbg"
	"github.com/osuushi/penfill/fill"
	"github.com/osuushi/penfill/svg"
)

func runFill() error {
	start := time.Now()

	raw, err := readInput(*fillInput)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}
	logVerbose("read %s from %s", aurora.Cyan(pluralize(len(raw), "byte")), inputName(*fillInput))

	if *fillPattern == "lines" {
		logNotice("pattern \"lines\" is not implemented yet; using concentric")
	}

	shapes, meta, err := svg.Extract(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	if len(shapes) == 0 {
		return errors.New("no fillable shapes found")
	}
	logVerbose("found %s", aurora.Cyan(pluralize(len(shapes), "shape")))

	strategy, _ := fill.ParseOrdering(*fillOrder)
	order := fill.OrderShapes(shapes, strategy)
	if strategy == fill.OrderNearestNeighbor && len(shapes) > 1 {
		docTravel := fill.TravelDistance(shapes, fill.OrderShapes(shapes, fill.OrderDocument))
		nnTravel := fill.TravelDistance(shapes, order)
		logVerbose("%s ordering: travel %.1f, down from %.1f", strategy, nnTravel, docTravel)
	}

	var segments []fill.Segment
	for _, idx := range order {
		shape := &shapes[idx]
		shapeSegments, err := penfill.Fill(*shape, *fillSpacing, *fillConnect)
		if err != nil {
			return errors.Wrapf(err, "filling shape %d", idx)
		}
		logVerbose("  %s: %s", aurora.Green(dbg.Name(shape)), pluralize(len(shapeSegments), "segment"))
		segments = append(segments, shapeSegments...)
	}

	chains := fill.ChainSegments(segments, *fillChainTol)
	stats := fill.StatsForChains(len(segments), chains)
	if !*fillRaw {
		logVerbose("chained %d segments into %d polylines (%.0f%% fewer pen lifts)",
			stats.InputSegments, stats.OutputChains, stats.ReductionRatio*100)
	}

	var out bytes.Buffer
	if *fillFormat == "json" {
		if err := writeJSON(&out, segments, chains, stats); err != nil {
			return err
		}
	} else {
		writer := svg.Writer{Precision: *fillPrecision, Stroke: *fillStroke, StrokeWidth: *fillStrokeW}
		pathData := writer.ChainsPath(chains)
		if *fillRaw {
			pathData = writer.SegmentsPath(segments)
		}
		if err := writer.WriteDocument(&out, pathData, meta); err != nil {
			return err
		}
	}

	if err := writeOutput(*fillOutput, out.Bytes()); err != nil {
		return errors.Wrap(err, "writing output")
	}

	logVerbose("done in %s", time.Since(start).Round(time.Millisecond))
	return nil
}

func runPatterns() {
	fmt.Printf("%s  shrinking copies of the outline, innermost last\n", aurora.Green("concentric"))
	fmt.Printf("%s       parallel hatching %s\n", "lines", aurora.Faint("(not implemented yet)"))
}

type jsonSegment struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonStats struct {
	InputSegments  int     `json:"input_segments"`
	OutputChains   int     `json:"output_chains"`
	AvgChainLength float64 `json:"avg_chain_length"`
	MaxChainLength int     `json:"max_chain_length"`
	ReductionRatio float64 `json:"reduction_ratio"`
}

type jsonFill struct {
	Segments []jsonSegment `json:"segments"`
	Chains   [][]jsonPoint `json:"chains"`
	Stats    jsonStats     `json:"chain_stats"`
}

func writeJSON(out io.Writer, segments []fill.Segment, chains []fill.Polyline, stats fill.ChainStats) error {
	doc := jsonFill{
		Segments: make([]jsonSegment, len(segments)),
		Chains:   make([][]jsonPoint, len(chains)),
		Stats: jsonStats{
			InputSegments:  stats.InputSegments,
			OutputChains:   stats.OutputChains,
			AvgChainLength: stats.AvgChainLength,
			MaxChainLength: stats.MaxChainLength,
			ReductionRatio: stats.ReductionRatio,
		},
	}

	for i, s := range segments {
		doc.Segments[i] = jsonSegment{X1: s.Start.X, Y1: s.Start.Y, X2: s.End.X, Y2: s.End.Y}
	}
	for i, chain := range chains {
		pts := make([]jsonPoint, len(chain))
		for j, p := range chain {
			pts[j] = jsonPoint{X: p.X, Y: p.Y}
		}
		doc.Chains[i] = pts
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
