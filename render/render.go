// Package render rasterizes fill output for a quick visual check without
// leaving the terminal.
package render

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/osuushi/penfill/fill"
)

// Options sizes the preview canvas. Scale is pixels per document unit,
// Margin and StrokeWidth are in pixels.
type Options struct {
	Scale       float64
	Margin      float64
	StrokeWidth float64
}

// DefaultOptions is big enough to see ring spacing on a typical plot.
func DefaultOptions() Options {
	return Options{Scale: 4, Margin: 16, StrokeWidth: 2}
}

// Preview draws a segment list onto a fresh canvas, white background, dark
// ink. min and max bound the drawing in document units. SVG coordinates are
// already y-down, so they map onto the raster directly.
func Preview(segments []fill.Segment, min, max fill.Point, opts Options) *gg.Context {
	width := int(opts.Scale*(max.X-min.X)) + int(opts.Margin)*2
	height := int(opts.Scale*(max.Y-min.Y)) + int(opts.Margin)*2
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Translate(opts.Margin, opts.Margin)
	c.Scale(opts.Scale, opts.Scale)
	c.Translate(-min.X, -min.Y)

	c.SetRGB(0.1, 0.1, 0.1)
	c.SetLineWidth(opts.StrokeWidth)
	for _, s := range segments {
		c.MoveTo(s.Start.X, s.Start.Y)
		c.LineTo(s.End.X, s.End.Y)
	}
	c.Stroke()

	return c
}

// SegmentBounds sweeps the extent of a segment list. Zero points for an
// empty list.
func SegmentBounds(segments []fill.Segment) (fill.Point, fill.Point) {
	if len(segments) == 0 {
		return fill.Point{}, fill.Point{}
	}

	min := fill.Point{X: math.Inf(1), Y: math.Inf(1)}
	max := fill.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, s := range segments {
		for _, p := range []fill.Point{s.Start, s.End} {
			min.X = math.Min(min.X, p.X)
			min.Y = math.Min(min.Y, p.Y)
			max.X = math.Max(max.X, p.X)
			max.Y = math.Max(max.Y, p.Y)
		}
	}
	return min, max
}

// Show writes the context to a temporary png and cats it inline, for
// terminals that speak the iTerm2 image protocol.
func Show(c *gg.Context, out io.Writer) error {
	f, err := os.CreateTemp("", "penfill-preview-*.png")
	if err != nil {
		return errors.Wrap(err, "creating preview file")
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := c.SavePNG(path); err != nil {
		return errors.Wrap(err, "writing preview png")
	}

	imgcat.CatFile(path, out)
	return nil
}
