package main

import (
	"bytes"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/osuushi/penfill"
	"github.com/osuushi/penfill/fill"
	"github.com/osuushi/penfill/render"
	"github.com/osuushi/penfill/svg"
)

func runPreview() error {
	raw, err := readInput(*previewInput)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}

	shapes, _, err := svg.Extract(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	if len(shapes) == 0 {
		return errors.New("no fillable shapes found")
	}

	var segments []fill.Segment
	for i := range shapes {
		shapeSegments, err := penfill.Fill(shapes[i], *previewSpacing, *previewConnect)
		if err != nil {
			return errors.Wrapf(err, "filling shape %d", i)
		}
		segments = append(segments, shapeSegments...)
	}

	min, max := render.SegmentBounds(segments)
	opts := render.DefaultOptions()

	// Fit the drawing's long edge into the requested pixel size.
	longEdge := math.Max(max.X-min.X, max.Y-min.Y)
	if longEdge > 0 {
		opts.Scale = (float64(*previewSize) - 2*opts.Margin) / longEdge
	}

	c := render.Preview(segments, min, max, opts)
	if err := c.SavePNG(*previewOutput); err != nil {
		return errors.Wrap(err, "writing png")
	}
	logVerbose("wrote %s (%dx%d)", *previewOutput, c.Width(), c.Height())

	if *previewShow {
		return render.Show(c, os.Stdout)
	}
	return nil
}
