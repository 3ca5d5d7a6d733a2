package svg

import (
	"fmt"
	"io"
	"strings"

	"github.com/osuushi/penfill/fill"
)

// Writer serializes fill output back into a standalone SVG document.
type Writer struct {
	Precision   int
	Stroke      string
	StrokeWidth string
}

// NewWriter returns a Writer with plotter-friendly defaults.
func NewWriter() Writer {
	return Writer{Precision: 2, Stroke: "black", StrokeWidth: "1"}
}

// SegmentsPath renders segments as individual pen strokes: every segment is
// its own M/L pair, one pen lift each.
func (w Writer) SegmentsPath(segments []fill.Segment) string {
	commands := make([]string, 0, len(segments))
	for _, s := range segments {
		commands = append(commands, fmt.Sprintf(
			"M%.*f,%.*f L%.*f,%.*f",
			w.Precision, s.Start.X, w.Precision, s.Start.Y,
			w.Precision, s.End.X, w.Precision, s.End.Y,
		))
	}
	return strings.Join(commands, " ")
}

// ChainsPath renders chained polylines: one M then a run of Ls per chain,
// so the pen stays down for the length of each chain.
func (w Writer) ChainsPath(chains []fill.Polyline) string {
	commands := make([]string, 0, len(chains))
	for _, chain := range chains {
		if len(chain) == 0 {
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "M%.*f,%.*f", w.Precision, chain[0].X, w.Precision, chain[0].Y)
		for _, p := range chain[1:] {
			fmt.Fprintf(&b, " L%.*f,%.*f", w.Precision, p.X, w.Precision, p.Y)
		}
		commands = append(commands, b.String())
	}
	return strings.Join(commands, " ")
}

// WriteDocument emits a complete SVG document wrapping one path element.
// Sizing attributes carry over from meta verbatim when present.
func (w Writer) WriteDocument(out io.Writer, pathData string, meta Meta) error {
	attrs := []string{`xmlns="http://www.w3.org/2000/svg"`}
	if meta.ViewBox != "" {
		attrs = append(attrs, fmt.Sprintf(`viewBox="%s"`, meta.ViewBox))
	}
	if meta.Width != "" {
		attrs = append(attrs, fmt.Sprintf(`width="%s"`, meta.Width))
	}
	if meta.Height != "" {
		attrs = append(attrs, fmt.Sprintf(`height="%s"`, meta.Height))
	}

	_, err := fmt.Fprintf(
		out,
		"<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<svg %s>\n  <path d=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\"/>\n</svg>",
		strings.Join(attrs, " "), pathData, w.Stroke, w.StrokeWidth,
	)
	return err
}
