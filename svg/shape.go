// Package svg reads outlines out of SVG documents and writes fill output
// back as SVG. It is deliberately not a general SVG engine: no transforms,
// no styles, no defs. It recognizes the six shape elements drawing programs
// emit and hands flat polygons to the fill package.
package svg

import (
	"math"
	"regexp"
	"strconv"

	"github.com/osuushi/penfill/fill"
)

// A polyline whose ends sit farther apart than this gets closed before
// filling.
const polylineCloseGap = 1.0

// Shape is one drawable SVG element, before conversion to a fill outline.
type Shape interface {
	isShape()
}

// Path is a path element's d attribute.
type Path struct {
	D string
}

func (Path) isShape() {}

// PolygonShape is a polygon element's points attribute.
type PolygonShape struct {
	Points string
}

func (PolygonShape) isShape() {}

// Polyline is a polyline element's points attribute.
type Polyline struct {
	Points string
}

func (Polyline) isShape() {}

// Rect is a rect element.
type Rect struct {
	X, Y, Width, Height float64
}

func (Rect) isShape() {}

// Circle is a circle element.
type Circle struct {
	CX, CY, R float64
}

func (Circle) isShape() {}

// Ellipse is an ellipse element.
type Ellipse struct {
	CX, CY, RX, RY float64
}

func (Ellipse) isShape() {}

var pointPairRe = regexp.MustCompile(`-?[\d.]+`)

// ToPolygon lowers a shape to a flat outline. ok is false when the shape
// boils down to fewer than three vertices.
func ToPolygon(shape Shape) (fill.Polygon, bool) {
	var points []fill.Point

	switch s := shape.(type) {
	case Path:
		points = ParsePathData(s.D)

	case PolygonShape:
		points = parsePointPairs(s.Points)

	case Polyline:
		points = parsePointPairs(s.Points)
		if len(points) >= 2 {
			first := points[0]
			if points[len(points)-1].DistanceTo(first) > polylineCloseGap {
				points = append(points, first)
			}
		}

	case Rect:
		points = []fill.Point{
			{X: s.X, Y: s.Y},
			{X: s.X + s.Width, Y: s.Y},
			{X: s.X + s.Width, Y: s.Y + s.Height},
			{X: s.X, Y: s.Y + s.Height},
			{X: s.X, Y: s.Y},
		}

	case Circle:
		points = arcPoints(s.CX, s.CY, s.R, s.R)

	case Ellipse:
		points = arcPoints(s.CX, s.CY, s.RX, s.RY)
	}

	if len(points) < 3 {
		return fill.Polygon{}, false
	}
	return fill.Polygon{Points: points}, true
}

// arcPoints walks a full turn in 32 straight hops. The first and last points
// coincide, matching how a closed path comes out of the d parser.
func arcPoints(cx, cy, rx, ry float64) []fill.Point {
	const segments = 32
	points := make([]fill.Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		angle := float64(i) / segments * 2 * math.Pi
		points = append(points, fill.Point{
			X: cx + rx*math.Cos(angle),
			Y: cy + ry*math.Sin(angle),
		})
	}
	return points
}

func parsePointPairs(attr string) []fill.Point {
	coords := pointPairRe.FindAllString(attr, -1)
	points := make([]fill.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		x, errX := strconv.ParseFloat(coords[i], 64)
		y, errY := strconv.ParseFloat(coords[i+1], 64)
		if errX != nil || errY != nil {
			continue
		}
		points = append(points, fill.Point{X: x, Y: y})
	}
	return points
}
