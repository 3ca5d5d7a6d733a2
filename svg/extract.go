package svg

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/penfill/fill"
)

// Meta carries the root svg element's sizing attributes through a fill run
// untouched, so output documents line up with their input.
type Meta struct {
	ViewBox string
	Width   string
	Height  string
}

// Extract pulls every fillable outline out of an SVG document, in document
// order, however deeply nested. Unknown elements are skipped, as are shapes
// that boil down to fewer than three vertices. Transforms are not applied.
func Extract(r io.Reader) ([]fill.Polygon, Meta, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, Meta{}, errors.Wrap(err, "parsing svg")
	}

	meta := Meta{
		ViewBox: root.Attributes["viewBox"],
		Width:   root.Attributes["width"],
		Height:  root.Attributes["height"],
	}

	var polygons []fill.Polygon
	var walk func(el *svgparser.Element)
	walk = func(el *svgparser.Element) {
		if shape, ok := shapeForElement(el); ok {
			if polygon, ok := ToPolygon(shape); ok {
				polygons = append(polygons, polygon)
			}
		}
		for _, child := range el.Children {
			walk(child)
		}
	}
	walk(root)

	return polygons, meta, nil
}

func shapeForElement(el *svgparser.Element) (Shape, bool) {
	switch strings.ToLower(el.Name) {
	case "path":
		return Path{D: el.Attributes["d"]}, true
	case "polygon":
		return PolygonShape{Points: el.Attributes["points"]}, true
	case "polyline":
		return Polyline{Points: el.Attributes["points"]}, true
	case "rect":
		return Rect{
			X:      attrFloat(el, "x"),
			Y:      attrFloat(el, "y"),
			Width:  attrFloat(el, "width"),
			Height: attrFloat(el, "height"),
		}, true
	case "circle":
		return Circle{
			CX: attrFloat(el, "cx"),
			CY: attrFloat(el, "cy"),
			R:  attrFloat(el, "r"),
		}, true
	case "ellipse":
		return Ellipse{
			CX: attrFloat(el, "cx"),
			CY: attrFloat(el, "cy"),
			RX: attrFloat(el, "rx"),
			RY: attrFloat(el, "ry"),
		}, true
	}
	return nil, false
}

// attrFloat reads a numeric attribute, zero when absent or unparseable.
func attrFloat(el *svgparser.Element, name string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(el.Attributes[name]), 64)
	if err != nil {
		return 0
	}
	return f
}
