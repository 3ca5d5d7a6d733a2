// Concentric fill generation for pen plotters.
//
// This package converts closed outlines into nested rings of pen strokes,
// which can then be chained into continuous polylines and written back out
// as SVG. The heavy lifting lives in the fill package; this facade converts
// its panics into errors at the API boundary.
package penfill

import "github.com/osuushi/penfill/fill"

type Point = fill.Point
type Polygon = fill.Polygon
type Segment = fill.Segment
type Polyline = fill.Polyline
type ChainStats = fill.ChainStats
type OrderingStrategy = fill.OrderingStrategy

const (
	OrderDocument        = fill.OrderDocument
	OrderNearestNeighbor = fill.OrderNearestNeighbor
)

// DefaultChainTolerance is the endpoint gap Chain treats as coincident.
const DefaultChainTolerance = fill.DefaultChainTolerance

// Fill covers one polygon with concentric rings of pen strokes, outermost
// ring first. Spacing is the gap between rings. With connect set, rings are
// stitched together so each shape plots as nearly one continuous stroke.
//
// The boundary should be simple. Holes are carried but not subtracted, and
// winding order does not matter. Degenerate boundaries yield no segments.
func Fill(polygon Polygon, spacing float64, connect bool) (segments []Segment, err error) {
	defer func() {
		recoveredErr := fill.HandleFillPanicRecover(recover())
		if recoveredErr != nil {
			segments = nil
			err = recoveredErr
		}
	}()
	return fill.GenerateConcentric(polygon, spacing, connect), nil
}

// Inset shrinks a polygon inward by distance. The result is either a
// strictly smaller simple outline or empty, when the shape has collapsed.
func Inset(polygon Polygon, distance float64) (result Polygon, err error) {
	defer func() {
		recoveredErr := fill.HandleFillPanicRecover(recover())
		if recoveredErr != nil {
			result = Polygon{}
			err = recoveredErr
		}
	}()
	return fill.RobustInset(polygon, distance), nil
}

// Chain joins segments whose endpoints meet within tolerance into polylines,
// cutting down pen lifts.
func Chain(segments []Segment, tolerance float64) []Polyline {
	return fill.ChainSegments(segments, tolerance)
}
