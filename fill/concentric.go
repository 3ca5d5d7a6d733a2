package fill

import "math"

// Rings with less area than spacing² times this factor count as collapsed.
// The factor is below 1 so that small shapes still get an innermost ring.
const minAreaFactor = 0.5

// Hard cap on ring count, independent of whether the inset converges.
const maxLoopCount = 100

// GenerateConcentric fills a polygon with nested, shrinking copies of its
// boundary, lowered to line segments with the outermost ring first. Spacing
// is the distance between adjacent rings. With connect set, every ring except
// the innermost also emits one connecting segment to the nearest vertex of
// the next ring, which makes the whole fill traversable as a single pen
// stroke at the cost of one extra pen-down move per transition.
//
// Holes on the polygon are carried but not subtracted. A boundary with fewer
// than three vertices produces no output. A shape too small for even one
// shrunken ring still produces its outline. Non-positive spacing panics with
// a FillError; everything geometric degrades silently instead.
func GenerateConcentric(polygon Polygon, spacing float64, connect bool) []Segment {
	if spacing <= 0 {
		fatalf("spacing must be positive, got %v", spacing)
	}

	if len(polygon.Points) < 3 {
		return nil
	}

	loops := buildLoops(polygon, spacing)

	var segments []Segment
	for loopIdx, loop := range loops {
		pts := loop.Points
		n := len(pts)

		// Each ring is its own closed cycle, wrap edge included.
		for i := 0; i < n; i++ {
			segments = append(segments, Segment{pts[i], pts[(i+1)%n]})
		}

		if connect && loopIdx < len(loops)-1 {
			next := loops[loopIdx+1].Points
			last := pts[n-1]

			// Hop to the nearest vertex of the next ring. Linear scan, first
			// minimum wins.
			closest := 0
			closestDist := math.Inf(1)
			for i, p := range next {
				if d := last.DistanceTo(p); d < closestDist {
					closestDist = d
					closest = i
				}
			}

			segments = append(segments, Segment{last, next[closest]})
		}
	}

	return segments
}

// buildLoops insets the boundary repeatedly, collecting each ring until the
// shape degenerates, stops shrinking, drops under the area floor, or hits the
// ring cap. Ring areas are strictly decreasing across the result.
func buildLoops(polygon Polygon, spacing float64) []Polygon {
	minArea := spacing * spacing * minAreaFactor

	min, max := polygon.Bounds()
	maxDimension := math.Max(max.X-min.X, max.Y-min.Y)
	maxLoops := int(math.Min(maxLoopCount, math.Ceil(maxDimension/spacing)+2))

	var loops []Polygon
	current := Polygon{Points: polygon.Points}
	lastArea := current.Area()

	for len(loops) < maxLoops {
		if len(current.Points) < 3 || lastArea < minArea {
			break
		}
		loops = append(loops, current)

		current = RobustInset(current, spacing)
		if len(current.Points) < 3 {
			break
		}

		newArea := current.Area()
		if newArea >= lastArea || newArea < minArea {
			break
		}
		lastArea = newArea
	}

	// A shape smaller than one ring's worth of spacing still deserves its
	// outline.
	if len(loops) == 0 && len(polygon.Points) >= 3 {
		loops = append(loops, Polygon{Points: polygon.Points})
	}

	return loops
}
