package fill

import "math"

// An edge shorter than this carries no usable normal; the offset drops the
// vertex on it.
const degenerateEdgeLength = 1e-4

// Cap on the miter scale. Without it, a sharp enough corner sends its offset
// vertex arbitrarily far from the boundary.
const maxMiterScale = 2.5

// Below this dot product the corner is so tight that miter scaling stops
// being meaningful; the unit bisector is used as-is.
const minMiterDot = 0.1

// offsetInward shrinks the polygon by moving each vertex along the miter
// bisector of its two adjacent edges. One output vertex per input vertex,
// except that vertices on degenerate edges are dropped entirely, so the
// output count never exceeds the input count.
//
// The result is not validated. Concave and noisy shapes can come out
// self-intersecting or inverted; RobustInset is the entry point that deals
// with that.
func offsetInward(polygon Polygon, distance float64) Polygon {
	pts := polygon.Points
	if len(pts) < 3 {
		return Polygon{}
	}

	winding := polygon.windingSign()

	n := len(pts)
	result := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		prev := pts[CircularIndex(i-1, n)]
		curr := pts[i]
		next := pts[(i+1)%n]

		e1 := curr.Sub(prev)
		e2 := next.Sub(curr)

		len1 := e1.Length()
		len2 := e2.Length()

		if len1 < degenerateEdgeLength || len2 < degenerateEdgeLength {
			continue
		}

		// Rotate each edge a quarter turn and flip by winding so the normals
		// point into the interior no matter which way the polygon runs.
		n1 := Point{-e1.Y / len1 * winding, e1.X / len1 * winding}
		n2 := Point{-e2.Y / len2 * winding, e2.X / len2 * winding}

		// The averaged normal is the miter bisector. A near-zero average
		// means the edges double back on themselves; the first normal alone
		// is the best direction left.
		bisector := n1.Add(n2)
		length := bisector.Length()
		if length < degenerateEdgeLength {
			bisector = n1
		} else {
			bisector = bisector.Scale(1 / length)

			// Scale so the offset edges meet exactly at the corner, capped
			// to keep sharp corners from spiking.
			dot := n1.Dot(bisector)
			if math.Abs(dot) > minMiterDot {
				bisector = bisector.Scale(math.Min(1/math.Abs(dot), maxMiterScale))
			}
		}

		result = append(result, curr.Add(bisector.Scale(distance)))
	}

	return Polygon{Points: result}
}

// RobustInset shrinks a polygon inward by distance and guarantees a
// well-formed result: never self-intersecting, never larger than the input.
// When the shape cannot shrink any further it returns an empty polygon, which
// is the definitive "stop" signal for iterative callers.
//
// Input with fewer than three vertices also comes back empty. A non-positive
// distance panics with a FillError.
func RobustInset(polygon Polygon, distance float64) Polygon {
	if distance <= 0 {
		fatalf("inset distance must be positive, got %v", distance)
	}

	pts := polygon.Points
	if len(pts) < 3 {
		return Polygon{}
	}

	offset := offsetInward(polygon, distance)

	// The miter offset is fast but fragile. Accept it only if it is still a
	// simple polygon that actually shrank.
	if len(offset.Points) >= 3 && !offset.IsSelfIntersecting() {
		newArea := offset.Area()
		if newArea < polygon.Area() && newArea > 0 {
			return offset
		}
	}

	// Fallback: scale every vertex toward the centroid. Scaling keeps a
	// simple polygon simple, so this always yields a usable ring or a clean
	// stop.
	centroid := polygon.Centroid()

	avgDist := 0.0
	for _, p := range pts {
		avgDist += p.DistanceTo(centroid)
	}
	avgDist /= float64(len(pts))

	if avgDist <= distance {
		// The next ring would collapse to a point.
		return Polygon{}
	}

	scale := (avgDist - distance) / avgDist
	result := make([]Point, len(pts))
	for i, p := range pts {
		result[i] = centroid.Add(p.Sub(centroid).Scale(scale))
	}
	return Polygon{Points: result}
}
