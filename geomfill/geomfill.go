// Package geomfill is a second concentric fill, written directly against the
// github.com/jbeda/geom primitives. It is the version you would write with a
// geometry library at hand and no profiler open. The benchmark command runs
// it alongside the fill package to keep the tuned core honest, and tests
// cross-check the two on simple shapes.
package geomfill

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/osuushi/penfill/fill"
)

// Same knobs as the native core.
const (
	minAreaFactor       = 0.5
	maxLoopCount        = 100
	degenerateEdgeLimit = 1e-4
	maxMiterScale       = 2.5
	minMiterDot         = 0.1
)

// Generate fills one outline with concentric rings, lowered to point pairs
// with the outermost ring first. With connect set, each ring except the
// innermost also emits a hop to the nearest vertex of the next ring.
// Degenerate outlines and non-positive spacing yield nil.
func Generate(points []geom.Coord, spacing float64, connect bool) [][2]geom.Coord {
	if spacing <= 0 || len(points) < 3 {
		return nil
	}

	loops := buildLoops(points, spacing)

	var out [][2]geom.Coord
	for loopIdx, loop := range loops {
		n := len(loop)
		for i := 0; i < n; i++ {
			out = append(out, [2]geom.Coord{loop[i], loop[(i+1)%n]})
		}

		if connect && loopIdx < len(loops)-1 {
			next := loops[loopIdx+1]
			last := loop[n-1]

			closest := 0
			closestDist := math.Inf(1)
			for i, p := range next {
				if d := last.DistanceFrom(p); d < closestDist {
					closestDist = d
					closest = i
				}
			}
			out = append(out, [2]geom.Coord{last, next[closest]})
		}
	}
	return out
}

// FromFillPolygon lowers a fill polygon's outer boundary to geom coordinates.
func FromFillPolygon(polygon fill.Polygon) []geom.Coord {
	coords := make([]geom.Coord, len(polygon.Points))
	for i, p := range polygon.Points {
		coords[i] = geom.Coord{X: p.X, Y: p.Y}
	}
	return coords
}

// ToSegments converts generated pairs into fill segments, so the two
// implementations can be compared side by side.
func ToSegments(pairs [][2]geom.Coord) []fill.Segment {
	segments := make([]fill.Segment, len(pairs))
	for i, pair := range pairs {
		segments[i] = fill.Segment{
			Start: fill.Point{X: pair[0].X, Y: pair[0].Y},
			End:   fill.Point{X: pair[1].X, Y: pair[1].Y},
		}
	}
	return segments
}

func buildLoops(points []geom.Coord, spacing float64) [][]geom.Coord {
	minArea := spacing * spacing * minAreaFactor

	r := boundsOf(points)
	maxDimension := math.Max(r.Width(), r.Height())
	maxLoops := int(math.Min(maxLoopCount, math.Ceil(maxDimension/spacing)+2))

	var loops [][]geom.Coord
	current := points
	lastArea := math.Abs(signedArea(current))

	for len(loops) < maxLoops {
		if len(current) < 3 || lastArea < minArea {
			break
		}
		loops = append(loops, current)

		current = robustInset(current, spacing)
		if len(current) < 3 {
			break
		}

		newArea := math.Abs(signedArea(current))
		if newArea >= lastArea || newArea < minArea {
			break
		}
		lastArea = newArea
	}

	// A shape below the area floor still gets its outline.
	if len(loops) == 0 {
		loops = append(loops, points)
	}

	return loops
}

// robustInset offsets inward and accepts the result only if it stayed a
// smaller simple ring; otherwise it shrinks the outline uniformly toward the
// centroid, and gives up entirely once the shape is within one spacing of
// its center.
func robustInset(points []geom.Coord, distance float64) []geom.Coord {
	if len(points) < 3 {
		return nil
	}

	offset := inset(points, distance)
	originalArea := math.Abs(signedArea(points))
	if len(offset) >= 3 && !selfIntersects(offset) {
		newArea := math.Abs(signedArea(offset))
		if newArea > 0 && newArea < originalArea {
			return offset
		}
	}

	c := centroid(points)
	avgDist := 0.0
	for _, p := range points {
		avgDist += p.DistanceFrom(c)
	}
	avgDist /= float64(len(points))
	if avgDist <= distance {
		return nil
	}

	scale := (avgDist - distance) / avgDist
	result := make([]geom.Coord, len(points))
	for i, p := range points {
		result[i] = c.Plus(p.Minus(c).Times(scale))
	}
	return result
}

// inset moves each vertex along its angle bisector. Vertices on edges
// shorter than degenerateEdgeLimit drop out, and the miter length is capped
// at maxMiterScale spacings.
func inset(points []geom.Coord, distance float64) []geom.Coord {
	n := len(points)
	winding := -1.0
	if signedArea(points) > 0 {
		winding = 1.0
	}

	var result []geom.Coord
	for i := 0; i < n; i++ {
		prev := points[(i+n-1)%n]
		curr := points[i]
		next := points[(i+1)%n]

		e1 := curr.Minus(prev)
		e2 := next.Minus(curr)
		if e1.Magnitude() < degenerateEdgeLimit || e2.Magnitude() < degenerateEdgeLimit {
			continue
		}

		n1 := inwardNormal(e1, winding)
		n2 := inwardNormal(e2, winding)

		bisector := n1.Plus(n2)
		if bisector.Magnitude() < degenerateEdgeLimit {
			bisector = n1
		} else {
			bisector = bisector.Unit()
			dot := n1.X*bisector.X + n1.Y*bisector.Y
			if math.Abs(dot) > minMiterDot {
				bisector = bisector.Times(math.Min(1/math.Abs(dot), maxMiterScale))
			}
		}

		result = append(result, curr.Plus(bisector.Times(distance)))
	}
	return result
}

func inwardNormal(e geom.Coord, winding float64) geom.Coord {
	return geom.Coord{X: -e.Y, Y: e.X}.Unit().Times(winding)
}

func signedArea(points []geom.Coord) float64 {
	if len(points) < 3 {
		return 0
	}
	total := 0.0
	for i, p := range points {
		q := points[(i+1)%len(points)]
		total += p.X*q.Y - q.X*p.Y
	}
	return total / 2
}

func centroid(points []geom.Coord) geom.Coord {
	c := geom.Coord{}
	if len(points) == 0 {
		return c
	}
	for _, p := range points {
		c = c.Plus(p)
	}
	return c.Times(1 / float64(len(points)))
}

func boundsOf(points []geom.Coord) geom.Rect {
	r := geom.Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.ExpandToContainCoord(p)
	}
	return r
}

func selfIntersects(points []geom.Coord) bool {
	n := len(points)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == (j+1)%n {
				continue
			}
			if segmentsCross(points[i], points[(i+1)%n], points[j], points[(j+1)%n]) {
				return true
			}
		}
	}
	return false
}

// segmentsCross reports proper crossings only: shared endpoints and
// collinear overlap do not count.
func segmentsCross(a1, a2, b1, b2 geom.Coord) bool {
	d1 := cross(b2.Minus(b1), a1.Minus(b1))
	d2 := cross(b2.Minus(b1), a2.Minus(b1))
	d3 := cross(a2.Minus(a1), b1.Minus(a1))
	d4 := cross(a2.Minus(a1), b2.Minus(a1))

	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func cross(a, b geom.Coord) float64 {
	return a.X*b.Y - a.Y*b.X
}
