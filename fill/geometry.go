package fill

import "math"

// SignedArea computes the shoelace sum over cyclic vertex indices. Positive
// means counterclockwise. Fewer than three vertices have no area.
func (p Polygon) SignedArea() float64 {
	pts := p.Points
	if len(pts) < 3 {
		return 0
	}

	area := 0.0
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += pts[i].X * pts[j].Y
		area -= pts[j].X * pts[i].Y
	}
	return area / 2
}

// Area is the absolute signed area.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// windingSign is +1 for counterclockwise vertex order and -1 for clockwise,
// so that a rotated edge vector times the sign always points into the
// interior.
func (p Polygon) windingSign() float64 {
	if p.SignedArea() > 0 {
		return 1
	}
	return -1
}

// Centroid is the arithmetic mean of the vertices, not the area centroid.
func (p Polygon) Centroid() Point {
	if len(p.Points) == 0 {
		return Point{}
	}
	var sum Point
	for _, pt := range p.Points {
		sum = sum.Add(pt)
	}
	return sum.Scale(1 / float64(len(p.Points)))
}

// Bounds returns the corners of the axis-aligned bounding box.
func (p Polygon) Bounds() (min, max Point) {
	if len(p.Points) == 0 {
		return Point{}, Point{}
	}
	min, max = p.Points[0], p.Points[0]
	for _, pt := range p.Points[1:] {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
	}
	return min, max
}

// Contains reports whether pt lies inside the polygon, by horizontal
// ray-casting parity over the cyclic edges. Fewer than three vertices contain
// nothing. Points exactly on the boundary may land on either side; nothing
// here depends on boundary classification.
func (p Polygon) Contains(pt Point) bool {
	pts := p.Points
	if len(pts) < 3 {
		return false
	}

	inside := false
	n := len(pts)
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := pts[i].X, pts[i].Y
		xj, yj := pts[j].X, pts[j].Y

		// The parity comparison only differs when yi != yj, but the guard
		// keeps the division defined even on horizontal edges.
		if yi != yj && (yi > pt.Y) != (yj > pt.Y) &&
			pt.X < (xj-xi)*(pt.Y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// direction is the z component of the cross product (p3-p1) x (p2-p1). Its
// sign says which side of the line through p1 and p2 the point p3 falls on.
func direction(p1, p2, p3 Point) float64 {
	return (p3.X-p1.X)*(p2.Y-p1.Y) - (p2.X-p1.X)*(p3.Y-p1.Y)
}

// SegmentsIntersect reports whether segment a1-a2 properly crosses segment
// b1-b2: each segment's endpoints must lie strictly on opposite sides of the
// other's line. Touching endpoints and collinear overlap do not count, which
// is what keeps adjacent polygon edges from ever registering as a crossing.
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	d1 := direction(b1, b2, a1)
	d2 := direction(b1, b2, a2)
	d3 := direction(a1, a2, b1)
	d4 := direction(a1, a2, b2)

	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// IsSelfIntersecting checks every non-adjacent edge pair for a proper
// crossing. Quadratic in vertex count, which stays in the tens to low
// hundreds for plotter shapes.
func (p Polygon) IsSelfIntersecting() bool {
	pts := p.Points
	n := len(pts)
	if n < 4 {
		return false
	}

	for i := 0; i < n; i++ {
		a1 := pts[i]
		a2 := pts[(i+1)%n]

		for j := i + 2; j < n; j++ {
			// Skip the wrapped neighbor; it shares a vertex with edge i.
			if j == CircularIndex(i-1, n) {
				continue
			}

			b1 := pts[j]
			b2 := pts[(j+1)%n]

			if SegmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}
