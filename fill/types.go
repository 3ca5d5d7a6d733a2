package fill

import "math"

type Point struct {
	X float64
	Y float64
}

// Points are plain values. The algorithms in this package only ever compare
// them by distance, so there is no identity to preserve and no reason to pass
// pointers around.

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalized returns the unit vector in the direction of p. The zero vector is
// returned unchanged.
func (p Point) Normalized() Point {
	length := p.Length()
	if length == 0 {
		return p
	}
	return Point{p.X / length, p.Y / length}
}

func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// A Polygon is an ordered vertex list, implicitly closed: the last point
// connects back to the first. Callers may or may not repeat the first point at
// the end; both forms work. Winding matters: positive signed area is
// counterclockwise.
//
// Holes ride along for callers that track them, but no algorithm here
// subtracts them from the fill.
type Polygon struct {
	Points []Point
	Holes  [][]Point
}

// A polygon with fewer than three vertices carries no fill.
func (p Polygon) IsDegenerate() bool {
	return len(p.Points) < 3
}

// A Segment is directed. Direction is irrelevant to the geometry but it is
// what makes connected fills traversable as one pen stroke.
type Segment struct {
	Start Point
	End   Point
}

func (s Segment) Length() float64 {
	return s.Start.DistanceTo(s.End)
}

// A Polyline is an open path of two or more points, produced by chaining
// segments whose endpoints meet.
type Polyline []Point
