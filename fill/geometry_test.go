package fill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func square(x, y, size float64) Polygon {
	return Polygon{Points: []Point{
		{x, y},
		{x + size, y},
		{x + size, y + size},
		{x, y + size},
	}}
}

func reversed(p Polygon) Polygon {
	pts := make([]Point, len(p.Points))
	for i, pt := range p.Points {
		pts[len(pts)-1-i] = pt
	}
	return Polygon{Points: pts}
}

func TestSignedArea(t *testing.T) {
	t.Run("counterclockwise square", func(t *testing.T) {
		assert.InDelta(t, 100.0, square(0, 0, 10).SignedArea(), 1e-9)
	})

	t.Run("clockwise square", func(t *testing.T) {
		assert.InDelta(t, -100.0, reversed(square(0, 0, 10)).SignedArea(), 1e-9)
	})

	t.Run("translation does not change area", func(t *testing.T) {
		assert.InDelta(t, 100.0, square(-37, 81, 10).SignedArea(), 1e-9)
	})

	t.Run("repeated closing point does not change area", func(t *testing.T) {
		sq := square(0, 0, 10)
		sq.Points = append(sq.Points, sq.Points[0])
		assert.InDelta(t, 100.0, sq.SignedArea(), 1e-9)
	})

	t.Run("degenerate polygons have no area", func(t *testing.T) {
		assert.Zero(t, Polygon{}.SignedArea())
		assert.Zero(t, Polygon{Points: []Point{{0, 0}, {1, 1}}}.SignedArea())
	})

	t.Run("area is always positive", func(t *testing.T) {
		assert.InDelta(t, 100.0, reversed(square(0, 0, 10)).Area(), 1e-9)
	})
}

func TestCentroid(t *testing.T) {
	c := square(0, 0, 10).Centroid()
	assert.InDelta(t, 5.0, c.X, 1e-9)
	assert.InDelta(t, 5.0, c.Y, 1e-9)

	assert.Equal(t, Point{}, Polygon{}.Centroid())
}

func TestBounds(t *testing.T) {
	min, max := Polygon{Points: []Point{{3, -2}, {-1, 7}, {5, 0}}}.Bounds()
	assert.Equal(t, Point{-1, -2}, min)
	assert.Equal(t, Point{5, 7}, max)

	min, max = Polygon{}.Bounds()
	assert.Equal(t, Point{}, min)
	assert.Equal(t, Point{}, max)
}

func TestContains(t *testing.T) {
	sq := square(0, 0, 10)

	t.Run("interior points", func(t *testing.T) {
		assert.True(t, sq.Contains(Point{5, 5}))
		assert.True(t, sq.Contains(Point{1, 9}))
	})

	t.Run("exterior points", func(t *testing.T) {
		assert.False(t, sq.Contains(Point{-5, 5}))
		assert.False(t, sq.Contains(Point{15, 5}))
		assert.False(t, sq.Contains(Point{5, 15}))
	})

	t.Run("winding does not matter", func(t *testing.T) {
		assert.True(t, reversed(sq).Contains(Point{5, 5}))
		assert.False(t, reversed(sq).Contains(Point{15, 5}))
	})

	t.Run("horizontal edges do not blow up", func(t *testing.T) {
		// Ray at the exact height of the square's horizontal edges.
		assert.False(t, sq.Contains(Point{-5, 0}))
		assert.False(t, sq.Contains(Point{-5, 10}))
	})

	t.Run("concave notch", func(t *testing.T) {
		// An L shape; the notch is outside even though the bounding box says
		// otherwise.
		l := Polygon{Points: []Point{
			{0, 0}, {60, 0}, {60, 20}, {20, 20}, {20, 60}, {0, 60},
		}}
		assert.True(t, l.Contains(Point{10, 10}))
		assert.True(t, l.Contains(Point{10, 50}))
		assert.False(t, l.Contains(Point{40, 40}))
	})

	t.Run("degenerate polygons contain nothing", func(t *testing.T) {
		assert.False(t, Polygon{}.Contains(Point{0, 0}))
		assert.False(t, Polygon{Points: []Point{{0, 0}, {1, 1}}}.Contains(Point{0.5, 0.5}))
	})
}

func TestSegmentsIntersect(t *testing.T) {
	t.Run("plain crossing", func(t *testing.T) {
		assert.True(t, SegmentsIntersect(
			Point{0, 0}, Point{10, 10},
			Point{0, 10}, Point{10, 0},
		))
	})

	t.Run("far apart", func(t *testing.T) {
		assert.False(t, SegmentsIntersect(
			Point{0, 0}, Point{1, 0},
			Point{0, 5}, Point{1, 5},
		))
	})

	t.Run("shared endpoint does not count", func(t *testing.T) {
		assert.False(t, SegmentsIntersect(
			Point{0, 0}, Point{5, 5},
			Point{5, 5}, Point{10, 0},
		))
	})

	t.Run("endpoint touching mid-segment does not count", func(t *testing.T) {
		// T shape: the second segment ends exactly on the first.
		assert.False(t, SegmentsIntersect(
			Point{0, 0}, Point{10, 0},
			Point{5, 5}, Point{5, 0},
		))
	})

	t.Run("collinear overlap does not count", func(t *testing.T) {
		assert.False(t, SegmentsIntersect(
			Point{0, 0}, Point{10, 0},
			Point{5, 0}, Point{15, 0},
		))
	})

	t.Run("parallel", func(t *testing.T) {
		assert.False(t, SegmentsIntersect(
			Point{0, 0}, Point{10, 0},
			Point{0, 1}, Point{10, 1},
		))
	})
}

func TestIsSelfIntersecting(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		assert.False(t, square(0, 0, 10).IsSelfIntersecting())
	})

	t.Run("triangle can never self-intersect", func(t *testing.T) {
		assert.False(t, Polygon{Points: []Point{{0, 0}, {10, 0}, {5, 10}}}.IsSelfIntersecting())
	})

	t.Run("bowtie", func(t *testing.T) {
		// Crossed quad:
		/*
			0---1
			 \ /
			  X
			 / \
			3---2
		*/
		bowtie := Polygon{Points: []Point{
			{0, 0}, {10, 0}, {0, 10}, {10, 10},
		}}
		assert.True(t, bowtie.IsSelfIntersecting())
	})

	t.Run("concave but simple", func(t *testing.T) {
		l := Polygon{Points: []Point{
			{0, 0}, {60, 0}, {60, 20}, {20, 20}, {20, 60}, {0, 60},
		}}
		assert.False(t, l.IsSelfIntersecting())
	})

	t.Run("repeated closing point", func(t *testing.T) {
		sq := square(0, 0, 10)
		sq.Points = append(sq.Points, sq.Points[0])
		assert.False(t, sq.IsSelfIntersecting())
	})
}
