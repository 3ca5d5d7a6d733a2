package fill

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPointsInDelta(t *testing.T, expected, actual []Point, delta float64) {
	t.Helper()
	require.Equal(t, len(expected), len(actual))
	for i := range expected {
		assert.InDelta(t, expected[i].X, actual[i].X, delta, "point %d x", i)
		assert.InDelta(t, expected[i].Y, actual[i].Y, delta, "point %d y", i)
	}
}

func TestRobustInsetSquare(t *testing.T) {
	t.Run("counterclockwise", func(t *testing.T) {
		inset := RobustInset(square(0, 0, 10), 2)
		assertPointsInDelta(t, []Point{{2, 2}, {8, 2}, {8, 8}, {2, 8}}, inset.Points, 1e-9)
	})

	t.Run("clockwise gives the same ring", func(t *testing.T) {
		inset := RobustInset(reversed(square(0, 0, 10)), 2)
		assertPointsInDelta(t, []Point{{2, 8}, {8, 8}, {8, 2}, {2, 2}}, inset.Points, 1e-9)
	})

	t.Run("repeated closing point drops the duplicated corner", func(t *testing.T) {
		// The zero-length closing edge makes both of its vertices degenerate,
		// so the ring comes back with three corners instead of four.
		sq := square(0, 0, 10)
		sq.Points = append(sq.Points, sq.Points[0])

		inset := RobustInset(sq, 2)
		assertPointsInDelta(t, []Point{{8, 2}, {8, 8}, {2, 8}}, inset.Points, 1e-9)
	})
}

func TestRobustInsetShrinks(t *testing.T) {
	shapes := map[string]Polygon{
		"square":   square(0, 0, 100),
		"triangle": {Points: []Point{{5, 0}, {10, 10}, {0, 10}}},
		"lshape": {Points: []Point{
			{0, 0}, {60, 0}, {60, 20}, {20, 20}, {20, 60}, {0, 60},
		}},
		"sliver": {Points: []Point{{0, 0}, {100, 2}, {0, 4}}},
	}

	for name, shape := range shapes {
		for _, distance := range []float64{0.5, 1, 2} {
			t.Run(fmt.Sprintf("%s by %v", name, distance), func(t *testing.T) {
				inset := RobustInset(shape, distance)
				if len(inset.Points) == 0 {
					// A collapse is a legal answer for small shapes.
					return
				}
				require.GreaterOrEqual(t, len(inset.Points), 3)
				assert.False(t, inset.IsSelfIntersecting())
				assert.Less(t, inset.Area(), shape.Area())
				assert.Greater(t, inset.Area(), 0.0)
			})
		}
	}
}

func TestRobustInsetCollapse(t *testing.T) {
	t.Run("distance past the centroid collapses", func(t *testing.T) {
		// Average vertex distance to center is ~2.8, so 10 must collapse.
		inset := RobustInset(square(0, 0, 4), 10)
		assert.Empty(t, inset.Points)
	})

	t.Run("degenerate input collapses", func(t *testing.T) {
		assert.Empty(t, RobustInset(Polygon{}, 1).Points)
		assert.Empty(t, RobustInset(Polygon{Points: []Point{{0, 0}, {5, 5}}}, 1).Points)
	})
}

func TestRobustInsetConcave(t *testing.T) {
	// A deep comb shape is where a naive miter offset tends to fold over
	// itself. Whether the offset survives validation or the centroid fallback
	// takes over, the contract is the same: simple result, strictly smaller.
	comb := Polygon{Points: []Point{
		{0, 0}, {50, 0}, {50, 30},
		{40, 30}, {40, 10}, {30, 10}, {30, 30},
		{20, 30}, {20, 10}, {10, 10}, {10, 30},
		{0, 30},
	}}

	inset := RobustInset(comb, 4)
	require.GreaterOrEqual(t, len(inset.Points), 3)
	assert.False(t, inset.IsSelfIntersecting())
	assert.Less(t, inset.Area(), comb.Area())
}

func TestRobustInsetStaysInside(t *testing.T) {
	// Inward means inward: for a convex shape, every inset vertex must sit
	// strictly inside the original boundary.
	sq := square(0, 0, 20)
	inset := RobustInset(sq, 3)
	require.NotEmpty(t, inset.Points)
	for _, p := range inset.Points {
		assert.True(t, sq.Contains(p), "inset point %v escaped the boundary", p)
	}
}

func TestRobustInsetRejectsBadDistance(t *testing.T) {
	assert.Panics(t, func() { RobustInset(square(0, 0, 10), 0) })
	assert.Panics(t, func() { RobustInset(square(0, 0, 10), -1) })
}

func TestOffsetInwardVertexBudget(t *testing.T) {
	// One output vertex per input vertex at most, dropped vertices stay
	// dropped.
	shapes := []Polygon{
		square(0, 0, 10),
		{Points: []Point{{0, 0}, {10, 0}, {10, 0.00001}, {10, 10}, {0, 10}}},
	}
	for _, shape := range shapes {
		offset := offsetInward(shape, 1)
		assert.LessOrEqual(t, len(offset.Points), len(shape.Points))
	}
}
