package fill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1.0, 1.0))
	assert.True(t, Equal(1.0, 1.0+Tolerance/2))
	assert.False(t, Equal(1.0, 1.0+Tolerance*2))
	assert.False(t, Equal(1.0, -1.0))
}

func TestPointArithmetic(t *testing.T) {
	p := Point{3, 4}

	assert.Equal(t, Point{4, 6}, p.Add(Point{1, 2}))
	assert.Equal(t, Point{2, 2}, p.Sub(Point{1, 2}))
	assert.Equal(t, Point{6, 8}, p.Scale(2))
	assert.InDelta(t, 5.0, p.Length(), 1e-9)
	assert.InDelta(t, 11.0, p.Dot(Point{1, 2}), 1e-9)

	unit := p.Normalized()
	assert.InDelta(t, 1.0, unit.Length(), 1e-9)
	assert.InDelta(t, 0.6, unit.X, 1e-9)
	assert.InDelta(t, 0.8, unit.Y, 1e-9)

	// The zero vector has no direction to normalize to.
	assert.Equal(t, Point{}, Point{}.Normalized())

	assert.InDelta(t, 5.0, Point{}.DistanceTo(p), 1e-9)
}
