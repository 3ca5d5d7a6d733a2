package penfill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smoke tests. The internals are already tested.
func TestFill(t *testing.T) {
	polygon := Polygon{Points: []Point{
		{0, 0},
		{10, 0},
		{10, 10},
		{0, 10},
	}}

	segments, err := Fill(polygon, 2, true)
	assert.NoError(t, err)
	assert.Greater(t, len(segments), 4)
}

func TestFillRejectsBadSpacing(t *testing.T) {
	polygon := Polygon{Points: []Point{{0, 0}, {10, 0}, {5, 8}}}

	segments, err := Fill(polygon, -1, true)
	assert.Nil(t, segments)
	assert.EqualError(t, err, "spacing must be positive, got -1")
}

func TestInset(t *testing.T) {
	polygon := Polygon{Points: []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}

	inset, err := Inset(polygon, 2)
	assert.NoError(t, err)
	assert.Len(t, inset.Points, 4)

	_, err = Inset(polygon, 0)
	assert.Error(t, err)
}

func TestChain(t *testing.T) {
	chains := Chain([]Segment{
		{Point{0, 0}, Point{10, 0}},
		{Point{10, 0}, Point{10, 10}},
	}, DefaultChainTolerance)
	assert.Len(t, chains, 1)
}
