package concavehull

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smoke tests. The internals are already tested.

func TestConcaveHull(t *testing.T) {
	points := []Point[float64]{
		{X: 0, Y: 1},
		{X: 1, Y: 1},
		{X: 0, Y: 2},
		{X: 1, Y: 2},
	}

	hull, err := ConcaveHull(points, 10)
	assert.NoError(t, err)
	assert.Len(t, hull, 4)

	seen := make(map[int]bool)
	for _, hp := range hull {
		assert.False(t, seen[hp.Index])
		seen[hp.Index] = true
		assert.Equal(t, points[hp.Index], hp.Point)
	}
}

func TestConcaveHull_Float32(t *testing.T) {
	points := []Point[float32]{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 2, Y: 3},
	}

	hull, err := ConcaveHull[float32](points, float32(math.Inf(1)))
	assert.NoError(t, err)
	assert.Len(t, hull, 3)
}

func TestConcaveHull_InputUnchangedForTinyClouds(t *testing.T) {
	empty, err := ConcaveHull([]Point[float64]{}, 1)
	assert.NoError(t, err)
	assert.Empty(t, empty)

	single := []Point[float64]{{X: 7, Y: -2}}
	hull, err := ConcaveHull(single, 1)
	assert.NoError(t, err)
	assert.Equal(t, []HullPoint[float64]{{Index: 0, Point: single[0]}}, hull)
}

func TestConcaveHullEdges(t *testing.T) {
	points := []Point[float64]{
		{X: 0, Y: 1},
		{X: 1, Y: 1},
		{X: 0, Y: 2},
		{X: 1, Y: 2},
	}

	edges, err := ConcaveHullEdges(points, 10)
	assert.NoError(t, err)
	assert.Len(t, edges, 4)
}

func TestConvexHullIndices(t *testing.T) {
	points := []Point[float64]{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 1, Y: 1},
		{X: 1, Y: 0.25}, // interior
	}

	hull := ConvexHullIndices(points)
	assert.ElementsMatch(t, []int{0, 1, 2}, hull)
}
