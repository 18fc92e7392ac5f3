package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func edgeAt(i, j int, a, b Point[float64]) Edge[float64] {
	return Edge[float64]{I: i, J: j, PointI: a, PointJ: b}
}

func TestEdgesIntersect_Duplicates(t *testing.T) {
	e := edgeAt(0, 1, Point[float64]{X: 0, Y: 0}, Point[float64]{X: 1, Y: 0})
	assert.True(t, EdgesIntersect(e, e))
}

func TestEdgesIntersect_SharedEndpoint(t *testing.T) {
	a := Point[float64]{X: 0, Y: 0}
	b := Point[float64]{X: 1, Y: 0}
	c := Point[float64]{X: 1, Y: 1}

	// Chained edges touch at b, which doesn't count as a crossing
	assert.False(t, EdgesIntersect(edgeAt(0, 1, a, b), edgeAt(1, 2, b, c)))
	assert.False(t, EdgesIntersect(edgeAt(1, 2, b, c), edgeAt(0, 1, a, b)))
}

func TestEdgesIntersect_CollinearChain(t *testing.T) {
	// Two collinear edges sharing an endpoint still aren't intersecting,
	// even though they touch at the shared point.
	a := Point[float64]{X: 0, Y: 0}
	b := Point[float64]{X: 1, Y: 0}
	c := Point[float64]{X: 2, Y: 0}
	assert.False(t, EdgesIntersect(edgeAt(0, 1, a, b), edgeAt(1, 2, b, c)))
}

func TestEdgesIntersect_ProperCrossing(t *testing.T) {
	e1 := edgeAt(0, 1, Point[float64]{X: 0, Y: 0}, Point[float64]{X: 2, Y: 2})
	e2 := edgeAt(2, 3, Point[float64]{X: 0, Y: 2}, Point[float64]{X: 2, Y: 0})
	assert.True(t, EdgesIntersect(e1, e2))
	assert.True(t, EdgesIntersect(e2, e1))
}

func TestEdgesIntersect_TouchingEndpoint(t *testing.T) {
	// A T shape: e2 starts on e1's interior. t and u are inclusive, so
	// this counts as intersecting.
	e1 := edgeAt(0, 1, Point[float64]{X: 0, Y: 0}, Point[float64]{X: 2, Y: 0})
	e2 := edgeAt(2, 3, Point[float64]{X: 1, Y: 0}, Point[float64]{X: 1, Y: 2})
	assert.True(t, EdgesIntersect(e1, e2))
}

func TestEdgesIntersect_Parallel(t *testing.T) {
	// Zero denominator is treated as non-intersecting
	e1 := edgeAt(0, 1, Point[float64]{X: 0, Y: 0}, Point[float64]{X: 2, Y: 0})
	e2 := edgeAt(2, 3, Point[float64]{X: 0, Y: 1}, Point[float64]{X: 2, Y: 1})
	assert.False(t, EdgesIntersect(e1, e2))
}

func TestEdgesIntersect_Disjoint(t *testing.T) {
	e1 := edgeAt(0, 1, Point[float64]{X: 0, Y: 0}, Point[float64]{X: 1, Y: 0})
	e2 := edgeAt(2, 3, Point[float64]{X: 3, Y: 3}, Point[float64]{X: 4, Y: 5})
	assert.False(t, EdgesIntersect(e1, e2))
}

func TestEdgesIntersect_CrossOutsideSegments(t *testing.T) {
	// The infinite lines cross, but outside both segments
	e1 := edgeAt(0, 1, Point[float64]{X: 0, Y: 0}, Point[float64]{X: 1, Y: 0})
	e2 := edgeAt(2, 3, Point[float64]{X: 5, Y: -1}, Point[float64]{X: 5, Y: 1})
	assert.False(t, EdgesIntersect(e1, e2))
}
