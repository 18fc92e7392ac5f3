package internal

// Edge is a directed candidate boundary segment from point I to point J.
// It caches the endpoint coordinates so the refinement loop doesn't index
// back into the cloud for every comparison. Edges are value objects:
// splitting produces two new edges and leaves the original alone.
//
// Two edges are the same edge iff their (I, J) pairs match; coordinates
// never participate in identity. Priority ordering is by squared length
// only.
type Edge[T Float] struct {
	I int
	J int

	PointI Point[T]
	PointJ Point[T]
}

// NewEdge builds an edge from two indices into points.
func NewEdge[T Float](i, j int, points []Point[T]) Edge[T] {
	return Edge[T]{
		I:      i,
		J:      j,
		PointI: points[i],
		PointJ: points[j],
	}
}

// NormSquared is the squared length of the segment. The square root is
// never taken; edges are only ever compared against each other or against
// the squared concavity limit.
func (e Edge[T]) NormSquared() T {
	return e.PointJ.Sub(e.PointI).NormSquared()
}

// SplitBy inserts point (with index idx) in the middle of the edge,
// returning the two halves (I, idx) and (idx, J). Direction is preserved.
func (e Edge[T]) SplitBy(point Point[T], idx int) (Edge[T], Edge[T]) {
	e1 := Edge[T]{
		I:      e.I,
		J:      idx,
		PointI: e.PointI,
		PointJ: point,
	}
	e2 := Edge[T]{
		I:      idx,
		J:      e.J,
		PointI: point,
		PointJ: e.PointJ,
	}
	return e1, e2
}

// SameIndices reports whether two edges denote the same directed segment.
func (e Edge[T]) SameIndices(other Edge[T]) bool {
	return e.I == other.I && e.J == other.J
}
