package internal

// EdgesIntersect checks if the two provided edges geometrically cross.
//
// Identity is decided on indices first: duplicate (I, J) pairs count as
// intersecting (guards accidental re-insertion), while edges that chain at
// a shared endpoint (e1.J == e2.I or e2.J == e1.I) never do, even when
// they are collinear and touch at that point. Everything else falls
// through to the parametric two-segment test.
//
// Assumes distinct indices point to distinct coordinates, per the
// no-duplicate-points contract on the input cloud.
func EdgesIntersect[T Float](e1, e2 Edge[T]) bool {
	if e1.SameIndices(e2) {
		return true
	}
	if e1.I == e2.J || e2.I == e1.J {
		return false
	}

	// https://en.wikipedia.org/wiki/Line%E2%80%93line_intersection#Given_two_points_on_each_line_segment
	a, b := e1.PointI, e1.PointJ
	c, d := e2.PointI, e2.PointJ

	denom := (a.X-b.X)*(c.Y-d.Y) - (a.Y-b.Y)*(c.X-d.X)
	if denom == 0 {
		// Parallel or degenerate segments. With no coincident points and no
		// zero-length edges these cannot properly cross, so report false
		// rather than divide by zero.
		return false
	}

	t := ((a.X-c.X)*(c.Y-d.Y) - (a.Y-c.Y)*(c.X-d.X)) / denom
	u := -((a.X-b.X)*(a.Y-c.Y) - (a.Y-b.Y)*(a.X-c.X)) / denom

	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}
