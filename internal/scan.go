package internal

// splitScan abstracts the two searches the refinement loop runs for every
// edge it tries to open: picking the best interior candidate, and sweeping
// the existing edges for intersections with a tentative split. Both are
// plain linear scans today; a spatial index could slot in behind this
// interface later without changing observable behavior.
type splitScan[T Float] interface {
	// bestCandidate returns the index and value of the point that opens
	// edge with the smallest maximum angle, skipping the edge's own
	// endpoints. ok is false when the cloud holds no eligible point at all.
	bestCandidate(points []Point[T], edge Edge[T]) (idx int, p Point[T], ok bool)

	// anyConflict reports whether e1 or e2 intersects any finalized or
	// still-pending edge.
	anyConflict(e1, e2 Edge[T], finalized, pending []Edge[T]) bool
}

type linearScan[T Float] struct{}

func (linearScan[T]) bestCandidate(points []Point[T], edge Edge[T]) (int, Point[T], bool) {
	dir := edge.PointJ.Sub(edge.PointI)

	bestIdx := -1
	var bestPoint Point[T]
	var bestAngle T
	for i, p := range points {
		if i == edge.I || i == edge.J {
			// Do not consider points that are already on the edge
			continue
		}

		// Score the point by the wider of the two angles its insertion
		// would open at the edge's endpoints. Strict less-than keeps the
		// first point encountered on ties.
		angle := max(dir.Angle(p.Sub(edge.PointI)), dir.Angle(edge.PointJ.Sub(p)))
		if bestIdx < 0 || angle < bestAngle {
			bestIdx = i
			bestPoint = p
			bestAngle = angle
		}
	}

	if bestIdx < 0 {
		return 0, Point[T]{}, false
	}
	return bestIdx, bestPoint, true
}

func (linearScan[T]) anyConflict(e1, e2 Edge[T], finalized, pending []Edge[T]) bool {
	for _, existing := range finalized {
		if EdgesIntersect(existing, e1) || EdgesIntersect(existing, e2) {
			return true
		}
	}
	for _, existing := range pending {
		if EdgesIntersect(existing, e1) || EdgesIntersect(existing, e2) {
			return true
		}
	}
	return false
}
