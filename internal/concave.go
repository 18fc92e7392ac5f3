package internal

// ConcaveHull computes the concave hull of the point cloud for the given
// concavity parameter, returning the boundary as (index, point) pairs in
// counter-clockwise order. The ring is implicitly closed: the last point
// connects back to the first.
//
// Concavity is in [0, +Inf]. Zero opens every edge as far as the
// degeneracy and intersection guards allow; +Inf never opens anything, so
// the result equals the convex hull. The threshold is compared against
// squared coordinate distances, so it is not scale-invariant.
//
// Panics with a HullError on broken internal invariants; the public
// wrapper converts those into returned errors.
func ConcaveHull[T Float](points []Point[T], concavity T) []HullPoint[T] {
	if len(points) <= 2 {
		// Nothing to refine; the cloud is its own boundary.
		out := make([]HullPoint[T], len(points))
		for i, p := range points {
			out[i] = HullPoint[T]{Index: i, Point: p}
		}
		return out
	}
	return concaveHullInner(points, concavity, ConvexHullIndices(points))
}

// ConcaveHullEdges is ConcaveHull stopped before reconstruction: it
// returns the finalized directed edge set in no particular order. Mostly
// useful for rendering the hull segments directly.
func ConcaveHullEdges[T Float](points []Point[T], concavity T) []Edge[T] {
	if len(points) <= 2 {
		return nil
	}
	convex := ConvexHullIndices(points)
	if len(points) <= 3 {
		edges := make([]Edge[T], 0, len(convex))
		for id := range convex {
			edges = append(edges, NewEdge(convex[id], convex[(id+1)%len(convex)], points))
		}
		return edges
	}
	b := newBuilder(points, convex)
	b.refine(concavity * concavity)
	return b.final
}

func concaveHullInner[T Float](points []Point[T], concavity T, convex []int) []HullPoint[T] {
	if len(points) <= 3 {
		// Degenerate case with enough points for a convex hull, but too few
		// for any meaningful concavity. Return the convex ordering as is.
		out := make([]HullPoint[T], len(convex))
		for k, id := range convex {
			out[k] = HullPoint[T]{Index: id, Point: points[id]}
		}
		return out
	}

	b := newBuilder(points, convex)
	// Square the concavity limit once so the loop compares squared lengths
	// directly.
	b.refine(concavity * concavity)
	return b.reconstruct()
}

// builder owns all state for one hull computation: the pending max-heap,
// the permanently claimed boundary indices, and the finalized edges. Each
// call builds its own, so separate clouds can be processed on separate
// goroutines; within one call the loop is strictly sequential, since every
// split decision depends on everything committed before it.
type builder[T Float] struct {
	points   []Point[T]
	scan     splitScan[T]
	pending  *edgeHeap[T]
	boundary IndexSet
	final    []Edge[T]
}

func newBuilder[T Float](points []Point[T], convex []int) *builder[T] {
	b := &builder[T]{
		points:   points,
		scan:     linearScan[T]{},
		pending:  newEdgeHeap[T](len(convex)),
		boundary: make(IndexSet, len(convex)),
		final:    make([]Edge[T], 0, len(convex)),
	}

	// Heap up the convex ring and claim its vertices.
	for id := range convex {
		i := convex[id]
		j := convex[(id+1)%len(convex)]

		b.boundary.Add(i)
		b.pending.Push(NewEdge(i, j, points))
	}
	return b
}

// refine runs the greedy gift-opening loop. limit is the squared concavity
// threshold.
//
// Termination: every committed split permanently claims one previously
// uncommitted point, and every other branch shrinks the heap by one, so
// the loop is bounded by the interior point count.
func (b *builder[T]) refine(limit T) {
	for b.pending.Len() > 0 {
		edge := b.pending.Pop()

		if edge.NormSquared() <= limit {
			b.accept(edge)
			continue
		}

		// This edge is long enough that we should try to open it.
		idx, point, ok := b.scan.bestCandidate(b.points, edge)
		if !ok {
			// Unreachable given the ≤3-point fast path: the cloud must hold
			// a point besides the edge's own two endpoints.
			fatalf("no split candidate for edge %d→%d", edge.I, edge.J)
		}

		if b.boundary.Has(idx) {
			// The best candidate is already on the boundary; opening here
			// would pinch the polygon into itself.
			traceEdge("pinned", redTrace, edge)
			b.accept(edge)
			continue
		}

		e1, e2 := edge.SplitBy(point, idx)
		if b.scan.anyConflict(e1, e2, b.final, b.pending.Values()) {
			// Opening would self-intersect the polygon.
			traceEdge("crossed", redTrace, edge)
			b.accept(edge)
			continue
		}

		traceEdge("split", cyanTrace, edge)
		b.pending.Push(e1)
		b.pending.Push(e2)
		b.boundary.Add(idx)
	}
}

func (b *builder[T]) accept(edge Edge[T]) {
	traceEdge("accept", greenTrace, edge)
	b.final = append(b.final, edge)
}

// reconstruct stitches the finalized edge set end to end into one ordered
// ring. The start edge is arbitrary; callers needing a canonical rotation
// can rotate the result.
func (b *builder[T]) reconstruct() []HullPoint[T] {
	remaining := b.final
	if len(remaining) == 0 {
		fatalf("concave hull has no finalized edges")
	}

	sorted := make([]HullPoint[T], 0, len(remaining))
	curr := remaining[len(remaining)-1]
	remaining = remaining[:len(remaining)-1]

	for len(remaining) > 0 {
		// Walk the indices, grabbing edges in order.
		next := -1
		for k, e := range remaining {
			if e.I == curr.J {
				next = k
				break
			}
		}
		if next < 0 {
			fatalf("broken hull cycle: no edge continues from point %d", curr.J)
		}

		sorted = append(sorted, HullPoint[T]{Index: curr.I, Point: curr.PointI})
		curr, remaining[next] = remaining[next], remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}
	sorted = append(sorted, HullPoint[T]{Index: curr.I, Point: curr.PointI})

	return sorted
}
