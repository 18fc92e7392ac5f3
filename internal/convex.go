package internal

import "sort"

// ConvexHullIndices computes the convex hull of points using Andrew's
// monotone chain, returning the indices of the boundary vertices in
// counter-clockwise order (y-up coordinates). Collinear points along a
// hull edge are dropped; only strict turns survive.
//
// For 0, 1, or 2 points the input indices are returned in input order.
// The tie-break for the lexicographic sort is the point index itself, so
// repeated calls on identical input produce identical output.
func ConvexHullIndices[T Float](points []Point[T]) []int {
	n := len(points)
	if n <= 2 {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}

	// Sort indices lexicographically by (X, Y)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		pa, pb := points[order[a]], points[order[b]]
		if pa.X == pb.X {
			return pa.Y < pb.Y
		}
		return pa.X < pb.X
	})

	var lower []int
	for _, id := range order {
		for len(lower) >= 2 && cross3(points[lower[len(lower)-2]], points[lower[len(lower)-1]], points[id]) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, id)
	}

	var upper []int
	for k := n - 1; k >= 0; k-- {
		id := order[k]
		for len(upper) >= 2 && cross3(points[upper[len(upper)-2]], points[upper[len(upper)-1]], points[id]) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, id)
	}

	// Concatenate the chains, dropping the last point of each (it repeats
	// as the first point of the other).
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// Cross product of OA and OB vectors (O, A, B are points). Positive for a
// counter-clockwise turn.
func cross3[T Float](o, a, b Point[T]) T {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
