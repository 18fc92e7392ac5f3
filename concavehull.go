// Package concavehull computes concave hulls of 2D point clouds.
//
// A concave hull is an ordered polygon boundary around a point cloud that
// is tighter than the convex hull. The algorithm is of the "gift opening"
// family: it starts from the convex hull and greedily opens long edges
// inward by inserting interior points, guarded against degenerate and
// self-intersecting boundaries. How tight the result hugs the cloud is
// controlled by a single concavity parameter.
//
// Hull points are returned in counter-clockwise order (y-up coordinates),
// as (index, point) pairs referring back to the input slice. The ring is
// implicitly closed.
package concavehull

import "github.com/sixfold-origami/concave-hull/internal"

// Float is the scalar constraint for the hull math: any float32 or
// float64 kind. One call uses one precision throughout.
type Float = internal.Float

// Point is an immutable 2D coordinate over the chosen scalar.
type Point[T Float] = internal.Point[T]

// Vec is a displacement between two points.
type Vec[T Float] = internal.Vec[T]

// HullPoint is one vertex of the result: the point's index in the input
// slice along with its value.
type HullPoint[T Float] = internal.HullPoint[T]

// Edge is a directed hull segment identified by its two point indices.
type Edge[T Float] = internal.Edge[T]

// ConcaveHull computes the concave hull of the provided point cloud,
// using the provided concavity parameter.
//
// Concavity ranges over [0, +Inf]: 0 opens every edge as far as the
// guards allow, +Inf returns the convex hull unchanged. The parameter is
// compared against squared coordinate distances, so rescaling the cloud
// requires rescaling the concavity to match. The cloud must contain no
// coincident points; for 0 or 1 input points the output equals the input.
//
// The returned error is non-nil only for broken internal invariants,
// which indicate a defect, not bad user input.
func ConcaveHull[T Float](points []Point[T], concavity T) (result []HullPoint[T], err error) {
	defer func() {
		recoveredErr := internal.HandleConcaveHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.ConcaveHull(points, concavity), nil
}

// ConcaveHullEdges is ConcaveHull without the final ring ordering: it
// returns the hull's directed edges in no particular order. Useful when
// the segments are going straight to a renderer.
func ConcaveHullEdges[T Float](points []Point[T], concavity T) (result []Edge[T], err error) {
	defer func() {
		recoveredErr := internal.HandleConcaveHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.ConcaveHullEdges(points, concavity), nil
}

// ConvexHullIndices exposes the convex hull provider the refinement
// starts from: the indices of the cloud's convex boundary in
// counter-clockwise order. For 0–2 points, the input indices are returned
// in input order.
func ConvexHullIndices[T Float](points []Point[T]) []int {
	return internal.ConvexHullIndices(points)
}
