package internal

import "math"

// Float is the scalar type the hull math runs on. The whole algorithm is
// generic over it, so f32 and f64 clouds share one implementation.
type Float interface {
	~float32 | ~float64
}

// Point is an immutable 2D coordinate. Points are owned by the caller for
// the lifetime of a call and are never mutated; identity throughout the
// algorithm is the point's index in the caller's slice, never its value.
type Point[T Float] struct {
	X T
	Y T
}

// Vec is a displacement between two points.
type Vec[T Float] struct {
	X T
	Y T
}

func (p Point[T]) Sub(q Point[T]) Vec[T] {
	return Vec[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

func (v Vec[T]) Dot(w Vec[T]) T {
	return v.X*w.X + v.Y*w.Y
}

func (v Vec[T]) NormSquared() T {
	return v.X*v.X + v.Y*v.Y
}

// Angle returns the unsigned angle between v and w in radians, in [0, π].
// Zero vectors yield 0 rather than NaN.
func (v Vec[T]) Angle(w Vec[T]) T {
	n := math.Sqrt(float64(v.NormSquared()) * float64(w.NormSquared()))
	if n == 0 {
		return 0
	}
	c := float64(v.Dot(w)) / n
	// Clamp against float error pushing the cosine out of acos's domain.
	c = math.Max(-1, math.Min(1, c))
	return T(math.Acos(c))
}

// HullPoint is one vertex of the result ring: the point's index in the
// input slice together with its value.
type HullPoint[T Float] struct {
	Index int
	Point Point[T]
}

// IndexSet tracks point indices already committed to the hull boundary.
// Membership is permanent; an index is never removed once added.
type IndexSet map[int]struct{}

func (s IndexSet) Add(i int) {
	s[i] = struct{}{}
}

func (s IndexSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}
