package internal

import goheap "container/heap"

// edgeHeap is a max-priority-queue of pending edges keyed on squared
// length, so the longest edge is always popped first. Ties between
// equal-length edges surface in container/heap order, which is arbitrary
// but deterministic for a given push sequence.
type edgeHeap[T Float] struct {
	inner sortableEdges[T]
}

func newEdgeHeap[T Float](capacity int) *edgeHeap[T] {
	return &edgeHeap[T]{inner: make(sortableEdges[T], 0, capacity)}
}

func (h *edgeHeap[T]) Len() int {
	return len(h.inner)
}

func (h *edgeHeap[T]) Push(e Edge[T]) {
	goheap.Push(&h.inner, e)
}

func (h *edgeHeap[T]) Pop() Edge[T] {
	return goheap.Pop(&h.inner).(Edge[T])
}

// Values exposes the backing slice in heap order. The refinement loop
// sweeps it when checking tentative splits for intersections against
// still-pending edges.
func (h *edgeHeap[T]) Values() []Edge[T] {
	return h.inner
}

// sortableEdges implements heap.Interface with inverted Less, making the
// wrapper a max-heap.
type sortableEdges[T Float] []Edge[T]

func (s sortableEdges[T]) Len() int { return len(s) }

func (s sortableEdges[T]) Less(i, j int) bool {
	return s[i].NormSquared() > s[j].NormSquared()
}

func (s sortableEdges[T]) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

func (s *sortableEdges[T]) Push(x any) {
	*s = append(*s, x.(Edge[T]))
}

func (s *sortableEdges[T]) Pop() any {
	n := len(*s)
	e := (*s)[n-1]
	*s = (*s)[:n-1]
	return e
}
