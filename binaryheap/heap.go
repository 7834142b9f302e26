// Package binaryheap implements a fixed-capacity binary heap.
//
// The heap is a complete binary tree flattened into one pre-allocated slice:
// the children of index i live at 2i+1 and 2i+2, so no slot links or arena
// reuse are needed. Ordering is fixed at construction, either min/max over an
// ordered element type or an arbitrary comparator.
package binaryheap

import (
	"cmp"

	"github.com/nilheap/fixedcol"
)

// Heap is an array-backed priority queue over values of type T.
type Heap[T any] struct {
	less  func(a, b T) bool
	items []T
}

// NewMin creates a min-heap: Pop returns the smallest element first.
func NewMin[T cmp.Ordered](capacity int) *Heap[T] {
	return NewFunc(capacity, func(a, b T) bool { return a < b })
}

// NewMax creates a max-heap: Pop returns the largest element first.
func NewMax[T cmp.Ordered](capacity int) *Heap[T] {
	return NewFunc(capacity, func(a, b T) bool { return a > b })
}

// NewFunc creates a heap ordered by the given comparator. less(a, b) must
// report whether a should be popped before b.
func NewFunc[T any](capacity int, less func(a, b T) bool) *Heap[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Heap[T]{
		less:  less,
		items: make([]T, 0, capacity),
	}
}

// Push inserts v while maintaining the heap invariant.
// Returns *fixedcol.ErrCapacityExceeded when the heap is full.
func (h *Heap[T]) Push(v T) error {
	if len(h.items) == cap(h.items) {
		return &fixedcol.ErrCapacityExceeded{Capacity: cap(h.items)}
	}
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
	return nil
}

// Pop removes and returns the extremal element per the configured ordering.
func (h *Heap[T]) Pop() (T, bool) {
	n := len(h.items)
	if n == 0 {
		var zero T
		return zero, false
	}
	root := h.items[0]
	last := h.items[n-1]
	var zero T
	h.items[n-1] = zero // release for GC
	h.items = h.items[:n-1]
	if n-1 > 0 {
		h.items[0] = last
		h.siftDown(0)
	}
	return root, true
}

// Peek returns the extremal element without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Len returns the number of stored elements.
func (h *Heap[T]) Len() int { return len(h.items) }

// Cap returns the fixed capacity declared at construction.
func (h *Heap[T]) Cap() int { return cap(h.items) }

// Reset empties the heap for reuse.
func (h *Heap[T]) Reset() {
	clear(h.items)
	h.items = h.items[:0]
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(h.items[i], h.items[p]) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && h.less(h.items[r], h.items[l]) {
			best = r
		}
		if !h.less(h.items[best], h.items[i]) {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
