// Package queue implements a fixed-capacity FIFO queue.
//
// The queue is a ring buffer over one pre-allocated slice, so Enqueue and
// Dequeue are O(1) and never move elements or allocate. Graph breadth-first
// traversal uses it as its frontier.
package queue

import "github.com/nilheap/fixedcol"

// Queue is a first-in-first-out ring buffer.
type Queue[T any] struct {
	items []T
	head  int
	count int
}

// New creates a Queue with room for capacity elements.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{
		items: make([]T, capacity),
	}
}

// Enqueue appends v at the tail.
// Returns *fixedcol.ErrCapacityExceeded when the queue is full.
func (q *Queue[T]) Enqueue(v T) error {
	if q.count == len(q.items) {
		return &fixedcol.ErrCapacityExceeded{Capacity: len(q.items)}
	}
	q.items[(q.head+q.count)%len(q.items)] = v
	q.count++
	return nil
}

// Dequeue removes and returns the head element.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.count == 0 {
		var zero T
		return zero, false
	}
	v := q.items[q.head]
	var zero T
	q.items[q.head] = zero // release for GC
	q.head = (q.head + 1) % len(q.items)
	q.count--
	return v, true
}

// Peek returns the head element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.count == 0 {
		var zero T
		return zero, false
	}
	return q.items[q.head], true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.count }

// Cap returns the fixed capacity declared at construction.
func (q *Queue[T]) Cap() int { return len(q.items) }

// Reset empties the queue for reuse.
func (q *Queue[T]) Reset() {
	clear(q.items)
	q.head = 0
	q.count = 0
}
