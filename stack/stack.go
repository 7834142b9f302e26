// Package stack implements a fixed-capacity LIFO stack.
package stack

import "github.com/nilheap/fixedcol"

// Stack is a last-in-first-out container backed by one pre-allocated slice.
type Stack[T any] struct {
	items []T
}

// New creates a Stack with room for capacity elements.
func New[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack[T]{
		items: make([]T, 0, capacity),
	}
}

// Push places v on top of the stack.
// Returns *fixedcol.ErrCapacityExceeded when the stack is full.
func (s *Stack[T]) Push(v T) error {
	if len(s.items) == cap(s.items) {
		return &fixedcol.ErrCapacityExceeded{Capacity: cap(s.items)}
	}
	s.items = append(s.items, v)
	return nil
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, bool) {
	n := len(s.items)
	if n == 0 {
		var zero T
		return zero, false
	}
	v := s.items[n-1]
	var zero T
	s.items[n-1] = zero // release for GC
	s.items = s.items[:n-1]
	return v, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// Cap returns the fixed capacity declared at construction.
func (s *Stack[T]) Cap() int { return cap(s.items) }

// Reset empties the stack for reuse.
func (s *Stack[T]) Reset() {
	clear(s.items)
	s.items = s.items[:0]
}
