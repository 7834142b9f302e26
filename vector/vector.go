// Package vector implements a fixed-capacity dynamic array.
package vector

import (
	"iter"

	"github.com/nilheap/fixedcol"
)

// Vector is a contiguous, index-addressable sequence with a construction-time
// capacity bound. Positional operations shift elements in place; nothing ever
// reallocates.
type Vector[T any] struct {
	items []T
}

// New creates a Vector with room for capacity elements.
func New[T any](capacity int) *Vector[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Vector[T]{
		items: make([]T, 0, capacity),
	}
}

// Push appends v at the end.
// Returns *fixedcol.ErrCapacityExceeded when the vector is full.
func (v *Vector[T]) Push(val T) error {
	if len(v.items) == cap(v.items) {
		return &fixedcol.ErrCapacityExceeded{Capacity: cap(v.items)}
	}
	v.items = append(v.items, val)
	return nil
}

// Pop removes and returns the last element.
func (v *Vector[T]) Pop() (T, bool) {
	n := len(v.items)
	if n == 0 {
		var zero T
		return zero, false
	}
	val := v.items[n-1]
	var zero T
	v.items[n-1] = zero
	v.items = v.items[:n-1]
	return val, true
}

// Get returns a pointer to the element at position i.
func (v *Vector[T]) Get(i int) (*T, error) {
	if i < 0 || i >= len(v.items) {
		return nil, &fixedcol.ErrInvalidIndex{Index: fixedcol.Index(uint32(i))}
	}
	return &v.items[i], nil
}

// Set overwrites the element at position i.
func (v *Vector[T]) Set(i int, val T) error {
	if i < 0 || i >= len(v.items) {
		return &fixedcol.ErrInvalidIndex{Index: fixedcol.Index(uint32(i))}
	}
	v.items[i] = val
	return nil
}

// Insert places val at position i, shifting later elements right.
// Inserting at i == Len appends.
func (v *Vector[T]) Insert(i int, val T) error {
	if i < 0 || i > len(v.items) {
		return &fixedcol.ErrInvalidIndex{Index: fixedcol.Index(uint32(i))}
	}
	if len(v.items) == cap(v.items) {
		return &fixedcol.ErrCapacityExceeded{Capacity: cap(v.items)}
	}
	var zero T
	v.items = append(v.items, zero)
	copy(v.items[i+1:], v.items[i:])
	v.items[i] = val
	return nil
}

// RemoveAt removes and returns the element at position i, shifting later
// elements left.
func (v *Vector[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= len(v.items) {
		var zero T
		return zero, &fixedcol.ErrInvalidIndex{Index: fixedcol.Index(uint32(i))}
	}
	val := v.items[i]
	copy(v.items[i:], v.items[i+1:])
	n := len(v.items)
	var zero T
	v.items[n-1] = zero
	v.items = v.items[:n-1]
	return val, nil
}

// Len returns the number of stored elements.
func (v *Vector[T]) Len() int { return len(v.items) }

// Cap returns the fixed capacity declared at construction.
func (v *Vector[T]) Cap() int { return cap(v.items) }

// All returns a position-ordered iterator over the elements.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, val := range v.items {
			if !yield(i, val) {
				return
			}
		}
	}
}
