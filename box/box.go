// Package box implements a single-value container.
//
// A Box holds exactly one value of type T. Take moves the value out and
// leaves the box empty, after which Get and Take fail until Set refills it.
// The empty state makes "use after move" an explicit, checkable error rather
// than silent reuse of a stale value.
package box

import "errors"

// ErrEmpty is returned by Get and Take when the value was already taken.
var ErrEmpty = errors.New("box: empty")

// Box stores a single value of type T.
type Box[T any] struct {
	value    T
	occupied bool
}

// New creates a Box holding value.
func New[T any](value T) *Box[T] {
	return &Box[T]{value: value, occupied: true}
}

// Get returns a pointer to the stored value.
func (b *Box[T]) Get() (*T, error) {
	if !b.occupied {
		return nil, ErrEmpty
	}
	return &b.value, nil
}

// Set stores value, refilling the box if it was empty.
func (b *Box[T]) Set(value T) {
	b.value = value
	b.occupied = true
}

// Take moves the value out and empties the box.
func (b *Box[T]) Take() (T, error) {
	if !b.occupied {
		var zero T
		return zero, ErrEmpty
	}
	v := b.value
	var zero T
	b.value = zero
	b.occupied = false
	return v, nil
}

// Empty reports whether the value has been taken.
func (b *Box[T]) Empty() bool { return !b.occupied }
