// Package list implements a singly linked list stored in arena slots.
//
// Nodes link to each other through arena indices rather than pointers, which
// keeps the whole list inside one pre-allocated block and makes node reuse
// after removal O(1) via the arena free list.
package list

import (
	"iter"

	"github.com/nilheap/fixedcol"
	"github.com/nilheap/fixedcol/arena"
)

type node[T any] struct {
	value T
	next  fixedcol.Index
}

// List is a fixed-capacity singly linked list.
type List[T any] struct {
	nodes *arena.Arena[node[T]]
	head  fixedcol.Index
	tail  fixedcol.Index
}

// New creates a List with room for capacity elements.
func New[T any](capacity int) *List[T] {
	return &List[T]{
		nodes: arena.New[node[T]](capacity),
		head:  fixedcol.Invalid,
		tail:  fixedcol.Invalid,
	}
}

// PushFront inserts v at the head of the list.
// Returns *fixedcol.ErrCapacityExceeded when the list is full.
func (l *List[T]) PushFront(v T) error {
	i, err := l.nodes.Alloc(node[T]{value: v, next: l.head})
	if err != nil {
		return err
	}
	l.head = i
	if l.tail == fixedcol.Invalid {
		l.tail = i
	}
	return nil
}

// PushBack appends v at the tail of the list.
// Returns *fixedcol.ErrCapacityExceeded when the list is full.
func (l *List[T]) PushBack(v T) error {
	i, err := l.nodes.Alloc(node[T]{value: v, next: fixedcol.Invalid})
	if err != nil {
		return err
	}
	if l.tail == fixedcol.Invalid {
		l.head = i
	} else {
		prev, _ := l.nodes.Get(l.tail)
		prev.next = i
	}
	l.tail = i
	return nil
}

// PopFront removes and returns the head element, freeing its slot.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == fixedcol.Invalid {
		var zero T
		return zero, false
	}
	n, _ := l.nodes.Get(l.head)
	v := n.value
	next := n.next

	_ = l.nodes.Free(l.head)
	l.head = next
	if l.head == fixedcol.Invalid {
		l.tail = fixedcol.Invalid
	}
	return v, true
}

// Front returns the head element without removing it.
func (l *List[T]) Front() (T, bool) {
	if l.head == fixedcol.Invalid {
		var zero T
		return zero, false
	}
	n, _ := l.nodes.Get(l.head)
	return n.value, true
}

// Len returns the number of stored elements.
func (l *List[T]) Len() int { return l.nodes.Len() }

// Cap returns the fixed capacity declared at construction.
func (l *List[T]) Cap() int { return l.nodes.Cap() }

// All returns a head-to-tail iterator over the elements. The list must not
// be mutated while iterating.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.head; i != fixedcol.Invalid; {
			n, err := l.nodes.Get(i)
			if err != nil {
				return
			}
			if !yield(n.value) {
				return
			}
			i = n.next
		}
	}
}
