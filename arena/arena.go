package arena

import (
	"fmt"
	"iter"

	"github.com/nilheap/fixedcol"
)

// Stats tracks arena slot usage.
//
// Allocs and Frees are historical counters; InUse and HighWater describe the
// current state. HighWater is the number of slots ever touched, which never
// decreases while reuse through the free list keeps InUse low.
type Stats struct {
	Allocs    uint64
	Frees     uint64
	InUse     int
	HighWater int
}

// slot is one arena cell. While free, nextFree chains it into the free list;
// while occupied, nextFree is Invalid and value holds the element.
type slot[T any] struct {
	value    T
	nextFree fixedcol.Index
	occupied bool
}

// Arena is a fixed-capacity slot store for values of type T.
//
// All storage is allocated by New; Alloc and Free only move slots between the
// occupied state and the free list.
type Arena[T any] struct {
	slots    []slot[T]
	freeHead fixedcol.Index
	next     int // first never-used slot
	inUse    int
	allocs   uint64
	frees    uint64
}

// New creates an Arena with room for capacity values. A non-positive
// capacity yields an arena that rejects every Alloc.
func New[T any](capacity int) *Arena[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena[T]{
		slots:    make([]slot[T], capacity),
		freeHead: fixedcol.Invalid,
	}
}

// Alloc stores value in a free slot and returns its index.
// It pops the free list head if one exists, otherwise takes the next
// never-used slot. Returns *fixedcol.ErrCapacityExceeded when every slot is
// occupied.
func (a *Arena[T]) Alloc(value T) (fixedcol.Index, error) {
	var i fixedcol.Index

	switch {
	case a.freeHead != fixedcol.Invalid:
		i = a.freeHead
		a.freeHead = a.slots[i].nextFree
	case a.next < len(a.slots):
		i = fixedcol.Index(a.next)
		a.next++
	default:
		return fixedcol.Invalid, &fixedcol.ErrCapacityExceeded{Capacity: len(a.slots)}
	}

	s := &a.slots[i]
	s.value = value
	s.nextFree = fixedcol.Invalid
	s.occupied = true

	a.inUse++
	a.allocs++

	return i, nil
}

// Free releases the slot at i back onto the free list. The stored value is
// zeroed so it no longer pins anything it references. Freeing a slot that is
// out of range or already free returns *fixedcol.ErrInvalidIndex.
func (a *Arena[T]) Free(i fixedcol.Index) error {
	s, err := a.lookup(i)
	if err != nil {
		return err
	}

	var zero T
	s.value = zero
	s.occupied = false
	s.nextFree = a.freeHead
	a.freeHead = i

	a.inUse--
	a.frees++

	return nil
}

// Get returns a pointer to the value stored at i. The pointer stays valid
// until the slot is freed.
func (a *Arena[T]) Get(i fixedcol.Index) (*T, error) {
	s, err := a.lookup(i)
	if err != nil {
		return nil, err
	}
	return &s.value, nil
}

// Contains reports whether i refers to an occupied slot.
func (a *Arena[T]) Contains(i fixedcol.Index) bool {
	return int(i) < len(a.slots) && a.slots[i].occupied
}

// Len returns the number of occupied slots.
func (a *Arena[T]) Len() int { return a.inUse }

// Cap returns the fixed capacity declared at construction.
func (a *Arena[T]) Cap() int { return len(a.slots) }

// Stats returns a snapshot of the usage counters.
func (a *Arena[T]) Stats() Stats {
	return Stats{
		Allocs:    a.allocs,
		Frees:     a.frees,
		InUse:     a.inUse,
		HighWater: a.next,
	}
}

// Reset frees every slot at once. Historical counters are preserved; all
// previously returned indices become invalid.
func (a *Arena[T]) Reset() {
	clear(a.slots)
	a.freeHead = fixedcol.Invalid
	a.next = 0
	a.inUse = 0
}

// Indices returns an iterator over the indices of all occupied slots, in
// ascending order. The arena must not be mutated while iterating.
func (a *Arena[T]) Indices() iter.Seq[fixedcol.Index] {
	return func(yield func(fixedcol.Index) bool) {
		for i := 0; i < a.next; i++ {
			if !a.slots[i].occupied {
				continue
			}
			if !yield(fixedcol.Index(i)) {
				return
			}
		}
	}
}

func (a *Arena[T]) lookup(i fixedcol.Index) (*slot[T], error) {
	if int(i) >= len(a.slots) {
		return nil, &fixedcol.ErrInvalidIndex{Index: i}
	}
	s := &a.slots[i]
	if !s.occupied {
		return nil, &fixedcol.ErrInvalidIndex{Index: i}
	}
	return s, nil
}

func (a *Arena[T]) String() string {
	return fmt.Sprintf("Arena{cap: %d, in use: %d, high water: %d, allocs: %d, frees: %d}",
		len(a.slots), a.inUse, a.next, a.allocs, a.frees)
}
