// Package arena provides the fixed-capacity slot store that backs every
// linked structure in fixedcol.
//
// An Arena owns a pre-allocated array of slots and hands out integer indices
// instead of pointers. Freed slots are chained into a free list through a
// next-free field embedded in the slot itself, so reuse is O(1) and the arena
// never allocates after construction.
//
// # Index validity
//
// Indices returned by Alloc are weak references: they stay valid until the
// slot is freed, and a later Alloc may hand the same index out again for a
// different value. Get and Free reject out-of-range and freed indices with
// *fixedcol.ErrInvalidIndex rather than panicking.
package arena
