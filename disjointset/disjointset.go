// Package disjointset implements union-find over a fixed element range.
//
// Elements are dense indices in [0, capacity). The parent-pointer forest
// lives in two parallel pre-allocated arrays (parent and rank), which is the
// structure's own minimal arena: no nodes, no pointers, no allocation after
// construction. Find applies full path compression and Union merges by rank,
// giving the usual near-constant amortized cost.
package disjointset

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/nilheap/fixedcol"
)

// DisjointSets tracks a partition of registered elements into equivalence
// classes.
type DisjointSets struct {
	parent []fixedcol.Index
	rank   []uint8
	made   *bitset.BitSet
	sets   int
}

// New creates a DisjointSets over the element range [0, capacity).
func New(capacity int) *DisjointSets {
	if capacity < 0 {
		capacity = 0
	}
	return &DisjointSets{
		parent: make([]fixedcol.Index, capacity),
		rank:   make([]uint8, capacity),
		made:   bitset.New(uint(capacity)),
	}
}

// MakeSet registers e as a singleton set. Registering an element twice is a
// no-op. Returns *fixedcol.ErrInvalidIndex when e is outside [0, capacity).
func (d *DisjointSets) MakeSet(e fixedcol.Index) error {
	if int(e) >= len(d.parent) {
		return &fixedcol.ErrInvalidIndex{Index: e}
	}
	if d.made.Test(uint(e)) {
		return nil
	}
	d.made.Set(uint(e))
	d.parent[e] = e
	d.rank[e] = 0
	d.sets++
	return nil
}

// Find returns the root of e's set, compressing the path so every element
// visited points directly at the root afterwards. Returns
// *fixedcol.ErrInvalidIndex when e was never registered via MakeSet.
func (d *DisjointSets) Find(e fixedcol.Index) (fixedcol.Index, error) {
	if int(e) >= len(d.parent) || !d.made.Test(uint(e)) {
		return fixedcol.Invalid, &fixedcol.ErrInvalidIndex{Index: e}
	}

	root := e
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// Second pass: rewrite every visited parent to the root.
	for e != root {
		e, d.parent[e] = d.parent[e], root
	}

	return root, nil
}

// Union merges the sets containing a and b, attaching the lower-ranked root
// under the higher-ranked one; on equal rank, b's root goes under a's and a's
// rank grows. It reports false when a and b were already in the same set.
func (d *DisjointSets) Union(a, b fixedcol.Index) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}
	if ra == rb {
		return false, nil
	}

	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}

	d.sets--
	return true, nil
}

// Same reports whether a and b are currently in the same set.
func (d *DisjointSets) Same(a, b fixedcol.Index) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}
	return ra == rb, nil
}

// Count returns the number of registered elements.
func (d *DisjointSets) Count() int { return int(d.made.Count()) }

// Sets returns the current number of disjoint sets.
func (d *DisjointSets) Sets() int { return d.sets }

// Cap returns the fixed element range declared at construction.
func (d *DisjointSets) Cap() int { return len(d.parent) }
