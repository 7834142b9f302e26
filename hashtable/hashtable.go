// Package hashtable implements a fixed-capacity hash table with separate
// chaining.
//
// Entries live in an arena; each bucket holds the index of its chain head and
// entries link to the next chain member by index. The bucket count and the
// entry capacity are both fixed at construction: there is no rehashing, and
// load factor is whatever the caller configured.
package hashtable

import (
	"hash/maphash"
	"iter"

	"github.com/nilheap/fixedcol"
	"github.com/nilheap/fixedcol/arena"
)

type entry[K comparable, V any] struct {
	key   K
	value V
	next  fixedcol.Index
}

// Table maps keys to values without allocating after construction.
type Table[K comparable, V any] struct {
	seed    maphash.Seed
	buckets []fixedcol.Index
	entries *arena.Arena[entry[K, V]]
}

type options struct {
	bucketCount int
}

// Option configures a Table at construction.
type Option func(*options)

// WithBucketCount overrides the number of buckets. The default equals the
// entry capacity, giving an expected load factor of one.
func WithBucketCount(n int) Option {
	return func(o *options) {
		o.bucketCount = n
	}
}

// New creates a Table with room for capacity entries.
func New[K comparable, V any](capacity int, optFns ...Option) *Table[K, V] {
	if capacity < 0 {
		capacity = 0
	}

	o := options{bucketCount: capacity}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.bucketCount < 1 {
		o.bucketCount = 1
	}

	buckets := make([]fixedcol.Index, o.bucketCount)
	for i := range buckets {
		buckets[i] = fixedcol.Invalid
	}

	return &Table[K, V]{
		seed:    maphash.MakeSeed(),
		buckets: buckets,
		entries: arena.New[entry[K, V]](capacity),
	}
}

// Insert maps key to value. An existing key is overwritten in place and its
// previous value returned with replaced=true; no slot is consumed. A new key
// prepends an entry to its bucket chain and fails with
// *fixedcol.ErrCapacityExceeded when the entry arena is full.
func (t *Table[K, V]) Insert(key K, value V) (old V, replaced bool, err error) {
	b := t.bucket(key)

	for i := t.buckets[b]; i != fixedcol.Invalid; {
		e, _ := t.entries.Get(i)
		if e.key == key {
			old = e.value
			e.value = value
			return old, true, nil
		}
		i = e.next
	}

	i, err := t.entries.Alloc(entry[K, V]{key: key, value: value, next: t.buckets[b]})
	if err != nil {
		var zero V
		return zero, false, err
	}
	t.buckets[b] = i

	var zero V
	return zero, false, nil
}

// Get returns the value mapped to key.
func (t *Table[K, V]) Get(key K) (V, bool) {
	for i := t.buckets[t.bucket(key)]; i != fixedcol.Invalid; {
		e, _ := t.entries.Get(i)
		if e.key == key {
			return e.value, true
		}
		i = e.next
	}
	var zero V
	return zero, false
}

// Remove deletes key, unlinking its entry from the bucket chain and freeing
// the arena slot. A missing key returns (zero, false).
func (t *Table[K, V]) Remove(key K) (V, bool) {
	b := t.bucket(key)

	prev := fixedcol.Invalid
	for i := t.buckets[b]; i != fixedcol.Invalid; {
		e, _ := t.entries.Get(i)
		if e.key == key {
			if prev == fixedcol.Invalid {
				t.buckets[b] = e.next
			} else {
				p, _ := t.entries.Get(prev)
				p.next = e.next
			}
			v := e.value
			_ = t.entries.Free(i)
			return v, true
		}
		prev = i
		i = e.next
	}

	var zero V
	return zero, false
}

// Len returns the number of stored entries.
func (t *Table[K, V]) Len() int { return t.entries.Len() }

// Cap returns the fixed entry capacity declared at construction.
func (t *Table[K, V]) Cap() int { return t.entries.Cap() }

// All returns an iterator over every (key, value) pair, in bucket order.
// The table must not be mutated while iterating.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, head := range t.buckets {
			for i := head; i != fixedcol.Invalid; {
				e, err := t.entries.Get(i)
				if err != nil {
					return
				}
				if !yield(e.key, e.value) {
					return
				}
				i = e.next
			}
		}
	}
}

func (t *Table[K, V]) bucket(key K) int {
	return int(maphash.Comparable(t.seed, key) % uint64(len(t.buckets)))
}
