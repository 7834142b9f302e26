// Package fixedcol provides classic generic data structures that never
// allocate after construction.
//
// Every container declares a maximum capacity up front, pre-allocates all of
// its backing storage, and manages it through integer slot indices instead of
// pointers. The arena package is the shared substrate: it hands out reusable
// slot indices from a fixed pool, and the linked structures (hash table,
// binary search tree, graph, linked list) store their node links as arena
// indices.
//
// # Packages
//
//   - arena:       fixed-capacity slot store with free-list reuse
//   - hashtable:   separate-chaining hash table
//   - bst:         binary search tree with ordered iteration
//   - disjointset: union-find with path compression and union by rank
//   - graph:       adjacency-list graph with BFS/DFS traversal
//   - binaryheap:  array-backed min/max/custom-order heap
//   - stack, queue, vector, list: linear fixed-capacity containers
//   - box:         single-value container
//   - calc:        infix expression calculator built on stack and queue
//
// # Error model
//
// Allocating operations fail with *ErrCapacityExceeded once the
// construction-time bound is reached. Operations taking an index fail with
// *ErrInvalidIndex when the index is out of range or refers to a freed slot.
// Looking up a missing key is not an error; those operations return a
// (value, ok) pair.
//
// # Concurrency
//
// All containers assume exclusive, sequential access by a single owner.
// There is no internal locking.
package fixedcol
