package graph

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
	"github.com/nilheap/fixedcol"
	"github.com/nilheap/fixedcol/arena"
	"github.com/nilheap/fixedcol/queue"
	"github.com/nilheap/fixedcol/stack"
)

type vertex[T any] struct {
	payload   T
	firstEdge fixedcol.Index
	lastEdge  fixedcol.Index
}

type edge struct {
	to     fixedcol.Index
	next   fixedcol.Index
	weight float64
}

// Graph holds vertices with arbitrary payloads and weighted edges between
// them. Vertex indices are stable from AddVertex until RemoveVertex.
type Graph[T any] struct {
	directed bool
	vertices *arena.Arena[vertex[T]]
	edges    *arena.Arena[edge]

	// Traversal scratch, pre-allocated and reused. One traversal at a time.
	visited  *bitset.BitSet
	frontier *queue.Queue[fixedcol.Index]
	cursors  *stack.Stack[cursor]
}

type options struct {
	directed     bool
	edgeCapacity int
}

// Option configures a Graph at construction.
type Option func(*options)

// WithDirected selects directed (true) or undirected (false) edges.
// The default is undirected.
func WithDirected(directed bool) Option {
	return func(o *options) {
		o.directed = directed
	}
}

// WithEdgeCapacity overrides the edge slot capacity. The default is four
// slots per vertex. An undirected logical edge consumes two slots.
func WithEdgeCapacity(n int) Option {
	return func(o *options) {
		o.edgeCapacity = n
	}
}

// New creates a Graph with room for capacity vertices.
func New[T any](capacity int, optFns ...Option) *Graph[T] {
	if capacity < 0 {
		capacity = 0
	}

	o := options{edgeCapacity: 4 * capacity}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.edgeCapacity < 0 {
		o.edgeCapacity = 0
	}

	return &Graph[T]{
		directed: o.directed,
		vertices: arena.New[vertex[T]](capacity),
		edges:    arena.New[edge](o.edgeCapacity),
		visited:  bitset.New(uint(capacity)),
		frontier: queue.New[fixedcol.Index](capacity),
		cursors:  stack.New[cursor](capacity),
	}
}

// Directed reports whether edges are directed.
func (g *Graph[T]) Directed() bool { return g.directed }

// AddVertex stores payload in a new vertex and returns its index.
// Returns *fixedcol.ErrCapacityExceeded when the vertex arena is full.
func (g *Graph[T]) AddVertex(payload T) (fixedcol.Index, error) {
	return g.vertices.Alloc(vertex[T]{
		payload:   payload,
		firstEdge: fixedcol.Invalid,
		lastEdge:  fixedcol.Invalid,
	})
}

// Payload returns a pointer to the payload of vertex i.
func (g *Graph[T]) Payload(i fixedcol.Index) (*T, error) {
	v, err := g.vertices.Get(i)
	if err != nil {
		return nil, err
	}
	return &v.payload, nil
}

// AddEdge connects from to to with the given weight. On an undirected graph
// both directions are inserted, and the required edge slots are reserved up
// front so the insertion is all-or-nothing. Returns *fixedcol.ErrInvalidIndex
// for an unknown vertex and *fixedcol.ErrCapacityExceeded when the edge arena
// cannot hold the new edge(s).
func (g *Graph[T]) AddEdge(from, to fixedcol.Index, weight float64) error {
	if !g.vertices.Contains(from) {
		return &fixedcol.ErrInvalidIndex{Index: from}
	}
	if !g.vertices.Contains(to) {
		return &fixedcol.ErrInvalidIndex{Index: to}
	}

	need := 1
	if !g.directed {
		need = 2
	}
	if g.edges.Cap()-g.edges.Len() < need {
		return &fixedcol.ErrCapacityExceeded{Capacity: g.edges.Cap()}
	}

	g.appendEdge(from, to, weight)
	if !g.directed {
		g.appendEdge(to, from, weight)
	}
	return nil
}

// RemoveEdge deletes the edge from->to (and to->from on an undirected graph),
// reporting whether an edge was removed. Parallel edges are removed one at a
// time, oldest first.
func (g *Graph[T]) RemoveEdge(from, to fixedcol.Index) (bool, error) {
	if !g.vertices.Contains(from) {
		return false, &fixedcol.ErrInvalidIndex{Index: from}
	}
	if !g.vertices.Contains(to) {
		return false, &fixedcol.ErrInvalidIndex{Index: to}
	}

	removed := g.unlinkFirst(from, to)
	if !g.directed && removed {
		g.unlinkFirst(to, from)
	}
	return removed, nil
}

// RemoveVertex deletes vertex i, freeing its outgoing edge list and unlinking
// every edge that targets it from the remaining vertices.
func (g *Graph[T]) RemoveVertex(i fixedcol.Index) error {
	v, err := g.vertices.Get(i)
	if err != nil {
		return err
	}

	for e := v.firstEdge; e != fixedcol.Invalid; {
		en, _ := g.edges.Get(e)
		next := en.next
		_ = g.edges.Free(e)
		e = next
	}

	for j := range g.vertices.Indices() {
		if j == i {
			continue
		}
		g.unlinkAll(j, i)
	}

	return g.vertices.Free(i)
}

// Neighbors returns an iterator over (target, weight) pairs of the edges
// leaving i, in edge insertion order. The graph must not be mutated while
// iterating.
func (g *Graph[T]) Neighbors(i fixedcol.Index) (iter.Seq2[fixedcol.Index, float64], error) {
	if !g.vertices.Contains(i) {
		return nil, &fixedcol.ErrInvalidIndex{Index: i}
	}
	return func(yield func(fixedcol.Index, float64) bool) {
		v, err := g.vertices.Get(i)
		if err != nil {
			return
		}
		for e := v.firstEdge; e != fixedcol.Invalid; {
			en, err := g.edges.Get(e)
			if err != nil {
				return
			}
			if !yield(en.to, en.weight) {
				return
			}
			e = en.next
		}
	}, nil
}

// Vertices returns an iterator over all live vertex indices, in ascending
// order.
func (g *Graph[T]) Vertices() iter.Seq[fixedcol.Index] {
	return g.vertices.Indices()
}

// Order returns the number of live vertices.
func (g *Graph[T]) Order() int { return g.vertices.Len() }

// Size returns the number of logical edges. On an undirected graph the two
// stored directions count as one edge.
func (g *Graph[T]) Size() int {
	if g.directed {
		return g.edges.Len()
	}
	return g.edges.Len() / 2
}

// appendEdge links a new edge slot at the tail of from's adjacency chain.
// Capacity was checked by the caller.
func (g *Graph[T]) appendEdge(from, to fixedcol.Index, weight float64) {
	e, _ := g.edges.Alloc(edge{to: to, next: fixedcol.Invalid, weight: weight})
	v, _ := g.vertices.Get(from)
	if v.lastEdge == fixedcol.Invalid {
		v.firstEdge = e
	} else {
		last, _ := g.edges.Get(v.lastEdge)
		last.next = e
	}
	v.lastEdge = e
}

// unlinkFirst removes the oldest from->to edge, reporting whether one existed.
func (g *Graph[T]) unlinkFirst(from, to fixedcol.Index) bool {
	return g.unlink(from, to, true)
}

// unlinkAll removes every from->to edge.
func (g *Graph[T]) unlinkAll(from, to fixedcol.Index) {
	g.unlink(from, to, false)
}

func (g *Graph[T]) unlink(from, to fixedcol.Index, firstOnly bool) bool {
	v, err := g.vertices.Get(from)
	if err != nil {
		return false
	}

	removed := false
	prev := fixedcol.Invalid
	for e := v.firstEdge; e != fixedcol.Invalid; {
		en, _ := g.edges.Get(e)
		next := en.next

		if en.to == to {
			if prev == fixedcol.Invalid {
				v.firstEdge = next
			} else {
				pn, _ := g.edges.Get(prev)
				pn.next = next
			}
			if v.lastEdge == e {
				v.lastEdge = prev
			}
			_ = g.edges.Free(e)
			removed = true
			if firstOnly {
				return true
			}
		} else {
			prev = e
		}
		e = next
	}

	return removed
}
