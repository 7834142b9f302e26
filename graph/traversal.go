package graph

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/nilheap/fixedcol"
)

// cursor is a DFS stack frame: a vertex and the next adjacency edge to
// examine under it.
type cursor struct {
	vertex fixedcol.Index
	edge   fixedcol.Index
}

// BFS returns a lazy breadth-first traversal from start, yielding vertex
// indices in visit order. Ties between siblings break by adjacency insertion
// order. The sequence is not restartable: ranging over it consumes the
// shared traversal scratch, and mutating the graph invalidates an in-flight
// walk.
func (g *Graph[T]) BFS(start fixedcol.Index) (iter.Seq[fixedcol.Index], error) {
	if !g.vertices.Contains(start) {
		return nil, &fixedcol.ErrInvalidIndex{Index: start}
	}

	return func(yield func(fixedcol.Index) bool) {
		g.visited.ClearAll()
		g.frontier.Reset()

		g.visited.Set(uint(start))
		_ = g.frontier.Enqueue(start) // frontier is sized to vertex capacity

		for {
			v, ok := g.frontier.Dequeue()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}

			vn, err := g.vertices.Get(v)
			if err != nil {
				return // graph mutated mid-walk
			}
			for e := vn.firstEdge; e != fixedcol.Invalid; {
				en, err := g.edges.Get(e)
				if err != nil {
					return
				}
				if !g.visited.Test(uint(en.to)) {
					g.visited.Set(uint(en.to))
					_ = g.frontier.Enqueue(en.to)
				}
				e = en.next
			}
		}
	}, nil
}

// DFS returns a lazy depth-first (preorder) traversal from start, yielding
// vertex indices in visit order. The walk descends into the first unvisited
// neighbor in adjacency insertion order, using an explicit bounded cursor
// stack instead of recursion. The same restartability caveats as BFS apply.
func (g *Graph[T]) DFS(start fixedcol.Index) (iter.Seq[fixedcol.Index], error) {
	if !g.vertices.Contains(start) {
		return nil, &fixedcol.ErrInvalidIndex{Index: start}
	}

	return func(yield func(fixedcol.Index) bool) {
		g.visited.ClearAll()
		g.cursors.Reset()

		g.visited.Set(uint(start))
		if !yield(start) {
			return
		}
		sv, err := g.vertices.Get(start)
		if err != nil {
			return
		}
		_ = g.cursors.Push(cursor{vertex: start, edge: sv.firstEdge}) // stack is sized to vertex capacity

		for {
			frame, ok := g.cursors.Pop()
			if !ok {
				return
			}

			// Advance this frame to its first unvisited neighbor.
			descend := fixedcol.Invalid
			e := frame.edge
			for e != fixedcol.Invalid {
				en, err := g.edges.Get(e)
				if err != nil {
					return // graph mutated mid-walk
				}
				e = en.next
				if !g.visited.Test(uint(en.to)) {
					descend = en.to
					break
				}
			}
			if descend == fixedcol.Invalid {
				continue // frame exhausted
			}

			// Resume the parent later, then visit and descend.
			_ = g.cursors.Push(cursor{vertex: frame.vertex, edge: e})

			g.visited.Set(uint(descend))
			if !yield(descend) {
				return
			}
			dv, err := g.vertices.Get(descend)
			if err != nil {
				return
			}
			_ = g.cursors.Push(cursor{vertex: descend, edge: dv.firstEdge})
		}
	}, nil
}

// Reachable materializes the set of vertices reachable from start (including
// start itself) as a roaring bitmap, using a breadth-first sweep.
func (g *Graph[T]) Reachable(start fixedcol.Index) (*roaring.Bitmap, error) {
	walk, err := g.BFS(start)
	if err != nil {
		return nil, err
	}

	bm := roaring.New()
	for v := range walk {
		bm.Add(uint32(v))
	}
	return bm, nil
}
