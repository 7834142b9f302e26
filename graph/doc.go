// Package graph implements a fixed-capacity adjacency-list graph.
//
// Vertices and edges live in two separate arenas. Each vertex heads a chain
// of edge slots linked by index, appended in insertion order so traversal
// tie-breaks are deterministic. Traversal scratch state (the visited bitset,
// the BFS frontier queue, the DFS cursor stack) is pre-allocated at
// construction, sized to the vertex capacity, so BFS and DFS never allocate
// and never recurse.
//
// Directedness is a construction-time option. On an undirected graph AddEdge
// inserts both directions atomically: capacity for both edge slots is checked
// up front, so either both directions exist afterwards or neither does.
//
// Only one traversal may be in flight at a time, and mutating the graph
// invalidates an in-flight traversal.
package graph
