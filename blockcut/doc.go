// Package blockcut computes the block-cut tree of a connected undirected
// graph: the bipartite tree whose nodes alternate between BlockNodes
// (maximal biconnected components) and CutNodes (articulation points).
//
// The algorithm is the classical Hopcroft–Tarjan decomposition, run as an
// iterative depth-first search with lowpoints (no recursion — the DFS
// stack is modeled explicitly as a slice of resumable adjacency cursors,
// since the graphs this is meant for can be far deeper than any reasonable
// goroutine stack should be asked to hold). Compute runs it in three
// phases: the DFS computing depths and lowpoints, identification of the
// non-root cut vertices, and top-down construction of the blocks. See the
// doc comments on BlockNode/CutNode for the tree shape and its invariants.
//
// Complexity: O(V + E) time and space, where V and E count the vertices
// and edges of the connected component containing the root.
package blockcut
