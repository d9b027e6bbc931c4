package blockcut

import (
	"fmt"

	"github.com/vertexkit/topograph/graph"
)

// BlockGraph is one maximal biconnected component, materialized as its own
// small graph.Graph with freshly minted vertex IDs. SourceOf recovers the
// original graph.Vertex a block-vertex stands in for — a vertex that
// belongs to several blocks (every cut vertex does) gets one independent
// block-vertex per block, since biconnected components are not disjoint on
// vertices, only on edges.
type BlockGraph struct {
	g        *graph.Graph
	sourceOf map[string]*graph.Vertex
	idOf     map[*graph.Vertex]string
	next     int
}

func newBlockGraph() *BlockGraph {
	return &BlockGraph{
		g:        graph.New(),
		sourceOf: make(map[string]*graph.Vertex),
		idOf:     make(map[*graph.Vertex]string),
	}
}

// Graph returns the underlying graph of this block. Its vertex IDs are
// synthetic and meaningful only within this BlockGraph; use SourceOf to map
// a block-vertex ID back to the original graph's vertex.
func (b *BlockGraph) Graph() *graph.Graph {
	return b.g
}

// SourceOf returns the original graph.Vertex that the block-vertex with the
// given ID stands in for, or nil if id is not a vertex of this block.
func (b *BlockGraph) SourceOf(id string) *graph.Vertex {
	return b.sourceOf[id]
}

// VertexCount returns the number of vertices in this block.
func (b *BlockGraph) VertexCount() int {
	return b.g.VertexCount()
}

// add inserts a block-vertex standing in for src if one does not already
// exist in this block, and returns its block-local ID.
func (b *BlockGraph) add(src *graph.Vertex) string {
	if id, ok := b.idOf[src]; ok {
		return id
	}

	id := fmt.Sprintf("v%d", b.next)
	b.next++
	if _, err := b.g.AddVertex(id); err != nil {
		panic(fmt.Sprintf("blockcut: internal invariant broken: %v", err))
	}
	b.sourceOf[id] = src
	b.idOf[src] = id

	return id
}

func (b *BlockGraph) connect(idA, idB string) {
	if err := b.g.AddEdge(idA, idB); err != nil {
		panic(fmt.Sprintf("blockcut: internal invariant broken: %v", err))
	}
}

// BlockNode is one node of the block-cut tree standing for a maximal
// biconnected component ("block"). Parent is nil only for the overall
// result returned by Compute — every other BlockNode hangs off a CutNode.
// Children are the CutNodes for the articulation points that separate this
// block from the blocks beneath it.
type BlockNode struct {
	Block    *BlockGraph
	Parent   *CutNode
	Children []*CutNode
}

// CutNode is one node of the block-cut tree standing for a single
// articulation point of the input graph. Vertex identifies it in the
// original graph.Graph (not a BlockGraph). Every CutNode has exactly one
// Parent BlockNode — the block "closest to the root" that contains this
// vertex — and one Children entry per other block the vertex also belongs
// to.
type CutNode struct {
	Vertex   *graph.Vertex
	Parent   *BlockNode
	Children []*BlockNode
}
