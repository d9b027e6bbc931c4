package blockcut

import "github.com/vertexkit/topograph/graph"

// dfsState holds the per-vertex bookkeeping produced by the iterative DFS
// and consumed by block construction. Built once per Compute call and
// discarded afterward — none of it escapes into the returned tree.
type dfsState struct {
	parent   map[*graph.Vertex]*graph.Vertex
	depth    map[*graph.Vertex]int
	children map[*graph.Vertex][]*graph.Vertex
	backEdge map[*graph.Vertex][]*graph.Vertex
	lowpoint map[*graph.Vertex]int
}

// frame is one resumable entry of the explicit DFS stack: the vertex being
// visited and a cursor into its (already-sorted) neighbor list.
type frame struct {
	v         *graph.Vertex
	neighbors []*graph.Vertex
	i         int
}

// Compute decomposes the connected component containing root into its
// block-cut tree and returns the tree's topmost BlockNode. root must belong
// to the graph whose connected component is to be decomposed; passing a
// root from a different component, or a nil root, is a precondition
// violation — nil is rejected with ErrNilRoot, everything else is the
// caller's responsibility (see the package-level Non-goals in the spec this
// package implements).
func Compute(root *graph.Vertex) (*BlockNode, error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	if root.Degree() == 0 {
		bg := newBlockGraph()
		bg.add(root)

		return &BlockNode{Block: bg}, nil
	}

	st := runDFS(root)
	cutNodeOf := make(map[*graph.Vertex]*CutNode)

	rootBlocks := blocksRootedAt(root, st, cutNodeOf)

	result := rootBlocks[0]
	if len(rootBlocks) > 1 {
		cr := &CutNode{Vertex: root, Parent: result}
		result.Children = append(result.Children, cr)
		for _, b := range rootBlocks[1:] {
			b.Parent = cr
			cr.Children = append(cr.Children, b)
		}
	}

	for _, cv := range reverseCutVertices(st, root) {
		parentCN, ok := cutNodeOf[cv]
		if !ok {
			// cv has no back-reference yet, meaning it was never marked as
			// the boundary of an already-built block: this cannot happen
			// for a true articulation point discovered by runDFS, since
			// its parent block is always built before cv is reverse-
			// processed (parent blocks are built top-down, cut vertices
			// reverse-processed bottom-up-then-flipped).
			continue
		}

		for _, b := range blocksRootedAt(cv, st, cutNodeOf) {
			b.Parent = parentCN
			parentCN.Children = append(parentCN.Children, b)
		}
	}

	return result, nil
}

// runDFS performs the iterative depth-first search with lowpoints, starting
// from root. It assumes root's connected component is finite and reachable
// entirely through Vertex.Neighbors.
func runDFS(root *graph.Vertex) *dfsState {
	st := &dfsState{
		parent:   make(map[*graph.Vertex]*graph.Vertex),
		depth:    make(map[*graph.Vertex]int),
		children: make(map[*graph.Vertex][]*graph.Vertex),
		backEdge: make(map[*graph.Vertex][]*graph.Vertex),
		lowpoint: make(map[*graph.Vertex]int),
	}

	st.depth[root] = 0
	stack := []*frame{{v: root, neighbors: root.Neighbors()}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.i >= len(top.neighbors) {
			v := top.v
			stack = stack[:len(stack)-1]

			low := st.depth[v]
			for _, w := range st.backEdge[v] {
				if st.depth[w] < low {
					low = st.depth[w]
				}
			}
			for _, c := range st.children[v] {
				if st.lowpoint[c] < low {
					low = st.lowpoint[c]
				}
			}
			st.lowpoint[v] = low

			continue
		}

		w := top.neighbors[top.i]
		top.i++

		wDepth, visited := st.depth[w]
		if !visited {
			st.parent[w] = top.v
			st.depth[w] = st.depth[top.v] + 1
			st.children[top.v] = append(st.children[top.v], w)
			stack = append(stack, &frame{v: w, neighbors: w.Neighbors()})

			continue
		}

		if w == st.parent[top.v] {
			continue
		}
		if wDepth < st.depth[top.v]-1 {
			st.backEdge[top.v] = append(st.backEdge[top.v], w)
		}
		// wDepth >= depth(top.v)-1 and w != parent: either an already-
		// classified back edge seen from its far endpoint, or (excluded by
		// the no-multi-edge, no-self-loop precondition) a degenerate case.
		// Ignored either way.
	}

	return st
}

// cutVerticesPostOrder returns every non-root articulation point of the
// component containing root, in DFS post-order (the order vertices are
// popped off the stack in runDFS). The root's own cut-vertex status is
// handled separately by Compute.
func cutVerticesPostOrder(st *dfsState, root *graph.Vertex) []*graph.Vertex {
	// Re-derive post-order by walking the tree (parent/children maps)
	// iteratively, since runDFS does not retain the pop order directly.
	var order []*graph.Vertex
	type visit struct {
		v        *graph.Vertex
		childIdx int
	}
	stack := []*visit{{v: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		kids := st.children[top.v]
		if top.childIdx < len(kids) {
			c := kids[top.childIdx]
			top.childIdx++
			stack = append(stack, &visit{v: c})

			continue
		}

		stack = stack[:len(stack)-1]
		if top.v == root {
			continue
		}

		for _, c := range kids {
			if st.lowpoint[c] >= st.depth[top.v] {
				order = append(order, top.v)

				break
			}
		}
	}

	return order
}

func reverseCutVertices(st *dfsState, root *graph.Vertex) []*graph.Vertex {
	order := cutVerticesPostOrder(st, root)
	out := make([]*graph.Vertex, len(order))
	for i, v := range order {
		out[len(order)-1-i] = v
	}

	return out
}

// blocksRootedAt builds one BlockNode for every tree child c of start with
// lowpoint(c) >= depth(start) — i.e. every block whose topmost edge is
// start-c. Discovered cut vertices are registered into cutNodeOf so that a
// later call with start set to one of them can find its parent CutNode.
func blocksRootedAt(start *graph.Vertex, st *dfsState, cutNodeOf map[*graph.Vertex]*CutNode) []*BlockNode {
	var blocks []*BlockNode
	for _, c := range st.children[start] {
		if st.lowpoint[c] >= st.depth[start] {
			blocks = append(blocks, buildBlock(start, c, st, cutNodeOf))
		}
	}

	return blocks
}

// buildBlock constructs the single block whose topmost edge is start-c, via
// breadth-first traversal bounded by the block's own extent: descent stops
// the moment a tree child begins a new block, and that boundary vertex is
// recorded as a cut vertex of this block.
func buildBlock(start, c *graph.Vertex, st *dfsState, cutNodeOf map[*graph.Vertex]*CutNode) *BlockNode {
	bg := newBlockGraph()
	bvStart := bg.add(start)
	bvC := bg.add(c)
	bg.connect(bvStart, bvC)

	node := &BlockNode{Block: bg}

	queue := []*graph.Vertex{c}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		bvU := bg.add(u)

		for _, w := range st.backEdge[u] {
			bvW := bg.add(w)
			bg.connect(bvU, bvW)
		}

		for _, d := range st.children[u] {
			if st.lowpoint[d] >= st.depth[u] {
				if _, exists := cutNodeOf[u]; !exists {
					cn := &CutNode{Vertex: u, Parent: node}
					cutNodeOf[u] = cn
					node.Children = append(node.Children, cn)
				}

				continue
			}

			bvD := bg.add(d)
			bg.connect(bvU, bvD)
			queue = append(queue, d)
		}
	}

	return node
}
