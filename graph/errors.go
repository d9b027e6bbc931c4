package graph

import "errors"

// Sentinel errors for Graph operations. Callers should branch on these with
// errors.Is rather than string comparison.
var (
	// ErrEmptyVertexID indicates a vertex ID of "" was supplied.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a vertex that is
	// not present in the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrSelfLoop indicates an edge from a vertex to itself was requested.
	// Self-loops are out of scope for block-cut input graphs (spec §1).
	ErrSelfLoop = errors.New("graph: self-loops are not supported")
)
