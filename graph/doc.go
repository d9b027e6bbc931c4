// Package graph provides the undirected-graph collaborator consumed by
// package blockcut: a set of vertices, each owning a set of adjacent
// vertices, with identity-based equality on Vertex.
//
// Graph here is deliberately narrow: no direction, no weights, no
// multi-edges, no self-loops — block-cut decomposition is defined only
// over simple undirected graphs, so any richer configurability (mixed
// edges, per-edge directed overrides, weights) would only be able to lie
// about the invariants blockcut relies on. Its shape is a mutex-guarded
// vertex catalog plus an adjacency-set map, sentinel errors for malformed
// input, and deterministic (sorted) iteration so algorithms over the
// graph are reproducible.
package graph
