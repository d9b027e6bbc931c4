// Package region defines Region, the composite key that addresses a single
// rendered tile: a scale factor plus a rectangular pixel extent.
//
// Region is a plain comparable struct and is intended to be used directly as
// a Go map key. That only works if every field participates in structural
// equality and never holds a non-finite float — a NaN Scale would make a
// Region unequal to itself, silently breaking map lookups and LRU promotion.
// NewRegion rejects NaN/Inf scales for exactly this reason; see
// ErrNonFiniteScale.
//
// Callers are expected to compute Scale canonically, e.g. as
// base * multiplier^level for an integer level, so that zooming in and back
// out round-trips to bit-identical keys: equality is exact, and
// canonicalizing the value is the caller's job, not Region's.
package region
