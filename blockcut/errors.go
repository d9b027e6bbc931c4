package blockcut

import "errors"

// Sentinel errors for Compute. Callers should branch on these with
// errors.Is rather than string comparison.
var (
	// ErrNilRoot indicates Compute was called with a nil root vertex.
	ErrNilRoot = errors.New("blockcut: root is nil")
)
