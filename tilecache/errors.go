package tilecache

import "errors"

// ErrNonPositiveBudget indicates NewTileCache or SetMaxPixelCount was
// called with a budget that cannot hold any tile at all.
var ErrNonPositiveBudget = errors.New("tilecache: max pixel count must be positive")
