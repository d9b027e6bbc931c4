package scheduler

import "errors"

// Sentinel errors for TileScheduler construction.
var (
	// ErrNilProducer indicates NewTileScheduler was called without a
	// TileProducer.
	ErrNilProducer = errors.New("scheduler: producer is nil")

	// ErrNilSubmitter indicates NewTileScheduler was called without a
	// WorkSubmitter.
	ErrNilSubmitter = errors.New("scheduler: submitter is nil")
)
