package scheduler

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vertexkit/topograph/region"
)

// DefaultWorkSubmitter runs each submitted render on its own goroutine
// under an errgroup.Group, the same bounded-fan-out shape used elsewhere
// in this module's ancestry for background work pools. Unlike a typical
// errgroup.WithContext consumer, DefaultWorkSubmitter never lets one
// render's failure cancel its siblings — each Submit call gets its own
// cancellable context, and the group's error return is always nil; task
// errors are reported exclusively through the CompletionFunc.
type DefaultWorkSubmitter struct {
	baseCtx context.Context
	group   *errgroup.Group
}

// NewDefaultWorkSubmitter constructs a DefaultWorkSubmitter. baseCtx is the
// parent of every per-task context; cancelling it cancels all outstanding
// and future work. maxConcurrency bounds how many renders run at once; 0
// means unbounded.
func NewDefaultWorkSubmitter(baseCtx context.Context, maxConcurrency int) *DefaultWorkSubmitter {
	g := &errgroup.Group{}
	if maxConcurrency > 0 {
		g.SetLimit(maxConcurrency)
	}

	return &DefaultWorkSubmitter{baseCtx: baseCtx, group: g}
}

// Submit implements WorkSubmitter.
func (s *DefaultWorkSubmitter) Submit(r region.Region, producer TileProducer, done CompletionFunc) Handle {
	taskCtx, cancel := context.WithCancel(s.baseCtx)

	s.group.Go(func() error {
		tile, err := producer.Render(taskCtx, r)
		done(r, tile, err)

		return nil
	})

	return &taskHandle{cancel: cancel}
}

// Wait blocks until every task submitted so far has returned. Intended for
// orderly shutdown; a TileScheduler does not call it during normal
// settling.
func (s *DefaultWorkSubmitter) Wait() error {
	return s.group.Wait()
}

type taskHandle struct {
	cancel context.CancelFunc
}

// Cancel implements Handle.
func (h *taskHandle) Cancel() {
	h.cancel()
}
