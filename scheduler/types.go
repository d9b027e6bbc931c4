package scheduler

import (
	"context"

	"github.com/vertexkit/topograph/region"
	"github.com/vertexkit/topograph/tilecache"
)

// TileProducer renders the pixels for a single region. Implementations
// must respect ctx cancellation — a TileScheduler cancels a producer's
// context the moment the region it covers leaves the visible set.
type TileProducer interface {
	Render(ctx context.Context, r region.Region) (tilecache.Tile, error)
}

// TileProducerFunc adapts a plain function to a TileProducer.
type TileProducerFunc func(ctx context.Context, r region.Region) (tilecache.Tile, error)

// Render calls f.
func (f TileProducerFunc) Render(ctx context.Context, r region.Region) (tilecache.Tile, error) {
	return f(ctx, r)
}

// Handle represents one in-flight unit of work. Cancel is idempotent and
// non-blocking; it requests cooperative cancellation but does not wait for
// the work to stop.
type Handle interface {
	Cancel()
}

// CompletionFunc is invoked by a WorkSubmitter's background work exactly
// once, with the rendered tile on success or a non-nil err otherwise
// (including context cancellation). It must be safe to call from any
// goroutine — a TileScheduler's implementation queues the result rather
// than touching scheduler state directly from the caller's goroutine.
type CompletionFunc func(r region.Region, tile tilecache.Tile, err error)

// WorkSubmitter launches a TileProducer for a region in the background and
// reports completion through done.
type WorkSubmitter interface {
	Submit(r region.Region, producer TileProducer, done CompletionFunc) Handle
}

// Logger is the minimal structured-enough logging surface TileScheduler
// needs to report suppressed render failures. *log.Logger satisfies this
// interface, as does any third-party logger exposing a Printf method.
type Logger interface {
	Printf(format string, args ...any)
}
