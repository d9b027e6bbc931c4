package scheduler

import (
	"io"
	"log"
	"sync"

	"github.com/vertexkit/topograph/region"
	"github.com/vertexkit/topograph/tilecache"
)

// Option configures a TileScheduler at construction time.
type Option func(*TileScheduler)

// WithLogger overrides the default no-op Logger.
func WithLogger(l Logger) Option {
	return func(s *TileScheduler) { s.logger = l }
}

type completion struct {
	region region.Region
	tile   tilecache.Tile
	err    error
}

// TileScheduler maintains the membership invariant described in the
// package doc: after each call to Settle returns, every region in the
// VisibleSet passed to that call is either cached or has a worker in
// flight for it, never both.
//
// TileScheduler's exported methods are meant to be called from a single
// "scheduler thread" — mirroring tilecache.TileCache's single-owner
// contract, since TileScheduler is that cache's sole intended caller.
// Only the completion callback fired by background workers crosses a
// goroutine boundary; it is buffered behind a mutex-protected queue and
// drained synchronously at the start of the next Settle call, which is
// what gives completion events their in-order, scheduler-thread-only
// processing.
type TileScheduler struct {
	cache     *tilecache.TileCache
	producer  TileProducer
	submitter WorkSubmitter
	logger    Logger

	workers map[region.Region]Handle

	mu      sync.Mutex
	pending []completion
}

// NewTileScheduler constructs a TileScheduler backed by cache, rendering
// through producer and launching work through submitter.
func NewTileScheduler(cache *tilecache.TileCache, producer TileProducer, submitter WorkSubmitter, opts ...Option) (*TileScheduler, error) {
	if producer == nil {
		return nil, ErrNilProducer
	}
	if submitter == nil {
		return nil, ErrNilSubmitter
	}

	s := &TileScheduler{
		cache:     cache,
		producer:  producer,
		submitter: submitter,
		logger:    log.New(io.Discard, "", 0),
		workers:   make(map[region.Region]Handle),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Settle reconciles the scheduler's state against desired, the current
// VisibleSet: stale in-flight workers are cancelled, workers are launched
// for newly desired uncached regions, and any completions received since
// the previous Settle call are resolved against desired before either of
// those steps runs.
func (s *TileScheduler) Settle(desired []region.Region) {
	desiredSet := make(map[region.Region]struct{}, len(desired))
	for _, r := range desired {
		desiredSet[r] = struct{}{}
	}

	s.drainCompletions(desiredSet)

	for r, h := range s.workers {
		if _, ok := desiredSet[r]; !ok {
			h.Cancel()
			delete(s.workers, r)
		}
	}

	for r := range desiredSet {
		if _, cached := s.cache.Get(r); cached {
			continue
		}
		if _, inFlight := s.workers[r]; inFlight {
			continue
		}

		s.workers[r] = s.submitter.Submit(r, s.producer, s.onCompletion)
	}
}

// InFlightCount reports how many workers are currently tracked as
// in-flight. Intended for tests and diagnostics.
func (s *TileScheduler) InFlightCount() int {
	return len(s.workers)
}

func (s *TileScheduler) onCompletion(r region.Region, tile tilecache.Tile, err error) {
	s.mu.Lock()
	s.pending = append(s.pending, completion{region: r, tile: tile, err: err})
	s.mu.Unlock()
}

func (s *TileScheduler) drainCompletions(desired map[region.Region]struct{}) {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, c := range batch {
		delete(s.workers, c.region)

		if c.err != nil {
			s.logger.Printf("scheduler: render of %s failed: %v", c.region, c.err)

			continue
		}
		if _, ok := desired[c.region]; !ok {
			continue
		}

		s.cache.Put(c.region, c.tile)
	}
}
