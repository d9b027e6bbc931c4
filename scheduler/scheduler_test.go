package scheduler

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertexkit/topograph/region"
	"github.com/vertexkit/topograph/tilecache"
)

// fakeSubmitter is a deterministic, test-only WorkSubmitter: Submit records
// the work without running it, and the test triggers completion explicitly
// via complete. This keeps settling-step assertions free of goroutine
// scheduling nondeterminism.
type fakeSubmitter struct {
	mu        sync.Mutex
	triggers  map[region.Region]func()
	cancelled map[region.Region]bool
}

func newFakeSubmitter() *fakeSubmitter {
	return &fakeSubmitter{
		triggers:  make(map[region.Region]func()),
		cancelled: make(map[region.Region]bool),
	}
}

func (f *fakeSubmitter) Submit(r region.Region, producer TileProducer, done CompletionFunc) Handle {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.triggers[r] = func() {
		tile, err := producer.Render(context.Background(), r)
		done(r, tile, err)
	}

	return &fakeHandle{f: f, r: r}
}

func (f *fakeSubmitter) complete(r region.Region) {
	f.mu.Lock()
	trigger := f.triggers[r]
	f.mu.Unlock()
	if trigger == nil {
		panic("fakeSubmitter: complete called for a region with no pending Submit")
	}
	trigger()
}

func (f *fakeSubmitter) wasCancelled(r region.Region) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.cancelled[r]
}

type fakeHandle struct {
	f *fakeSubmitter
	r region.Region
}

func (h *fakeHandle) Cancel() {
	h.f.mu.Lock()
	h.f.cancelled[h.r] = true
	h.f.mu.Unlock()
}

func fixedProducer(w, hgt int) TileProducer {
	return TileProducerFunc(func(ctx context.Context, r region.Region) (tilecache.Tile, error) {
		return tilecache.Tile{Pixels: make([]byte, w*hgt), Width: w, Height: hgt}, nil
	})
}

func testRegion(t *testing.T, x, y, w, h int) region.Region {
	t.Helper()
	r, err := region.NewRegion(1, x, y, w, h)
	require.NoError(t, err)

	return r
}

func TestSettle_SpawnsWorkerForUncachedDesiredRegion(t *testing.T) {
	cache, err := tilecache.NewTileCache(1_000_000)
	require.NoError(t, err)
	sub := newFakeSubmitter()
	sched, err := NewTileScheduler(cache, fixedProducer(10, 10), sub)
	require.NoError(t, err)

	r := testRegion(t, 0, 0, 10, 10)
	sched.Settle([]region.Region{r})

	assert.Equal(t, 1, sched.InFlightCount())
}

func TestSettle_CompletionLandsInCacheWhenStillDesired(t *testing.T) {
	cache, err := tilecache.NewTileCache(1_000_000)
	require.NoError(t, err)
	sub := newFakeSubmitter()
	sched, err := NewTileScheduler(cache, fixedProducer(10, 10), sub)
	require.NoError(t, err)

	r := testRegion(t, 0, 0, 10, 10)
	sched.Settle([]region.Region{r})
	sub.complete(r)

	sched.Settle([]region.Region{r})

	_, ok := cache.Get(r)
	assert.True(t, ok)
	assert.Equal(t, 0, sched.InFlightCount(), "worker slot freed once cached")
}

func TestSettle_StaleCompletionDiscarded(t *testing.T) {
	cache, err := tilecache.NewTileCache(1_000_000)
	require.NoError(t, err)
	sub := newFakeSubmitter()
	sched, err := NewTileScheduler(cache, fixedProducer(10, 10), sub)
	require.NoError(t, err)

	r := testRegion(t, 0, 0, 10, 10)
	sched.Settle([]region.Region{r})
	sub.complete(r)

	// r no longer desired by the time the scheduler processes completion.
	sched.Settle(nil)

	_, ok := cache.Get(r)
	assert.False(t, ok, "P11: a discarded completion must never populate the cache")
}

func TestSettle_CancelsWorkerLeavingVisibleSet_P12(t *testing.T) {
	cache, err := tilecache.NewTileCache(1_000_000)
	require.NoError(t, err)
	sub := newFakeSubmitter()
	sched, err := NewTileScheduler(cache, fixedProducer(10, 10), sub)
	require.NoError(t, err)

	r := testRegion(t, 0, 0, 10, 10)
	sched.Settle([]region.Region{r})
	require.Equal(t, 1, sched.InFlightCount())

	sched.Settle(nil)

	assert.True(t, sub.wasCancelled(r))
	assert.Equal(t, 0, sched.InFlightCount())
}

func TestSettle_NeverDoubleSpawnsCachedRegion(t *testing.T) {
	cache, err := tilecache.NewTileCache(1_000_000)
	require.NoError(t, err)
	sub := newFakeSubmitter()
	sched, err := NewTileScheduler(cache, fixedProducer(10, 10), sub)
	require.NoError(t, err)

	r := testRegion(t, 0, 0, 10, 10)
	cache.Put(r, tilecache.Tile{Pixels: make([]byte, 100), Width: 10, Height: 10})

	sched.Settle([]region.Region{r})

	assert.Equal(t, 0, sched.InFlightCount(), "already-cached region needs no worker")
}

func TestNewTileScheduler_RejectsNilCollaborators(t *testing.T) {
	cache, err := tilecache.NewTileCache(100)
	require.NoError(t, err)
	sub := newFakeSubmitter()

	_, err = NewTileScheduler(cache, nil, sub)
	assert.ErrorIs(t, err, ErrNilProducer)

	_, err = NewTileScheduler(cache, fixedProducer(1, 1), nil)
	assert.ErrorIs(t, err, ErrNilSubmitter)
}
