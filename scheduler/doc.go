// Package scheduler coordinates rendering of visible tiles against a
// tilecache.TileCache: for every region the host currently wants to show,
// exactly one of {cached, being rendered, neither} holds after a settling
// step, with stale in-flight work cancelled and completed work landing in
// the cache only if it is still wanted.
//
// The scheduler itself never renders a pixel. It depends on two narrow
// interfaces, TileProducer and WorkSubmitter, so the actual rendering
// backend (GPU surface, software rasterizer, sprite atlas, whatever the
// host uses) stays entirely outside this package. DefaultWorkSubmitter, an
// errgroup.Group-backed implementation, is provided so the package has
// something runnable for its own tests and examples.
//
// A TileScheduler is driven by a single caller thread calling Settle
// repeatedly; see TileScheduler's doc comment for the concurrency model.
package scheduler
