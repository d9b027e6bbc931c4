// Package tilecache holds rendered map tiles in memory under a pixel-area
// budget rather than an entry-count budget: a cache holding sixty-four 256x256
// tiles and one holding a single 2048x2048 tile cost the same amount of
// memory, so eviction must reason in pixels, not slot counts.
//
// The implementation is the standard container/list-plus-map LRU shape —
// see the doc comment on TileCache for why that beats reaching for an
// off-the-shelf LRU package here. TileCache is not safe for concurrent use;
// see its doc comment for the ownership model callers are expected to
// follow (the scheduler package is the sole intended caller).
package tilecache
