package tilecache

import (
	"container/list"

	"github.com/vertexkit/topograph/region"
)

// Tile is an opaque rendered pixel buffer. The cache never looks inside
// Pixels; it only needs to know how many pixels the tile costs against the
// budget.
type Tile struct {
	Pixels []byte
	Width  int
	Height int
}

// Area returns the pixel count this tile costs against a TileCache's
// budget.
func (t Tile) Area() int {
	return t.Width * t.Height
}

type entry struct {
	key  region.Region
	tile Tile
}

// TileCache is an LRU cache of rendered Tiles keyed by Region, bounded by
// total pixel count rather than entry count. It is the standard
// container/list-plus-map LRU shape: the list holds entries in
// most-to-least-recently-used order, and the map gives O(1) lookup of a
// key's *list.Element so a hit can promote to the front in O(1).
//
// An off-the-shelf LRU such as hashicorp/golang-lru was considered and
// rejected: that package evicts strictly by entry count, and this cache's
// eviction unit is pixels summed across entries of wildly different
// sizes — a 2048x2048 tile and sixty-four 256x256 tiles cost the same, and
// no entry-counting cache can express that budget.
//
// TileCache is not safe for concurrent use. It is meant to be owned and
// driven exclusively by a single scheduler.TileScheduler settling step;
// see that package's doc comment for the single-threaded-owner rationale.
type TileCache struct {
	maxPixelCount int
	pixelCount    int
	order         *list.List
	byKey         map[region.Region]*list.Element
}

// NewTileCache constructs an empty TileCache with the given pixel budget.
func NewTileCache(maxPixelCount int) (*TileCache, error) {
	if maxPixelCount <= 0 {
		return nil, ErrNonPositiveBudget
	}

	return &TileCache{
		maxPixelCount: maxPixelCount,
		order:         list.New(),
		byKey:         make(map[region.Region]*list.Element),
	}, nil
}

// Get looks up the tile cached for key. On a hit, key becomes the most
// recently used entry.
func (c *TileCache) Get(key region.Region) (Tile, bool) {
	el, ok := c.byKey[key]
	if !ok {
		return Tile{}, false
	}

	c.order.MoveToFront(el)

	return el.Value.(*entry).tile, true
}

// Put inserts or replaces the tile cached for key, then evicts least-
// recently-used entries until the budget is respected. A tile whose own
// area exceeds the budget is rejected outright and leaves the cache
// unchanged — it could never coexist with the invariant that pixelCount
// never exceeds maxPixelCount.
func (c *TileCache) Put(key region.Region, tile Tile) {
	area := tile.Area()
	if area > c.maxPixelCount {
		return
	}

	if el, ok := c.byKey[key]; ok {
		c.pixelCount -= el.Value.(*entry).tile.Area()
		el.Value = &entry{key: key, tile: tile}
		c.pixelCount += area
		c.order.MoveToFront(el)
	} else {
		el := c.order.PushFront(&entry{key: key, tile: tile})
		c.byKey[key] = el
		c.pixelCount += area
	}

	c.evictToFit()
}

// SetMaxPixelCount changes the budget, evicting from the tail until the
// new budget is respected. Survivors keep their relative MRU order.
func (c *TileCache) SetMaxPixelCount(n int) error {
	if n <= 0 {
		return ErrNonPositiveBudget
	}

	c.maxPixelCount = n
	c.evictToFit()

	return nil
}

// PixelCount returns the current sum of cached tiles' Area().
func (c *TileCache) PixelCount() int {
	return c.pixelCount
}

// Len returns the number of tiles currently cached.
func (c *TileCache) Len() int {
	return c.order.Len()
}

// Clear removes every entry from the cache.
func (c *TileCache) Clear() {
	c.order.Init()
	c.byKey = make(map[region.Region]*list.Element)
	c.pixelCount = 0
}

func (c *TileCache) evictToFit() {
	for c.pixelCount > c.maxPixelCount {
		back := c.order.Back()
		if back == nil {
			return
		}

		e := back.Value.(*entry)
		c.order.Remove(back)
		delete(c.byKey, e.key)
		c.pixelCount -= e.tile.Area()
	}
}
