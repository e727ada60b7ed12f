package glyph

import (
	"container/list"
	"sync"
	"sync/atomic"

	"github.com/edusim/mvt"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// defaultCacheCapacity is the number of outlines a Font keeps.
const defaultCacheCapacity = 512

type outlineKey struct {
	gid  sfnt.GlyphIndex
	size fixed.Int26_6
}

type outlineEntry struct {
	key   outlineKey
	curve *mvt.Curve
}

// outlineCache is an LRU of glyph outlines. Stored curves are never handed
// out; callers receive clones.
type outlineCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[outlineKey]*list.Element
	lru      *list.List // front is most recently used

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

func newOutlineCache(capacity int) *outlineCache {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	return &outlineCache{
		capacity: capacity,
		entries:  make(map[outlineKey]*list.Element),
		lru:      list.New(),
	}
}

// get returns a copy of the cached outline for key.
func (c *outlineCache) get(key outlineKey) (*mvt.Curve, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.lru.MoveToFront(e)
	c.hits.Add(1)
	return e.Value.(*outlineEntry).curve.Clone(), true
}

// add stores a copy of curve, evicting the least recently used outlines
// once the cache is full.
func (c *outlineCache) add(key outlineKey, curve *mvt.Curve) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		e.Value.(*outlineEntry).curve = curve.Clone()
		c.lru.MoveToFront(e)
		return
	}
	for c.lru.Len() >= c.capacity {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*outlineEntry).key)
		c.evictions.Add(1)
	}
	c.entries[key] = c.lru.PushFront(&outlineEntry{key: key, curve: curve.Clone()})
}

func (c *outlineCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// CacheStats reports outline cache activity for a Font.
type CacheStats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// CacheStats returns the current outline cache statistics.
func (f *Font) CacheStats() CacheStats {
	return CacheStats{
		Len:       f.cache.len(),
		Capacity:  f.cache.capacity,
		Hits:      f.cache.hits.Load(),
		Misses:    f.cache.misses.Load(),
		Evictions: f.cache.evictions.Load(),
	}
}
