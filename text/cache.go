package text

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// defaultCacheLimit bounds caches created with a non-positive limit.
const defaultCacheLimit = 1 << 16

// Cache is a least-recently-used map of bounded size, safe for concurrent
// use. The measurers use it to remember text extents.
type Cache[K comparable, V any] struct {
	mu     sync.Mutex
	lru    *simplelru.LRU[K, V]
	hits   uint64
	misses uint64
}

// CacheStats counts lookups since the cache was created or cleared.
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// NewCache creates a cache holding at most limit entries. A limit of 0 or
// less selects a large default.
func NewCache[K comparable, V any](limit int) *Cache[K, V] {
	if limit <= 0 {
		limit = defaultCacheLimit
	}
	l, err := simplelru.NewLRU[K, V](limit, nil)
	if err != nil {
		// NewLRU only fails for a non-positive size.
		panic(err)
	}
	return &Cache[K, V]{lru: l}
}

// Get returns the value stored for key and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookup(key)
}

// Set stores value for key, evicting the least recently used entry when
// the cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(key, value)
}

// GetOrCreate returns the value for key, calling create to make it on a
// miss. create runs with the cache locked, so at most once per missing
// key; it must not use the cache.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.lookup(key); ok {
		return v
	}
	v := create()
	c.lru.Add(key, v)
	return v
}

// Clear removes every entry and resets the statistics.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Purge()
	c.hits, c.misses = 0, 0
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Stats returns the lookup counters.
func (c *Cache[K, V]) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Hits: c.hits, Misses: c.misses, Len: c.lru.Len()}
}

// lookup requires c.mu.
func (c *Cache[K, V]) lookup(key K) (V, bool) {
	v, ok := c.lru.Get(key)
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}
