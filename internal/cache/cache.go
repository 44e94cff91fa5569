// Package cache provides a small generic LRU cache used to memoise kernel
// tables that depend only on their parameters, such as resize taps.
//
//	c := cache.New[int, []float32](64)
//	taps := c.GetOrCreate(n, func() []float32 { return build(n) })
//
// Cached values are shared between callers and must be treated as read-only.
// Cache is safe for concurrent use and must not be copied after creation.
package cache

import "sync"

// Cache is a thread-safe LRU cache holding at most limit entries.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*lruNode[K, V]
	order   lruList[K, V]
	limit   int
	hits    uint64
	misses  uint64
}

// New creates a cache holding at most limit entries. A limit of 0 means
// unlimited.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*lruNode[K, V]),
		limit:   limit,
	}
}

// GetOrCreate returns the cached value for key and marks it most recently
// used, calling create on a miss. create runs under the cache lock so
// concurrent misses build the value once.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, ok := c.entries[key]; ok {
		c.hits++
		c.order.MoveToFront(node)
		return node.value
	}
	c.misses++

	value := create()
	c.entries[key] = c.order.PushFront(key, value)
	for c.limit > 0 && c.order.Len() > c.limit {
		oldest, _ := c.order.RemoveOldest()
		delete(c.entries, oldest)
	}
	return value
}

// Stats returns a snapshot of cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Len:      c.order.Len(),
		Capacity: c.limit,
		Hits:     c.hits,
		Misses:   c.misses,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// Stats contains cache statistics.
type Stats struct {
	Len      int
	Capacity int
	Hits     uint64
	Misses   uint64
	// HitRate is Hits / (Hits + Misses), or 0 before the first lookup.
	HitRate float64
}
