package cache

import "sync"

// Memory is a map-backed cache guarded by a read/write lock. Reads do not
// block each other.
//
// When limit is positive and the cache is full, Set drops every entry
// before storing the new one. Measurement workloads revisit a small set of
// keys, so a full reset is rare and keeps Set O(1).
type Memory[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
	limit int
}

// NewMemory creates a memory cache holding at most limit entries.
// A limit of zero or less means unbounded.
func NewMemory[K comparable, V any](limit int) *Memory[K, V] {
	return &Memory[K, V]{
		items: make(map[K]V),
		limit: limit,
	}
}

// Get returns the cached value for key.
func (c *Memory[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key]
	return v, ok
}

// Set stores value under key.
func (c *Memory[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[key]; !exists && c.limit > 0 && len(c.items) >= c.limit {
		clear(c.items)
	}
	c.items[key] = value
}

// Len returns the number of stored entries.
func (c *Memory[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Clear removes all entries.
func (c *Memory[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.items)
}

// Ensure Memory implements Cache.
var _ Cache[string, int] = (*Memory[string, int])(nil)
