// Package cache provides small in-process caches for values that are
// expensive to recompute but cheap to keep, such as text measurements.
//
// Caches here never persist anything: they live as long as the process
// and are safe to share between concurrently running negotiations.
//
// # Usage
//
//	c := cache.NewMemory[string, float64](4096)
//	if v, ok := c.Get("key"); ok {
//	    return v
//	}
//	c.Set("key", compute())
package cache

// Cache is a typed key/value cache.
type Cache[K comparable, V any] interface {
	// Get returns the cached value and whether it was present.
	Get(key K) (V, bool)

	// Set stores a value.
	Set(key K, value V)

	// Len returns the number of stored entries.
	Len() int

	// Clear removes all entries.
	Clear()
}
