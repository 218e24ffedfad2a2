package cache

// Null is a no-op cache that never stores anything.
// Useful for testing or when caching should be disabled.
type Null[K comparable, V any] struct{}

// NewNull creates a null cache.
func NewNull[K comparable, V any]() Cache[K, V] {
	return Null[K, V]{}
}

// Get always returns a cache miss.
func (Null[K, V]) Get(K) (V, bool) {
	var zero V
	return zero, false
}

// Set does nothing.
func (Null[K, V]) Set(K, V) {}

// Len is always zero.
func (Null[K, V]) Len() int { return 0 }

// Clear does nothing.
func (Null[K, V]) Clear() {}

// Ensure Null implements Cache.
var _ Cache[string, int] = Null[string, int]{}
