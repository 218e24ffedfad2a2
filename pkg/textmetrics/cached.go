package textmetrics

import (
	"io"

	"github.com/matzehuels/plotscale/pkg/cache"
	"github.com/matzehuels/plotscale/pkg/observability"
)

type measureKey struct {
	font string
	size float64
	text string
}

// Cached memoizes another Metrics implementation. Hits and misses are
// reported through observability.Metrics().
type Cached struct {
	backend Metrics
	cache   cache.Cache[measureKey, Extent]
}

// NewCached wraps backend with a memory cache holding at most limit
// measurements. A limit of zero or less means unbounded.
func NewCached(backend Metrics, limit int) *Cached {
	return &Cached{
		backend: backend,
		cache:   cache.NewMemory[measureKey, Extent](limit),
	}
}

// NewUncached wraps backend without storing measurements. Every call
// reaches the backend and is reported as a miss.
func NewUncached(backend Metrics) *Cached {
	return &Cached{
		backend: backend,
		cache:   cache.NewNull[measureKey, Extent](),
	}
}

// Measure implements Metrics.
func (c *Cached) Measure(font string, size float64, text string) Extent {
	key := measureKey{font, size, text}
	if e, ok := c.cache.Get(key); ok {
		observability.Metrics().OnMeasureHit(font, size)
		return e
	}
	observability.Metrics().OnMeasureMiss(font, size)
	e := c.backend.Measure(font, size, text)
	c.cache.Set(key, e)
	return e
}

// Len returns the number of cached measurements.
func (c *Cached) Len() int { return c.cache.Len() }

// Close drops the cached measurements and closes the backend if it holds
// resources.
func (c *Cached) Close() error {
	c.cache.Clear()
	if closer, ok := c.backend.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

var _ Metrics = (*Cached)(nil)
