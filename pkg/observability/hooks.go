// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about layout negotiation and text measurement.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks must not block: the negotiation calls them synchronously on the
// drawing thread.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetNegotiationHooks(&myNegotiationHooks{})
//	    observability.SetMetricsHooks(&myMetricsHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Negotiation().OnNegotiateStart(width, height)
//	// ... negotiate ...
//	observability.Negotiation().OnNegotiateComplete(plotWidth, plotHeight, duration)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Negotiation Hooks
// =============================================================================

// NegotiationHooks receives events from the layout negotiation.
type NegotiationHooks interface {
	// OnNegotiateStart is called once per redraw with the canvas size.
	OnNegotiateStart(canvasWidth, canvasHeight float64)

	// OnPassComplete is called after each of the two passes with the plot
	// rectangle size that pass settled on.
	OnPassComplete(pass int, plotWidth, plotHeight float64)

	// OnLegendRegrid is called when the legend grid changed its column count.
	OnLegendRegrid(fromColumns, toColumns int)

	// OnNegotiateComplete is called with the final plot rectangle size.
	OnNegotiateComplete(plotWidth, plotHeight float64, duration time.Duration)
}

// =============================================================================
// Metrics Hooks
// =============================================================================

// MetricsHooks receives events from cached text measurement.
type MetricsHooks interface {
	// OnMeasureHit records a measurement served from cache.
	OnMeasureHit(font string, size float64)

	// OnMeasureMiss records a measurement that reached the backend.
	OnMeasureMiss(font string, size float64)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopNegotiationHooks is a no-op implementation of NegotiationHooks.
type NoopNegotiationHooks struct{}

func (NoopNegotiationHooks) OnNegotiateStart(float64, float64)                   {}
func (NoopNegotiationHooks) OnPassComplete(int, float64, float64)                {}
func (NoopNegotiationHooks) OnLegendRegrid(int, int)                             {}
func (NoopNegotiationHooks) OnNegotiateComplete(float64, float64, time.Duration) {}

// NoopMetricsHooks is a no-op implementation of MetricsHooks.
type NoopMetricsHooks struct{}

func (NoopMetricsHooks) OnMeasureHit(string, float64)  {}
func (NoopMetricsHooks) OnMeasureMiss(string, float64) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	negotiationHooks NegotiationHooks = NoopNegotiationHooks{}
	metricsHooks     MetricsHooks     = NoopMetricsHooks{}
	hooksMu          sync.RWMutex
)

// SetNegotiationHooks registers custom negotiation hooks.
// This should be called once at application startup before any negotiation.
func SetNegotiationHooks(h NegotiationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		negotiationHooks = h
	}
}

// SetMetricsHooks registers custom text measurement hooks.
func SetMetricsHooks(h MetricsHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		metricsHooks = h
	}
}

// Negotiation returns the registered negotiation hooks.
func Negotiation() NegotiationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return negotiationHooks
}

// Metrics returns the registered text measurement hooks.
func Metrics() MetricsHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return metricsHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	negotiationHooks = NoopNegotiationHooks{}
	metricsHooks = NoopMetricsHooks{}
}
