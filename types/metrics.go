package types

import "go.uber.org/atomic"

// This file defines how the cache reports what it is doing.

/*
Metrics receives one callback per cache lifecycle event. The cache calls
these synchronously from its operations, so implementations must be fast
and must never call back into the cache.
*/
type Metrics interface {

	// Hit is called when a read returns a live value.
	Hit()

	// Miss is called when a read finds no live value, either because the
	// key is absent or because its entry is past due.
	Miss()

	// Eviction is called when an entry is removed in recency order:
	// an explicit RemoveLRU, or the capacity bound trimming the store.
	Eviction()

	// Expire is called for every past-due entry the sweep removes.
	Expire()

	// Load is called each time the read-through loader is invoked.
	Load()
}

/*
NoopMetrics ignores every event.

It is the default metrics sink so the rest of the cache never has to
nil-check before reporting. Callers that do not care about metrics pay
nothing beyond an empty method call.
*/
type NoopMetrics struct{}

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Eviction() {}
func (NoopMetrics) Expire()   {}
func (NoopMetrics) Load()     {}

// CounterMetrics counts events with atomic counters. It is safe for
// concurrent use and cheap enough to leave on in production.
type CounterMetrics struct {
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
	expired   atomic.Int64
	loads     atomic.Int64
}

func (m *CounterMetrics) Hit()      { m.hits.Inc() }
func (m *CounterMetrics) Miss()     { m.misses.Inc() }
func (m *CounterMetrics) Eviction() { m.evictions.Inc() }
func (m *CounterMetrics) Expire()   { m.expired.Inc() }
func (m *CounterMetrics) Load()     { m.loads.Inc() }

// MetricsSnapshot is a point-in-time copy of CounterMetrics counters.
type MetricsSnapshot struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Expired   int64
	Loads     int64
}

// Snapshot copies the current counter values. Counters keep running; the
// snapshot is not a reset.
func (m *CounterMetrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Hits:      m.hits.Load(),
		Misses:    m.misses.Load(),
		Evictions: m.evictions.Load(),
		Expired:   m.expired.Load(),
		Loads:     m.loads.Load(),
	}
}
