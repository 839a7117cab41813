package notify

import "sync"

// This file implements asynchronous removal notifications.

// Reason says why an entry left the cache.
type Reason string

const (
	// Removed means a caller deleted the key explicitly.
	Removed Reason = "REMOVED"

	// Evicted means the recency policy pushed the key out, either through
	// RemoveLRU or because the cache was over capacity.
	Evicted Reason = "EVICTED"

	// Expired means the sweep dropped the key after its max age passed.
	Expired Reason = "EXPIRED"

	// Cleared means the whole cache was reset.
	Cleared Reason = "CLEARED"
)

// Event describes one entry leaving the cache.
type Event struct {
	Key    string
	Value  any
	Reason Reason
}

// Listener consumes removal events. It runs on the dispatcher's worker
// goroutine, never on the goroutine that removed the entry.
type Listener func(Event)

/*
Dispatcher delivers removal events to a listener asynchronously.

The cache removes entries while holding its lock, and a listener can be
arbitrarily slow, so events are never delivered inline. Instead they are
pushed into a buffered channel and a single background worker hands them to
the listener one at a time, in removal order.
*/
type Dispatcher struct {

	// fn is the listener every event is handed to.
	fn Listener

	// ch is a buffered channel that holds pending events.
	//
	// Buffering is important:
	// - Allows bursts of removals without blocking
	// - Keeps the cache's lock path fast
	ch chan Event

	// wg is used to wait for the worker to finish during shutdown.
	wg sync.WaitGroup
}

// NewDispatcher creates a Dispatcher and starts its worker.
func NewDispatcher(fn Listener, buffer int) *Dispatcher {
	d := &Dispatcher{
		fn: fn,
		ch: make(chan Event, buffer),
	}

	// Start one background worker
	d.wg.Add(1)
	go d.worker()

	return d
}

// Notify queues one event for delivery.
// If the queue is full, the event is DROPPED. Blocking would stall the
// cache operation that removed the entry, and notifications are advisory,
// not transactional.
func (d *Dispatcher) Notify(ev Event) {
	select {
	case d.ch <- ev:
		// queued successfully
	default:
		// intentional drop under pressure. This means:
		// - Cache stays fast
		// - A slow listener may miss some removals
	}
}

// worker runs in the background and hands queued events to the listener,
// one at a time, in the order the cache removed them.
func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.ch {
		d.fn(ev)
	}
}

/*
Close shuts down the dispatcher gracefully.
------------------
1. Close the channel (no more events accepted)
2. Wait for the worker to drain everything already queued

Without this, queued events could be lost when the application shuts down.
Callers must not Notify after Close.
*/
func (d *Dispatcher) Close() {
	close(d.ch)
	d.wg.Wait()
}
