package nodecache

import (
	"context"
	"reflect"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/rudiculous/node-cache/api"
	"github.com/rudiculous/node-cache/engine"
	"github.com/rudiculous/node-cache/notify"
	"github.com/rudiculous/node-cache/recency"
	"github.com/rudiculous/node-cache/types"
)

// Cache implements the public contract in api.
var _ api.Cache = (*Cache)(nil)

/*
Cache is the main cache implementation.
This struct is the orchestrator that connects:
- the entry store
- the recency list
- expiration
- the periodic sweep
- loading
- removal notifications
- metrics

The entry store and the recency list are one logical structure: every
mutation updates both, and one lock guards both. Entries are too
interdependent to partition (recency order is global), so there is no
sharding and no finer-grained locking here.
*/
type Cache struct {
	// mu guards store and order together. Every operation that reads or
	// mutates either one holds it for the full operation, including the
	// sweep.
	mu sync.Mutex

	// store is the actual storage unit: key to entry, the sole owner of
	// all entries.
	store map[string]*types.CacheEntry

	// order tracks every stored key from least to most recently used.
	// Always mutated in lock step with store.
	order *recency.List

	// engine contains the "rules" of the cache: expiration, timestamps,
	// the clock, metrics.
	engine *engine.Engine

	// notifier delivers removal events to the configured listener. Nil
	// when no listener is configured, and nil again after Close.
	notifier *notify.Dispatcher

	// capacity is the maximum number of stored entries, expired ones
	// included. Zero means unbounded.
	capacity int

	// loader is how the cache talks to the outside world when it does
	// NOT have the data. Nil unless configured.
	loader types.Loader

	// sf prevents multiple goroutines from loading the same missing key
	// from the backing store simultaneously.
	sf singleflight.Group

	// sweep bookkeeping: interval, the loop's context, and the wait group
	// Close blocks on.
	sweepInterval time.Duration
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	closed        bool

	// staged by options, consumed once by New.
	listener     notify.Listener
	notifyBuffer int
}

/*
New creates a Cache and starts its background sweeper, unless the sweep
interval was set to zero.

All options are validated before any goroutine starts, so a failed New
leaks nothing. The returned cache must be Closed when no longer needed;
otherwise its sweeper goroutine lives until process exit.
*/
func New(opts ...Option) (*Cache, error) {
	c := &Cache{
		store:         make(map[string]*types.CacheEntry),
		order:         recency.New(),
		engine:        engine.New(nil, nil, nil),
		sweepInterval: DefaultSweepInterval,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.listener != nil {
		c.notifier = notify.NewDispatcher(c.listener, c.notifyBuffer)
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	if c.sweepInterval > 0 {
		c.wg.Add(1)
		go c.sweepLoop(ctx)
	}

	return c, nil
}

/*
Put stores a value under key with no max age of its own.

BEHAVIOR:
---------
- New key: the entry never expires.
- Existing key (expired-but-unswept counts as existing): the value and
  write timestamps are refreshed and the entry keeps the max age it
  already had. Omitting the max age is NOT the same as asking for
  "unlimited"; use PutWithMaxAge for that.
- Either way the key becomes the most recently used.
*/
func (c *Cache) Put(key string, value any) {
	c.put(key, value, types.Forever(), false)
}

// PutWithMaxAge stores a value under key with an explicit max age, which
// replaces any budget the entry had before. types.Forever() explicitly
// makes the entry immortal; types.MaxAgeFor(0) makes it expired on
// arrival.
func (c *Cache) PutWithMaxAge(key string, value any, age types.MaxAge) {
	c.put(key, value, age, true)
}

func (c *Cache) put(key string, value any, age types.MaxAge, explicit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.store[key]; ok {
		// Present entries are refreshed in place, even when already past
		// due: the write hands an unswept entry a fresh deadline.
		c.engine.OnUpdate(ent, value, age, explicit)
		c.order.Touch(key)
		return
	}

	ent := &types.CacheEntry{Key: key, Value: value, MaxAge: age}
	c.engine.OnInsert(ent)
	c.store[key] = ent
	c.order.Touch(key)

	c.evictOverCapacity()
}

// evictOverCapacity drops least recently used entries until the store fits
// the configured bound. Expiration state is irrelevant here: recency alone
// picks the victim. Callers hold c.mu.
func (c *Cache) evictOverCapacity() {
	if c.capacity <= 0 {
		return
	}
	for len(c.store) > c.capacity {
		key, ok := c.order.LRU()
		if !ok {
			return
		}
		c.deleteLocked(key, notify.Evicted)
		c.engine.Metrics.Eviction()
	}
}

/*
Get retrieves the value stored under key.

BEHAVIOR:
---------
- Hit (key present and not expired): the value is returned, the access
  timestamp moves, and the key becomes the most recently used.
- Miss (key absent OR present but expired): ok is false and NOTHING is
  mutated. An expired entry stays where it is, hidden from readers but
  still present, until the sweep or an explicit call removes it.
*/
func (c *Cache) Get(key string) (value any, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(key, true)
}

// GetOrDefault retrieves the value stored under key, or def on a miss.
func (c *Cache) GetOrDefault(key string, def any) any {
	if v, ok := c.Get(key); ok {
		return v
	}
	return def
}

// getLocked serves a read under c.mu. countMiss distinguishes a caller's
// own lookup from the load path's re-check, which must not count a second
// miss for the same logical lookup.
func (c *Cache) getLocked(key string, countMiss bool) (any, bool) {
	ent, ok := c.store[key]
	if !ok || c.engine.IsExpired(ent) {
		if countMiss {
			c.engine.Metrics.Miss()
		}
		return nil, false
	}

	c.engine.Metrics.Hit()
	c.engine.OnRead(ent)
	c.order.Touch(key)
	return ent.Value, true
}

/*
GetOrLoad retrieves the value stored under key, loading it through the
configured Loader on a miss.

singleflight ensures that:
- If 100 goroutines request the same missing key, only ONE of them loads
  it from the backing store.
- Others wait for and share that result.

The loaded value is stored with the max age the loader assigns before the
call returns. Calling GetOrLoad on a cache built without WithLoader is a
caller bug and panics.
*/
func (c *Cache) GetOrLoad(ctx context.Context, key string) (any, error) {
	if c.loader == nil {
		panic("nodecache: GetOrLoad on a cache built without WithLoader")
	}

	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		// A concurrent flight may have filled the key while this caller
		// waited its turn.
		c.mu.Lock()
		v, ok := c.getLocked(key, false)
		c.mu.Unlock()
		if ok {
			return v, nil
		}

		value, age, err := c.loader.Load(ctx, key)
		if err != nil {
			return nil, err
		}
		c.engine.Metrics.Load()
		c.PutWithMaxAge(key, value, age)
		return value, nil
	})
	return v, err
}

/*
Remove deletes the entry under key unconditionally, expired or not, and
returns the value it held. ok is false when the key was absent; removing
an absent key changes nothing.
*/
func (c *Cache) Remove(key string) (value any, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deleteLocked(key, notify.Removed)
}

/*
RemoveLRU deletes the least recently used entry (the head of the recency
list, irrespective of expiration state) and returns the value it held.
ok is false when the cache is empty.
*/
func (c *Cache) RemoveLRU() (value any, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key, ok := c.order.LRU()
	if !ok {
		return nil, false
	}
	v, _ := c.deleteLocked(key, notify.Evicted)
	c.engine.Metrics.Eviction()
	return v, true
}

// deleteLocked removes key from both substructures at once and queues a
// removal notification. Callers hold c.mu.
func (c *Cache) deleteLocked(key string, reason notify.Reason) (any, bool) {
	ent, ok := c.store[key]
	if !ok {
		return nil, false
	}
	delete(c.store, key)
	c.order.Remove(key)

	if c.notifier != nil {
		c.notifier.Notify(notify.Event{Key: key, Value: ent.Value, Reason: reason})
	}
	return ent.Value, true
}

/*
IsExpired reports whether the entry under key is past its max age.

Three outcomes:
- (false, true): present and still fresh, or it never expires
- (true, true):  present but past due, awaiting the sweep
- (_, false):    no such key

The answer comes from a fresh clock read, so asking twice around a
deadline can legitimately disagree.
*/
func (c *Cache) IsExpired(key string) (expired, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, present := c.store[key]
	if !present {
		return false, false
	}
	return c.engine.IsExpired(ent), true
}

/*
Clean removes every expired entry and reports how many were dropped. This
is the body of the periodic sweep; it can also be called by hand.

The sweep is synchronous: it holds the lock until every expired entry is
gone, so a very large store pauses other callers for the duration. That is
a known trade-off of the design, not an accident. Each entry is judged
against its own clock read, so entries whose deadline passes while the
sweep runs are caught too.
*/
func (c *Cache) Clean() (removed int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, ent := range c.store {
		if c.engine.IsExpired(ent) {
			c.deleteLocked(key, notify.Expired)
			c.engine.Metrics.Expire()
			removed++
		}
	}
	return removed
}

// Clear removes every entry, expired or not. With no listener configured
// this is an O(1) reset of both substructures; with one, entries are
// enumerated first so each removal is announced.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.notifier != nil {
		for _, key := range c.order.Keys() {
			ent := c.store[key]
			c.notifier.Notify(notify.Event{Key: key, Value: ent.Value, Reason: notify.Cleared})
		}
	}

	clear(c.store)
	c.order.Reset()
}

// ContainsKey reports whether key is present and not expired. Unlike Get
// it promotes nothing: asking about a key is not using it.
func (c *Cache) ContainsKey(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.store[key]
	return ok && !c.engine.IsExpired(ent)
}

// ContainsValue reports whether some live entry holds the given value,
// compared by deep equality. The scan stops at the first match.
func (c *Cache) ContainsValue(value any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ent := range c.store {
		if c.engine.IsExpired(ent) {
			continue
		}
		if reflect.DeepEqual(ent.Value, value) {
			return true
		}
	}
	return false
}

// Keys returns every live, non-expired key, ordered least to most
// recently used. Expired-but-unswept keys are hidden here exactly as they
// are from Get.
func (c *Cache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, c.order.Len())
	for _, key := range c.order.Keys() {
		if !c.engine.IsExpired(c.store[key]) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Size returns the number of live, non-expired entries. Expired entries
// still occupying the store do not count.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, ent := range c.store {
		if !c.engine.IsExpired(ent) {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no live entry remains. It can be true while
// expired entries still await the sweep. The scan stops at the first live
// entry.
func (c *Cache) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ent := range c.store {
		if !c.engine.IsExpired(ent) {
			return false
		}
	}
	return true
}

/*
Close stops the background sweeper and drains pending removal
notifications. It is idempotent and safe to call concurrently.

Close does NOT drop the stored data: the cache remains usable for every
ordinary operation afterwards, only the periodic sweep and the listener
stop. Events queued before Close are delivered; removals after Close are
silent.
*/
func (c *Cache) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	notifier := c.notifier
	c.notifier = nil
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()

	if notifier != nil {
		notifier.Close()
	}
}
