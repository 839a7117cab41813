package nodecache

import "github.com/rudiculous/node-cache/types"

/*
Inspect returns a diagnostic snapshot of every stored entry, ordered least
to most recently used, INCLUDING entries that are past due but not yet
swept, which every other read operation hides. That makes it the one place
the "hidden but present" state is visible.

All views in one snapshot are rendered against a single clock read, so
their elapsed fields are mutually consistent. The snapshot is a copy;
holding it does not pin entries or block the cache.

Non-authoritative: meant for diagnostics and tests, not for program logic.
*/
func (c *Cache) Inspect() []types.EntryView {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.engine.Now()
	views := make([]types.EntryView, 0, c.order.Len())
	for _, key := range c.order.Keys() {
		views = append(views, c.engine.View(c.store[key], now))
	}
	return views
}
