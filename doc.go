/*
Package nodecache is an in-process key/value cache that combines per-entry
max-age expiration with least-recently-used ordering.

Every entry may carry its own max age, counted from its last update (or
last access, under the sliding policy). A background sweeper removes
expired entries on a fixed interval; between sweeps, expired entries are
hidden from readers but still present, and Inspect shows them. The recency
list orders all entries from least to most recently used, feeding
RemoveLRU and the optional capacity bound.

# Usage

	c, err := nodecache.New(nodecache.WithSweepInterval(time.Minute))
	if err != nil {
		// only configuration errors end up here
	}
	defer c.Close()

	c.Put("session", user)                                      // never expires
	c.PutWithMaxAge("token", tok, types.MaxAgeFor(time.Minute)) // expires in a minute

	if v, ok := c.Get("token"); ok {
		use(v)
	}

# Concurrency

All operations are safe for concurrent use. One exclusive lock guards the
store and the recency order together, because they must never be observed
as inconsistent relative to each other. Operations do not suspend or await
I/O while holding it; only a sweep over a very large store holds it for
long.

# Shutdown

Close stops the sweeper and drains pending removal notifications. The
cache stays usable afterwards; only the background work ends.
*/
package nodecache
