package api

import (
	"context"

	"github.com/rudiculous/node-cache/types"
)

/*
Cache defines the PUBLIC API of the cache.
This is a contract that guarantees certain behaviors without exposing
internals. All of the details (the entry store, the recency list,
expiration policies, locking, sweeping, loading, notification delivery)
are hidden behind this interface.
*/
type Cache interface {

	/*
		Put stores a key-value pair WITHOUT a max age of its own.

		BEHAVIOR:
		---------
		- New key: the entry never expires
		- Existing key: the value and write timestamps are refreshed, and
		  the entry KEEPS the max age it already had
		- The key becomes the most recently used

		IMPORTANT:
		----------
		Omitting the max age and explicitly asking for "unlimited" are
		different requests. Put never shortens or extends an existing
		entry's lifetime; PutWithMaxAge always resets it.
	*/
	Put(key string, value any)

	/*
		PutWithMaxAge stores a key-value pair with an explicit max age.

		BEHAVIOR:
		---------
		- The given budget replaces whatever the entry had before
		- types.Forever() explicitly makes the entry immortal
		- types.MaxAgeFor(0) makes the entry expired on arrival
		- A negative duration is a caller bug and panics
	*/
	PutWithMaxAge(key string, value any, age types.MaxAge)

	/*
		Get retrieves the value associated with the given key.

		BEHAVIOR:
		---------
		1. If the key exists and is NOT expired:
		   - Return (value, true), stamp the access time, and promote the
		     key to most recently used

		2. If the key does NOT exist, or exists but is expired:
		   - Return (nil, false) and mutate NOTHING
		   - An expired entry is NOT removed here; it stays hidden in the
		     store until the sweep or an explicit removal gets it
	*/
	Get(key string) (value any, ok bool)

	/*
		GetOrDefault is Get with a fallback: the stored value on a hit,
		def on a miss.
	*/
	GetOrDefault(key string, def any) any

	/*
		GetOrLoad retrieves the value, loading it from the backing store
		on a miss.

		BEHAVIOR:
		---------
		- Concurrent callers of the same missing key share ONE load
		- The loaded value is cached with the max age the loader assigns
		- Load errors are returned to every waiting caller and nothing is
		  cached

		Requires a loader; caches built without one panic here.
	*/
	GetOrLoad(ctx context.Context, key string) (any, error)

	/*
		Remove deletes a key immediately, expired or not.

		BEHAVIOR:
		---------
		- Returns (stored value, true) when the key was present
		- Returns (nil, false) when it was not

		This operation is idempotent: removing an absent key is safe and
		changes nothing.
	*/
	Remove(key string) (value any, ok bool)

	/*
		RemoveLRU deletes the least recently used entry, irrespective of
		its expiration state, and returns the value it held.

		USE CASES:
		----------
		- Caller-driven eviction when memory runs short
		- Bounding the cache by hand instead of WithCapacity
	*/
	RemoveLRU() (value any, ok bool)

	/*
		IsExpired reports whether the entry under key is past its max age.

		RETURN VALUES:
		--------------
		(false, true) : present; still fresh, or never expires
		(true, true)  : present but past due, awaiting the sweep
		(_, false)    : no such key
	*/
	IsExpired(key string) (expired, ok bool)

	/*
		Clean removes every expired entry right now and reports how many
		went. This is exactly what the background sweeper runs on its
		interval.

		The sweep is synchronous and holds the cache lock until every
		expired entry is gone. After Clean returns, no expired entry
		remains in the store.
	*/
	Clean() (removed int)

	/*
		Clear removes ALL entries regardless of expiration state.
	*/
	Clear()

	/*
		ContainsKey reports whether key is present and not expired. It
		promotes nothing: asking about a key is not using it.
	*/
	ContainsKey(key string) bool

	/*
		ContainsValue reports whether some live entry holds the given
		value, compared by deep equality. Scanning stops at the first
		match.
	*/
	ContainsValue(value any) bool

	/*
		Keys returns every live, non-expired key, least recently used
		first. Expired-but-unswept keys are hidden exactly as they are
		from Get.
	*/
	Keys() []string

	/*
		Size returns the number of live, non-expired entries. It can be
		smaller than the number of entries physically in the store while
		expired ones await the sweep.
	*/
	Size() int

	/*
		IsEmpty reports whether no live entry remains. True does not mean
		the store is physically empty: expired entries may still be
		waiting for the sweep.
	*/
	IsEmpty() bool

	/*
		Inspect returns a read-only snapshot of EVERY stored entry in
		recency order, including expired ones: the one window into the
		"hidden but present" state.

		Non-authoritative; for diagnostics and tests.
	*/
	Inspect() []types.EntryView

	/*
		Close stops the background sweeper and drains pending removal
		notifications. Idempotent. The cache remains usable afterwards;
		only background work stops.

		WHEN TO CALL:
		-------------
		- Application shutdown
		- Graceful termination
		- Test cleanup
	*/
	Close()
}
