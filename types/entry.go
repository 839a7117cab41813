package types

import "time"

/*
CacheEntry is one stored key/value pair plus the bookkeeping that drives
expiration and sweeping.

Ownership:
----------
The cache's entry store is the only owner of a CacheEntry. The recency list
refers to entries by key alone and never holds a second reference, so an
entry disappears completely the moment the store drops it.

All timestamp mutation happens under the cache lock; entries themselves
carry no synchronization.
*/
type CacheEntry struct {
	// Key is immutable for the entry's lifetime and unique in the store.
	Key string

	// Value is the stored payload, replaced in place on update.
	Value any

	// CreatedAt is set once at first insertion and never moves.
	CreatedAt time.Time

	// LastUpdatedAt is set at insertion and on every value replacement.
	// The default expiration policy measures an entry's age from here.
	LastUpdatedAt time.Time

	// LastAccessedAt is set at insertion and on every successful read or
	// write. Informational under the default policy; the sliding policy
	// measures age from here instead.
	LastAccessedAt time.Time

	// MaxAge is the entry's expiration budget. The zero value means the
	// entry never expires.
	MaxAge MaxAge
}

// EntryView is a read-only diagnostic summary of one entry. Views are
// produced by the cache's Inspect snapshot in recency order and include
// entries that are already past due. The elapsed fields are rendered
// relative to the moment the snapshot was taken.
type EntryView struct {
	Key   string
	Value any

	// Age is the time since the entry was first created.
	Age time.Duration

	// SinceUpdate is the time since the value was last replaced.
	SinceUpdate time.Duration

	// SinceAccess is the time since the entry was last read or written.
	SinceAccess time.Duration

	// MaxAge is the entry's expiration budget.
	MaxAge MaxAge

	// ExpiresAt is the projected instant the entry falls due. Zero when
	// the entry never expires.
	ExpiresAt time.Time

	// ExpiresIn is the time remaining until ExpiresAt, negative once the
	// entry is past due, and zero when the entry never expires.
	ExpiresIn time.Duration

	// Expired reports whether the entry was past due at snapshot time.
	Expired bool
}
