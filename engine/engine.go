package engine

import (
	"time"

	"github.com/rudiculous/node-cache/expiration"
	"github.com/rudiculous/node-cache/types"
)

/*
Engine is the "brain" of the cache. It is responsible for the behavior of
entries, NOT their storage. This acts as the policy layer.

It decides:
- What "now" means (the clock is injectable, so tests control time)
- Which timestamps an operation stamps onto an entry
- When an entry counts as expired
- How an entry is rendered for diagnostics

It does NOT:
- Store data
- Track recency order
- Handle locking
*/
type Engine struct {

	// Expiration decides when a cache entry is too old to serve.
	Expiration expiration.Policy

	// Metrics is how we keep track of what the cache is doing.
	// Hits, misses, evictions, expirations, loads.
	Metrics types.Metrics

	// Clock is the time source behind every timestamp and every expiry
	// decision. Production caches use the wall clock; tests substitute a
	// fake so expiry is deterministic.
	Clock func() time.Time
}

/*
New creates an Engine.

Every argument may be nil; nil means "the default". This avoids defensive
nil checks throughout the rest of the codebase: the cache can always call
straight through.
*/
func New(policy expiration.Policy, metrics types.Metrics, clock func() time.Time) *Engine {
	if policy == nil {
		policy = expiration.New(expiration.SinceUpdate)
	}
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		Expiration: policy,
		Metrics:    metrics,
		Clock:      clock,
	}
}

// Now reads the configured clock.
func (e *Engine) Now() time.Time {
	return e.Clock()
}

/*
IsExpired checks whether a cache entry is expired.

BEHAVIOR:
---------
- Delegates the decision to the configured expiration policy
- Reads the clock fresh on every call, so two checks of the same entry can
  disagree when the deadline falls between them
*/
func (e *Engine) IsExpired(ent *types.CacheEntry) bool {
	return e.Expiration.IsExpired(ent, e.Clock())
}

// ExpiresAt returns the instant the entry falls due under the configured
// policy. ok is false when the entry never expires.
func (e *Engine) ExpiresAt(ent *types.CacheEntry) (time.Time, bool) {
	return e.Expiration.ExpiresAt(ent)
}

// OnInsert stamps a brand-new entry: all three timestamps start at the
// same instant.
func (e *Engine) OnInsert(ent *types.CacheEntry) {
	now := e.Clock()
	ent.CreatedAt = now
	ent.LastUpdatedAt = now
	ent.LastAccessedAt = now
}

/*
OnUpdate refreshes an entry that is being written over.

CreatedAt is left alone: it records first insertion, never replacement.
The max age changes only when the caller supplied one explicitly, so a
plain update keeps whatever lifetime the entry already had. An expired
entry that has not been swept yet is refreshed like any other: the new
write gives it a fresh deadline.
*/
func (e *Engine) OnUpdate(ent *types.CacheEntry, value any, age types.MaxAge, explicit bool) {
	now := e.Clock()
	ent.Value = value
	ent.LastUpdatedAt = now
	ent.LastAccessedAt = now
	if explicit {
		ent.MaxAge = age
	}
}

// OnRead is called every time the cache successfully returns a value.
// Only the access timestamp moves; reads never touch the update time, so
// under the default policy a read does not extend an entry's life.
func (e *Engine) OnRead(ent *types.CacheEntry) {
	ent.LastAccessedAt = e.Clock()
}

// View renders a read-only diagnostic summary of the entry, with every
// elapsed field measured against the caller's snapshot instant. Passing
// one shared now keeps all views of a single snapshot consistent.
func (e *Engine) View(ent *types.CacheEntry, now time.Time) types.EntryView {
	v := types.EntryView{
		Key:         ent.Key,
		Value:       ent.Value,
		Age:         now.Sub(ent.CreatedAt),
		SinceUpdate: now.Sub(ent.LastUpdatedAt),
		SinceAccess: now.Sub(ent.LastAccessedAt),
		MaxAge:      ent.MaxAge,
		Expired:     e.Expiration.IsExpired(ent, now),
	}
	if at, ok := e.ExpiresAt(ent); ok {
		v.ExpiresAt = at
		v.ExpiresIn = at.Sub(now)
	}
	return v
}
