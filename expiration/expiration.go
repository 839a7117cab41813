// This file defines how cache entries expire over time.

package expiration

import (
	"time"

	"github.com/rudiculous/node-cache/types"
)

/*
Policy is the interface every expiration rule must follow. Instead of
hard-coding expiry logic into the cache, rules are pluggable so the anchor
an entry's max age counts from can be swapped easily.

A policy never mutates entries. The cache maintains the timestamps on every
entry; a policy only reads them and answers questions.
*/
type Policy interface {

	// IsExpired reports whether the entry is expired at the given moment.
	// An entry with an unlimited max age is never expired. The boundary is
	// inclusive: an entry is expired at exactly anchor+maxAge.
	IsExpired(*types.CacheEntry, time.Time) bool

	// ExpiresAt returns the instant the entry expires. ok is false when
	// the entry never expires.
	ExpiresAt(*types.CacheEntry) (at time.Time, ok bool)
}

// PolicyName is a simple identifier for supported expiration rules.
type PolicyName string

const (
	// SinceUpdate counts an entry's max age from the moment it was last
	// written. Reads do not extend an entry's life. This is the default.
	SinceUpdate PolicyName = "SINCE_UPDATE"

	// SinceAccess counts an entry's max age from the moment it was last
	// read or written, a "sliding" expiry. As long as the data keeps
	// getting used, it stays alive.
	SinceAccess PolicyName = "SINCE_ACCESS"
)

// New is a small factory function. Given a PolicyName, it creates the
// matching expiration policy.
func New(name PolicyName) Policy {
	switch name {
	case SinceUpdate:
		return sinceUpdate{}
	case SinceAccess:
		return sinceAccess{}
	default:
		panic("unknown expiration policy")
	}
}
