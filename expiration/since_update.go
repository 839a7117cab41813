package expiration

import (
	"time"

	"github.com/rudiculous/node-cache/types"
)

/*
sinceUpdate expires an entry a fixed duration after its last write. Reading
the entry does not push the deadline forward, so even a heavily used entry
goes stale once its max age has passed since the last put.

A max age of zero means the entry is already expired the moment it can be
read back.
*/
type sinceUpdate struct{}

func (sinceUpdate) IsExpired(ent *types.CacheEntry, now time.Time) bool {
	d, limited := ent.MaxAge.Limited()
	if !limited {
		return false
	}
	return !now.Before(ent.LastUpdatedAt.Add(d))
}

func (sinceUpdate) ExpiresAt(ent *types.CacheEntry) (time.Time, bool) {
	d, limited := ent.MaxAge.Limited()
	if !limited {
		return time.Time{}, false
	}
	return ent.LastUpdatedAt.Add(d), true
}
