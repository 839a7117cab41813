package expiration

import (
	"time"

	"github.com/rudiculous/node-cache/types"
)

/*
sinceAccess expires an entry a fixed duration after it was last touched,
where both reads and writes count as a touch. Every successful read pushes
the deadline forward, so entries that keep getting used stay alive and only
the ones nobody asks for expire.
*/
type sinceAccess struct{}

func (sinceAccess) IsExpired(ent *types.CacheEntry, now time.Time) bool {
	d, limited := ent.MaxAge.Limited()
	if !limited {
		return false
	}
	return !now.Before(ent.LastAccessedAt.Add(d))
}

func (sinceAccess) ExpiresAt(ent *types.CacheEntry) (time.Time, bool) {
	d, limited := ent.MaxAge.Limited()
	if !limited {
		return time.Time{}, false
	}
	return ent.LastAccessedAt.Add(d), true
}
