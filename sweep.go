package nodecache

import (
	"context"
	"time"
)

// sweepLoop runs Clean on a fixed interval until the context is canceled.
// It owns nothing but the ticker; each tick takes the cache lock exactly
// like a caller-invoked Clean would.
func (c *Cache) sweepLoop(ctx context.Context) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Clean()
		}
	}
}
