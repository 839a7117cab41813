package nodecache

import (
	"errors"
	"fmt"
	"time"

	"github.com/rudiculous/node-cache/expiration"
	"github.com/rudiculous/node-cache/notify"
	"github.com/rudiculous/node-cache/types"
)

// DefaultSweepInterval is how often the background sweeper runs when
// WithSweepInterval does not say otherwise.
const DefaultSweepInterval = 5 * time.Minute

// Option configures a Cache under construction. Options run before any
// background goroutine starts, so a rejected option cannot leak one.
type Option func(*Cache) error

// WithSweepInterval sets how often the background sweeper runs Clean.
// Shorter intervals bound how long expired entries linger; longer ones
// cost less. Zero disables the sweeper entirely, for hosts and tests that
// drive Clean themselves. Negative intervals are rejected.
func WithSweepInterval(d time.Duration) Option {
	return func(c *Cache) error {
		if d < 0 {
			return fmt.Errorf("sweep interval must not be negative, got %v", d)
		}
		c.sweepInterval = d
		return nil
	}
}

// WithCapacity bounds how many entries the cache stores, expired ones
// included. A put that pushes the store past the bound evicts least
// recently used entries until it fits. The default is unbounded.
func WithCapacity(n int) Option {
	return func(c *Cache) error {
		if n <= 0 {
			return fmt.Errorf("capacity must be positive, got %d", n)
		}
		c.capacity = n
		return nil
	}
}

// WithExpirationPolicy selects which timestamp an entry's max age counts
// from. The default is expiration.SinceUpdate. An unknown name is a
// caller bug and panics.
func WithExpirationPolicy(name expiration.PolicyName) Option {
	return func(c *Cache) error {
		c.engine.Expiration = expiration.New(name)
		return nil
	}
}

// WithMetrics installs a metrics recorder. Implementations must be safe
// for concurrent use. The default discards everything.
func WithMetrics(m types.Metrics) Option {
	return func(c *Cache) error {
		if m == nil {
			return errors.New("nil metrics")
		}
		c.engine.Metrics = m
		return nil
	}
}

// WithClock substitutes the time source used for every timestamp and
// expiry decision. Tests use this to control time instead of sleeping.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) error {
		if now == nil {
			return errors.New("nil clock")
		}
		c.engine.Clock = now
		return nil
	}
}

// WithLoader installs the backing-store loader behind GetOrLoad.
func WithLoader(l types.Loader) Option {
	return func(c *Cache) error {
		if l == nil {
			return errors.New("nil loader")
		}
		c.loader = l
		return nil
	}
}

// WithRemovalListener registers fn to hear about every entry that leaves
// the cache, with the reason it left. Delivery is asynchronous through a
// queue of the given size; events past a full queue are dropped rather
// than allowed to stall cache operations.
func WithRemovalListener(fn notify.Listener, buffer int) Option {
	return func(c *Cache) error {
		if fn == nil {
			return errors.New("nil removal listener")
		}
		if buffer <= 0 {
			return fmt.Errorf("removal listener buffer must be positive, got %d", buffer)
		}
		c.listener = fn
		c.notifyBuffer = buffer
		return nil
	}
}
