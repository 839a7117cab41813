package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/atomic"

	nodecache "github.com/rudiculous/node-cache"
	"github.com/rudiculous/node-cache/notify"
	"github.com/rudiculous/node-cache/types"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the cache's behavior step by step",
	Run: func(cmd *cobra.Command, args []string) {
		sweep, _ := cmd.Flags().GetDuration("sweep-interval")
		capacity, _ := cmd.Flags().GetInt("capacity")
		expireAfter, _ := cmd.Flags().GetDuration("expire-after")
		verbose, _ := cmd.Flags().GetBool("verbose")
		runDemo(sweep, capacity, expireAfter, verbose)
	},
}

func init() {
	demoCmd.Flags().Duration("sweep-interval", 30*time.Second, "How often the background sweep runs")
	demoCmd.Flags().Int("capacity", 8, "Maximum number of stored entries")
	demoCmd.Flags().Duration("expire-after", time.Second, "Max age given to the expiring entries")
}

// slowStore stands in for a database: every load takes a while, so the
// singleflight section visibly collapses concurrent misses into one load.
type slowStore struct {
	loads atomic.Int64
}

func (s *slowStore) Load(ctx context.Context, key string) (any, types.MaxAge, error) {
	s.loads.Inc()
	time.Sleep(100 * time.Millisecond)
	return "loaded-value-of-" + key, types.MaxAgeFor(time.Minute), nil
}

func runDemo(sweep time.Duration, capacity int, expireAfter time.Duration, verbose bool) {
	logger := newLogger(verbose)
	metrics := &types.CounterMetrics{}
	store := &slowStore{}

	c, err := nodecache.New(
		nodecache.WithSweepInterval(sweep),
		nodecache.WithCapacity(capacity),
		nodecache.WithMetrics(metrics),
		nodecache.WithLoader(store),
		nodecache.WithRemovalListener(func(ev notify.Event) {
			logger.Info("entry left the cache", "key", ev.Key, "reason", ev.Reason)
		}, 128),
	)
	if err != nil {
		logger.Error("cache construction failed", "error", err)
		os.Exit(1)
	}

	fmt.Println("\n==================== 1) PUT / GET ====================")
	c.Put("greeting", "hello")
	v, ok := c.Get("greeting")
	logger.Info("read back", "key", "greeting", "value", v, "hit", ok)

	fmt.Println("\n==================== 2) MAX AGE ====================")
	c.PutWithMaxAge("token", "tok-e9a41", types.MaxAgeFor(expireAfter))
	logger.Info("stored with a deadline", "key", "token", "maxAge", expireAfter)

	time.Sleep(expireAfter + 50*time.Millisecond)

	_, ok = c.Get("token")
	expired, present := c.IsExpired("token")
	logger.Info("past the deadline",
		"hit", ok,
		"expired", expired,
		"stillStored", present,
		"size", c.Size(),
	)

	// Inspect is the one view that still shows the expired entry.
	for _, view := range c.Inspect() {
		logger.Info("inspect",
			"key", view.Key,
			"maxAge", view.MaxAge.String(),
			"expired", view.Expired,
		)
	}

	removed := c.Clean()
	logger.Info("manual sweep", "removed", removed)

	fmt.Println("\n==================== 3) RECENCY ORDER ====================")
	c.Put("x", 1)
	c.Put("y", 2)
	c.Put("z", 3)
	c.Get("x") // promotes x past y and z

	v, _ = c.RemoveLRU()
	logger.Info("least recently used went first", "value", v, "remaining", c.Keys())

	fmt.Println("\n==================== 4) CAPACITY ====================")
	for i := 0; i < capacity+4; i++ {
		c.Put(fmt.Sprintf("bulk-%d", i), i)
	}
	logger.Info("after overfilling", "size", c.Size(), "capacity", capacity)

	fmt.Println("\n==================== 5) SINGLEFLIGHT ====================")
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			val, err := c.GetOrLoad(context.Background(), "user:42")
			if err != nil {
				logger.Error("load failed", "goroutine", id, "error", err)
				return
			}
			logger.Info("got shared result", "goroutine", id, "value", val)
		}(i)
	}
	wg.Wait()
	logger.Info("backing store was consulted", "loads", store.loads.Load())

	fmt.Println("\n==================== METRICS ====================")
	snap := metrics.Snapshot()
	logger.Info("counters",
		"hits", snap.Hits,
		"misses", snap.Misses,
		"evictions", snap.Evictions,
		"expired", snap.Expired,
		"loads", snap.Loads,
	)

	fmt.Println("\n==================== SHUTDOWN ====================")
	c.Close()
	logger.Info("cache closed cleanly")
}
