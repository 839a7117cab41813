package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	nodecache "github.com/rudiculous/node-cache"
	"github.com/rudiculous/node-cache/types"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Hammer one cache from many goroutines and report throughput",
	Run: func(cmd *cobra.Command, args []string) {
		capacity, _ := cmd.Flags().GetInt("capacity")
		preload, _ := cmd.Flags().GetInt("preload")
		goroutines, _ := cmd.Flags().GetInt("goroutines")
		ops, _ := cmd.Flags().GetInt("ops")
		verbose, _ := cmd.Flags().GetBool("verbose")
		runBench(capacity, preload, goroutines, ops, verbose)
	},
}

func init() {
	benchCmd.Flags().Int("capacity", 200000, "Maximum number of stored entries")
	benchCmd.Flags().Int("preload", 100000, "Keys stored before the run")
	benchCmd.Flags().Int("goroutines", 200, "Concurrent workers")
	benchCmd.Flags().Int("ops", 5000, "Operations per worker")
}

func runBench(capacity, preload, goroutines, ops int, verbose bool) {
	logger := newLogger(verbose)
	metrics := &types.CounterMetrics{}

	logger.Info("config",
		"capacity", capacity,
		"preload", preload,
		"goroutines", goroutines,
		"opsPerGoroutine", ops,
	)

	c, err := nodecache.New(
		nodecache.WithCapacity(capacity),
		nodecache.WithMetrics(metrics),
		nodecache.WithSweepInterval(time.Minute),
	)
	if err != nil {
		logger.Error("cache construction failed", "error", err)
		os.Exit(1)
	}

	logger.Info("preloading")
	for i := 0; i < preload; i++ {
		c.PutWithMaxAge(fmt.Sprintf("key-%d", i), i, types.MaxAgeFor(time.Minute))
	}

	logger.Info("warming up")
	for i := 0; i < 10000; i++ {
		c.Get(fmt.Sprintf("key-%d", i%preload))
	}

	logger.Info("running")
	start := time.Now()

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < ops; j++ {
				key := fmt.Sprintf("key-%d", j%preload)
				// Mostly reads with an occasional write, the shape most
				// caches see in practice.
				if j%10 == 0 {
					c.Put(key, j)
				} else {
					c.Get(key)
				}
			}
		}(i)
	}
	wg.Wait()

	duration := time.Since(start)
	totalOps := goroutines * ops
	snap := metrics.Snapshot()

	logger.Info("results",
		"totalOps", totalOps,
		"duration", duration,
		"opsPerSec", fmt.Sprintf("%.2f", float64(totalOps)/duration.Seconds()),
		"hits", snap.Hits,
		"misses", snap.Misses,
		"evictions", snap.Evictions,
	)

	c.Close()
}
