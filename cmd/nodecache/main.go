package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nodecache",
	Short: "Walkthrough and load driver for the nodecache library",
	Long: "nodecache exercises the cache library from the outside: " +
		"`demo` walks through expiration, recency and loading step by step, " +
		"`bench` hammers one cache from many goroutines and reports throughput.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug output")
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(benchCmd)
}

func main() {
	Execute()
}
