package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/adityasharma624/Player-Role-Dashboard/internal/probe"
)

// Default configuration constants.
const (
	defaultNumQueries   = 1000
	defaultTopK         = 5
	defaultWorkers      = 2 // multiplier for runtime.NumCPU()
	defaultTimeout      = 30 * time.Second
	defaultProbeTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numQueries  = flag.Int("queries", defaultNumQueries, "Number of search queries to run")
		topK        = flag.Int("k", defaultTopK, "Neighbors to request per similarity query")
		workers     = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		sameCluster = flag.Bool("same-cluster", false, "Restrict similarity queries to the target's role cluster")
		logFile     = flag.String("log", "", "Log file for probe output (default: probe_log_TIMESTAMP.log)")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		probe.ShowHelp()
		return
	}

	// Setup logging
	if err := probe.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultProbeTimeout)
	defer cancel()

	// Create probe configuration
	config := &probe.Config{
		BaseURL:     *baseURL,
		NumQueries:  *numQueries,
		TopK:        *topK,
		Workers:     *workers,
		Timeout:     *timeout,
		SameCluster: *sameCluster,
		LogFile:     *logFile,
		Verbose:     *verbose,
	}

	// Run the probe
	if err := probe.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Probe failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
