package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/adityasharma624/Player-Role-Dashboard/pkg/logger"
)

// Run executes the complete query probe.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting query probe",
		logger.String("baseURL", config.BaseURL),
		logger.Int("queries", config.NumQueries),
		logger.Int("workers", config.Workers),
		logger.Int("topK", config.TopK),
		logger.String("timeout", config.Timeout.String()),
		logger.Any("sameCluster", config.SameCluster),
		logger.Any("verbose", config.Verbose))

	client := newHTTPClient(config.Timeout)

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, client, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Fetch cluster profiles
	clusters, err := fetchClusters(ctx, client, config)
	if err != nil {
		return fmt.Errorf("cluster retrieval failed: %w", err)
	}
	logger.Get().Info(ctx, "fetched role clusters", logger.Int("count", len(clusters)))

	// Step 3: Harvest a player sample via search
	players, err := harvestPlayers(ctx, client, config, stats)
	if err != nil {
		return fmt.Errorf("player harvest failed: %w", err)
	}

	// Step 4: Run concurrent search queries
	searchResults, err := runSearches(ctx, client, config, players, stats)
	if err != nil {
		return fmt.Errorf("search queries failed: %w", err)
	}

	// Step 5: Run concurrent similarity queries
	similarResults, err := runSimilarQueries(ctx, client, config, players, stats)
	if err != nil {
		return fmt.Errorf("similarity queries failed: %w", err)
	}

	// Step 6: Verify invariants locally
	verifySearchOrdering(searchResults, stats)
	verifyNeighbors(config, similarResults, stats)

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	if stats.OrderingViolations > 0 {
		return fmt.Errorf("probe found %d ordering violations", stats.OrderingViolations)
	}

	logger.Get().Info(ctx, "probe completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// fetchClusters retrieves the role cluster profiles.
func fetchClusters(ctx context.Context, client *HTTPClient, config *Config) ([]ClusterInfo, error) {
	var clusters []ClusterInfo
	if err := client.getJSON(ctx, config.BaseURL+"/clusters", &clusters); err != nil {
		return nil, err
	}
	if len(clusters) == 0 {
		return nil, fmt.Errorf("service reported no role clusters")
	}
	return clusters, nil
}

// displayFinalStats prints the final probe statistics.
func displayFinalStats(stats *Stats) {
	var successRate, queriesPerSecond float64

	totalQueries := stats.SearchesRun + stats.SearchFailures + stats.SimilarRun + stats.SimilarFailures
	if totalQueries > 0 {
		successRate = float64(stats.SearchesRun+stats.SimilarRun) / float64(totalQueries) * PercentageMultiplier
	}

	if stats.Duration > 0 {
		queriesPerSecond = float64(totalQueries) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("playersHarvested", stats.PlayersHarvested),
		logger.Int("searchesRun", stats.SearchesRun),
		logger.Int("searchFailures", stats.SearchFailures),
		logger.Int("similarRun", stats.SimilarRun),
		logger.Int("similarFailures", stats.SimilarFailures),
		logger.Int("orderingViolations", stats.OrderingViolations),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("queriesPerSecond", queriesPerSecond))
}
