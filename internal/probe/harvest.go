package probe

import (
	"context"
	"fmt"
	"net/url"

	"github.com/adityasharma624/Player-Role-Dashboard/pkg/logger"
)

// harvestPlayers collects a sample of players by sweeping single-letter
// search queries. The probe has no access to the dataset files, so the
// search endpoint itself is the only source of valid player ids.
func harvestPlayers(ctx context.Context, client *HTTPClient, config *Config, stats *Stats) ([]Summary, error) {
	logger.Get().Info(ctx, "harvesting players via search sweep")

	seen := make(map[string]bool)
	var players []Summary

	for letter := 'a'; letter <= 'z'; letter++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during harvest: %w", ctx.Err())
		default:
		}

		endpoint := fmt.Sprintf("%s/search?q=%s&limit=%d", config.BaseURL, url.QueryEscape(string(letter)), harvestLimit)
		var matches []Match
		if err := client.getJSON(ctx, endpoint, &matches); err != nil {
			return nil, fmt.Errorf("harvest query %q failed: %w", string(letter), err)
		}

		for _, m := range matches {
			if !seen[m.ID] {
				seen[m.ID] = true
				players = append(players, m.Summary)
			}
		}
	}

	if len(players) == 0 {
		return nil, fmt.Errorf("harvest found no players; is the catalog loaded?")
	}

	stats.PlayersHarvested = len(players)
	logger.Get().Info(ctx, "harvested players", logger.Int("count", len(players)))
	return players, nil
}
