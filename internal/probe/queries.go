package probe

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
)

// queryKind selection constants.
const (
	queryKindDivisor = 4

	caseFullName   = 0
	casePrefix     = 1
	caseSubstring  = 2
	caseUppercased = 3
)

// searchResult pairs a query with the matches it returned.
type searchResult struct {
	query   string
	matches []Match
}

// similarResult pairs a target player with its neighbors.
type similarResult struct {
	target    Summary
	neighbors []Neighbor
}

// buildQuery derives one search query from a harvested player name.
func buildQuery(name string) string {
	n, _ := rand.Int(rand.Reader, big.NewInt(queryKindDivisor))
	switch n.Int64() {
	case caseFullName:
		return name
	case casePrefix:
		if len(name) > 3 {
			return name[:3]
		}
		return name
	case caseSubstring:
		if fields := strings.Fields(name); len(fields) > 0 {
			return fields[len(fields)-1]
		}
		return name
	case caseUppercased:
		return strings.ToUpper(name)
	default:
		return name
	}
}

// runSearches fires concurrent search queries derived from harvested names.
func runSearches(ctx context.Context, client *HTTPClient, config *Config, players []Summary, stats *Stats) ([]searchResult, error) {
	log.Printf("running %d search queries with %d workers...", config.NumQueries, config.Workers)

	var (
		run      int64
		failed   int64
		resultMu sync.Mutex
		results  []searchResult
	)

	queryChan := make(chan string, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for query := range queryChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				endpoint := config.BaseURL + "/search?q=" + url.QueryEscape(query)
				var matches []Match
				if err := client.getJSON(ctx, endpoint, &matches); err != nil {
					atomic.AddInt64(&failed, 1)
					if config.Verbose {
						log.Printf("search %q failed: %v", query, err)
					}
					continue
				}
				atomic.AddInt64(&run, 1)
				resultMu.Lock()
				results = append(results, searchResult{query: query, matches: matches})
				resultMu.Unlock()
			}
		}()
	}

	go func() {
		defer close(queryChan)
		for i := 0; i < config.NumQueries; i++ {
			query := buildQuery(players[i%len(players)].Name)
			select {
			case <-ctx.Done():
				return
			case queryChan <- query:
			}
		}
	}()

	wg.Wait()

	stats.SearchesRun = int(atomic.LoadInt64(&run))
	stats.SearchFailures = int(atomic.LoadInt64(&failed))
	if stats.SearchesRun == 0 {
		return nil, fmt.Errorf("all %d search queries failed", config.NumQueries)
	}
	log.Printf("searches completed: %d ok, %d failed", stats.SearchesRun, stats.SearchFailures)
	return results, nil
}

// runSimilarQueries fetches neighbors for every harvested player.
func runSimilarQueries(ctx context.Context, client *HTTPClient, config *Config, players []Summary, stats *Stats) ([]similarResult, error) {
	log.Printf("running %d similarity queries with %d workers...", len(players), config.Workers)

	var (
		run      int64
		failed   int64
		resultMu sync.Mutex
		results  []similarResult
	)

	playerChan := make(chan Summary, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for target := range playerChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				endpoint := fmt.Sprintf("%s/players/%s/similar?k=%d&same_cluster=%t",
					config.BaseURL, url.PathEscape(target.ID), config.TopK, config.SameCluster)
				var neighbors []Neighbor
				if err := client.getJSON(ctx, endpoint, &neighbors); err != nil {
					atomic.AddInt64(&failed, 1)
					if config.Verbose {
						log.Printf("similar %q failed: %v", target.ID, err)
					}
					continue
				}
				atomic.AddInt64(&run, 1)
				resultMu.Lock()
				results = append(results, similarResult{target: target, neighbors: neighbors})
				resultMu.Unlock()
			}
		}()
	}

	go func() {
		defer close(playerChan)
		for _, p := range players {
			select {
			case <-ctx.Done():
				return
			case playerChan <- p:
			}
		}
	}()

	wg.Wait()

	stats.SimilarRun = int(atomic.LoadInt64(&run))
	stats.SimilarFailures = int(atomic.LoadInt64(&failed))
	if stats.SimilarRun == 0 {
		return nil, fmt.Errorf("all %d similarity queries failed", len(players))
	}
	log.Printf("similarity queries completed: %d ok, %d failed", stats.SimilarRun, stats.SimilarFailures)
	return results, nil
}
