package probe

import (
	"log"
)

// matchRank maps a match kind to its expected ranking band.
func matchRank(kind string) int {
	switch kind {
	case "exact":
		return 0
	case "prefix":
		return 1
	case "substring":
		return 2
	default:
		return 3
	}
}

// verifySearchOrdering checks that every result list is banded
// exact, prefix, substring with no band appearing after a later one.
func verifySearchOrdering(results []searchResult, stats *Stats) {
	log.Println("verifying search result ordering...")

	violations := 0
	for _, res := range results {
		for i := 1; i < len(res.matches); i++ {
			if matchRank(res.matches[i].MatchKind) < matchRank(res.matches[i-1].MatchKind) {
				violations++
				log.Printf("ordering violation for query %q: %q (%s) after %q (%s)",
					res.query,
					res.matches[i].Name, res.matches[i].MatchKind,
					res.matches[i-1].Name, res.matches[i-1].MatchKind)
				break
			}
		}
	}

	stats.OrderingViolations += violations
	if violations == 0 {
		log.Println("search ordering verified")
	}
}

// verifyNeighbors checks distance monotonicity, target exclusion and,
// when requested, cluster containment for every similarity result.
func verifyNeighbors(config *Config, results []similarResult, stats *Stats) {
	log.Println("verifying similarity results...")

	violations := 0
	for _, res := range results {
		for i, n := range res.neighbors {
			if n.ID == res.target.ID {
				violations++
				log.Printf("target %q appears in its own neighbor list", res.target.ID)
				break
			}
			if i > 0 && n.Distance < res.neighbors[i-1].Distance {
				violations++
				log.Printf("distances not ascending for target %q at position %d", res.target.ID, i)
				break
			}
			if config.SameCluster && n.ClusterID != res.target.ClusterID {
				violations++
				log.Printf("neighbor %q of %q escaped cluster %d", n.ID, res.target.ID, res.target.ClusterID)
				break
			}
		}
		if len(res.neighbors) > config.TopK {
			violations++
			log.Printf("target %q received %d neighbors, requested %d", res.target.ID, len(res.neighbors), config.TopK)
		}
	}

	stats.OrderingViolations += violations
	if violations == 0 {
		log.Println("similarity results verified")
	}
}
