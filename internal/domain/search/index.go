// Package search resolves free-text queries to ranked player candidates.
package search

import (
	"context"
	"sort"
	"strings"

	"github.com/adityasharma624/Player-Role-Dashboard/internal/adapters/repository"
	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/model"
	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/normalize"
)

// MatchKind classifies how a query matched a player's search key. Lower
// values rank higher.
type MatchKind int

const (
	// MatchExact means the normalized query equals the full search key.
	MatchExact MatchKind = iota
	// MatchPrefix means the search key starts with the query.
	MatchPrefix
	// MatchSubstring means the query occurs elsewhere in the key.
	MatchSubstring
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchPrefix:
		return "prefix"
	case MatchSubstring:
		return "substring"
	default:
		return "unknown"
	}
}

// Match is one ranked search result.
type Match struct {
	Player model.PlayerRecord
	Kind   MatchKind
}

// Index resolves queries against a fixed catalog. The catalog never changes
// after construction, so the index holds a snapshot of its records and is safe
// for concurrent use.
type Index struct {
	players []model.PlayerRecord
}

// New builds an index over every record in the catalog.
func New(catalog *repository.Catalog) *Index {
	return &Index{players: catalog.All(context.Background())}
}

// Search returns up to limit candidates whose search key contains the
// normalized query, best matches first: exact full-key matches, then prefix
// matches, then other substring matches, each group ordered by ascending
// display name. An empty normalized query yields no results and no error.
//
// This is a linear scan; at catalog scale (hundreds of records) that beats
// maintaining an inverted index, and the ranking contract does not depend on
// the scan.
func (ix *Index) Search(_ context.Context, query string, limit int) []Match {
	key := normalize.Key(query)
	if key == "" || limit <= 0 {
		return nil
	}

	matches := make([]Match, 0, limit)
	for _, p := range ix.players {
		switch {
		case p.SearchKey == key:
			matches = append(matches, Match{Player: p, Kind: MatchExact})
		case strings.HasPrefix(p.SearchKey, key):
			matches = append(matches, Match{Player: p, Kind: MatchPrefix})
		case strings.Contains(p.SearchKey, key):
			matches = append(matches, Match{Player: p, Kind: MatchSubstring})
		}
	}

	// Rank the full candidate set before truncating to limit.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Kind != matches[j].Kind {
			return matches[i].Kind < matches[j].Kind
		}
		return matches[i].Player.DisplayName < matches[j].Player.DisplayName
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
