// Package similarity ranks players by closeness in the reduced coordinate space.
package similarity

import (
	"context"
	"math"
	"sort"

	"github.com/adityasharma624/Player-Role-Dashboard/internal/adapters/repository"
	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/model"
)

// Neighbor is one similar-player result.
type Neighbor struct {
	Player   model.PlayerRecord
	Distance float64
}

// Engine computes nearest neighbors over a fixed catalog. It holds no state
// beyond the catalog reference and is safe for concurrent use.
type Engine struct {
	catalog *repository.Catalog
}

// New creates an engine over the given catalog.
func New(catalog *repository.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Similar returns up to k players closest to playerID by Euclidean distance
// over the coordinate vectors, nearest first, ties broken by ascending display
// name. The target itself is always excluded. When sameClusterOnly is set the
// pool is restricted to players sharing the target's cluster. A pool smaller
// than k (or empty, e.g. a singleton cluster) is not an error.
func (e *Engine) Similar(ctx context.Context, playerID string, k int, sameClusterOnly bool) ([]Neighbor, error) {
	target, err := e.catalog.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, nil
	}

	neighbors := make([]Neighbor, 0, e.catalog.Count())
	for _, p := range e.catalog.All(ctx) {
		if p.ID == target.ID {
			continue
		}
		if sameClusterOnly && p.ClusterID != target.ClusterID {
			continue
		}
		neighbors = append(neighbors, Neighbor{
			Player:   p,
			Distance: euclidean(target.Coordinates, p.Coordinates),
		})
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		if neighbors[i].Distance != neighbors[j].Distance {
			return neighbors[i].Distance < neighbors[j].Distance
		}
		return neighbors[i].Player.DisplayName < neighbors[j].Player.DisplayName
	})
	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors, nil
}

// euclidean assumes equal-length vectors, which the catalog guarantees.
func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
