// Package repository provides the immutable player catalog.
//
// A Catalog is built once from loader output, validated up front, and then
// shared read-only across concurrent readers. A new Catalog is built only when
// the underlying dataset changes; there is no incremental update path.
package repository

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/model"
	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/normalize"
)

// Catalog is the read-only collection of player records and cluster centroids.
type Catalog struct {
	players      []model.PlayerRecord // construction order, stable across All calls
	byID         map[string]int       // id -> index into players
	centroids    map[int]model.ClusterCentroid
	clusterSizes map[int]int
	clusterCount int // K
	dims         int // coordinate vector length
}

// Build validates raw records and constructs a Catalog. Any invariant
// violation fails the whole construction with ErrDataIntegrity; callers must
// not proceed with the returned catalog on error.
//
// Search keys are always recomputed from the display name so that the stored
// key is a pure function of it, regardless of what the loader supplied.
func Build(ctx context.Context, players []model.PlayerRecord, centroids []model.ClusterCentroid, opts ...Option) (*Catalog, error) {
	b := builder{probTolerance: defaultProbabilityTolerance}
	for _, opt := range opts {
		opt(&b)
	}

	c := &Catalog{
		players:      make([]model.PlayerRecord, 0, len(players)),
		byID:         make(map[string]int, len(players)),
		centroids:    make(map[int]model.ClusterCentroid, len(centroids)),
		clusterSizes: make(map[int]int),
	}
	var attrNames map[string]bool
	if len(players) > 0 {
		c.clusterCount = len(players[0].ClusterProbabilities)
		c.dims = len(players[0].Coordinates)
		attrNames = make(map[string]bool, len(players[0].Attributes))
		for name := range players[0].Attributes {
			attrNames[name] = true
		}
	}

	for _, p := range players {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: empty player id (name %q)", ErrDataIntegrity, p.DisplayName)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate player id %q", ErrDataIntegrity, p.ID)
		}
		if len(p.Coordinates) != c.dims {
			return nil, fmt.Errorf("%w: player %q has %d coordinates, catalog has %d",
				ErrDataIntegrity, p.ID, len(p.Coordinates), c.dims)
		}
		if err := validateAttributeSet(p, attrNames); err != nil {
			return nil, err
		}
		if err := c.validateClusterAssignment(p, b.probTolerance); err != nil {
			return nil, err
		}

		p.SearchKey = normalize.Key(p.DisplayName)
		c.byID[p.ID] = len(c.players)
		c.players = append(c.players, p)
		c.clusterSizes[p.ClusterID]++
	}

	for _, cen := range centroids {
		if cen.ClusterID < 0 || (c.clusterCount > 0 && cen.ClusterID >= c.clusterCount) {
			return nil, fmt.Errorf("%w: centroid cluster id %d out of range [0,%d)",
				ErrDataIntegrity, cen.ClusterID, c.clusterCount)
		}
		if _, dup := c.centroids[cen.ClusterID]; dup {
			return nil, fmt.Errorf("%w: duplicate centroid for cluster %d", ErrDataIntegrity, cen.ClusterID)
		}
		c.centroids[cen.ClusterID] = cen
	}

	return c, nil
}

// validateAttributeSet rejects records whose attribute names diverge from the
// set fixed by the first record. Attribute columns are decided once per
// dataset; a record with extra or missing names cannot be compared.
func validateAttributeSet(p model.PlayerRecord, attrNames map[string]bool) error {
	if len(p.Attributes) != len(attrNames) {
		return fmt.Errorf("%w: player %q has %d attributes, catalog has %d",
			ErrDataIntegrity, p.ID, len(p.Attributes), len(attrNames))
	}
	for name := range p.Attributes {
		if !attrNames[name] {
			return fmt.Errorf("%w: player %q carries unknown attribute %q", ErrDataIntegrity, p.ID, name)
		}
	}
	return nil
}

func (c *Catalog) validateClusterAssignment(p model.PlayerRecord, tol float64) error {
	if len(p.ClusterProbabilities) != c.clusterCount {
		return fmt.Errorf("%w: player %q has %d cluster probabilities, catalog has %d clusters",
			ErrDataIntegrity, p.ID, len(p.ClusterProbabilities), c.clusterCount)
	}
	if p.ClusterID < 0 || p.ClusterID >= c.clusterCount {
		return fmt.Errorf("%w: player %q cluster id %d out of range [0,%d)",
			ErrDataIntegrity, p.ID, p.ClusterID, c.clusterCount)
	}

	var sum float64
	assigned := p.ClusterProbabilities[p.ClusterID]
	for _, prob := range p.ClusterProbabilities {
		sum += prob
		if prob > assigned {
			return fmt.Errorf("%w: player %q assigned cluster %d is not the arg-max probability",
				ErrDataIntegrity, p.ID, p.ClusterID)
		}
	}
	if math.Abs(sum-1.0) > tol {
		return fmt.Errorf("%w: player %q cluster probabilities sum to %.6f", ErrDataIntegrity, p.ID, sum)
	}
	return nil
}

// Get returns the record for id, or ErrNotFound.
func (c *Catalog) Get(_ context.Context, id string) (model.PlayerRecord, error) {
	idx, ok := c.byID[id]
	if !ok {
		return model.PlayerRecord{}, fmt.Errorf("player %q: %w", id, ErrNotFound)
	}
	return c.players[idx], nil
}

// All returns every record in construction order. The returned slice is a
// fresh copy; the records themselves share read-only maps and slices.
func (c *Catalog) All(_ context.Context) []model.PlayerRecord {
	out := make([]model.PlayerRecord, len(c.players))
	copy(out, c.players)
	return out
}

// Count returns the number of players in the catalog.
func (c *Catalog) Count() int {
	return len(c.players)
}

// ClusterCount returns K, the number of role clusters.
func (c *Catalog) ClusterCount() int {
	return c.clusterCount
}

// ClusterSize returns the number of players assigned to clusterID.
func (c *Catalog) ClusterSize(clusterID int) int {
	return c.clusterSizes[clusterID]
}

// Dimensions returns the coordinate vector length shared by all records.
func (c *Catalog) Dimensions() int {
	return c.dims
}

// Centroid returns the centroid for clusterID, or ErrNotFound when the
// catalog carries no centroid for it.
func (c *Catalog) Centroid(_ context.Context, clusterID int) (model.ClusterCentroid, error) {
	cen, ok := c.centroids[clusterID]
	if !ok {
		return model.ClusterCentroid{}, fmt.Errorf("centroid for cluster %d: %w", clusterID, ErrNotFound)
	}
	return cen, nil
}

// Centroids returns all known centroids ordered by cluster id.
func (c *Catalog) Centroids(_ context.Context) []model.ClusterCentroid {
	out := make([]model.ClusterCentroid, 0, len(c.centroids))
	for _, cen := range c.centroids {
		out = append(out, cen)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClusterID < out[j].ClusterID })
	return out
}
