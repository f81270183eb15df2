// Package app provides the query facade composing the search index and the
// similarity engine over a shared immutable catalog. It implements the
// dependencies required by the HTTP API.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/adityasharma624/Player-Role-Dashboard/internal/adapters/loader"
	"github.com/adityasharma624/Player-Role-Dashboard/internal/adapters/repository"
	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/model"
	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/normalize"
	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/roles"
	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/search"
	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/similarity"
	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/types"
	"github.com/adityasharma624/Player-Role-Dashboard/pkg/logger"
	"github.com/adityasharma624/Player-Role-Dashboard/pkg/metrics"
)

// Default facade bounds. The clamp keeps caller-supplied limits sane without
// erroring on excess.
const (
	defaultSearchLimit     = 10
	defaultMaxSearchLimit  = 50
	defaultSimilarK        = 5
	defaultMaxSimilarK     = 50
	topMembershipCount     = 3
	topCentroidAttributes  = 5

	nanosecondsPerMillisecond = 1e6
)

// Service is the caller-facing facade over the player catalog.
type Service struct {
	mu sync.RWMutex

	// Data source
	playersPath     string
	centroidsPath   string
	staticPlayers   []model.PlayerRecord
	staticCentroids []model.ClusterCentroid
	useStatic       bool

	// Query bounds
	defaultLimit       int
	maxLimit           int
	defaultK           int
	maxK               int
	sameClusterDefault bool
	probTolerance      float64

	// Built once at Start, then read-only
	catalog *repository.Catalog
	index   *search.Index
	engine  *similarity.Engine

	started   bool
	startedAt time.Time

	logger logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		defaultLimit:       defaultSearchLimit,
		maxLimit:           defaultMaxSearchLimit,
		defaultK:           defaultSimilarK,
		maxK:               defaultMaxSimilarK,
		sameClusterDefault: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the dataset, builds the catalog, and publishes the index and
// engine. The catalog is built exactly once; nothing is published on failure,
// so no reader can observe a partially constructed catalog.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	players := s.staticPlayers
	centroids := s.staticCentroids
	if !s.useStatic {
		var err error
		if players, err = loader.Players(ctx, s.playersPath); err != nil {
			metrics.RecordCatalogBuildFailure()
			return err
		}
		if centroids, err = loader.Centroids(ctx, s.centroidsPath); err != nil {
			metrics.RecordCatalogBuildFailure()
			return err
		}
	}

	var catOpts []repository.Option
	if s.probTolerance > 0 {
		catOpts = append(catOpts, repository.WithProbabilityTolerance(s.probTolerance))
	}

	buildStart := time.Now()
	catalog, err := repository.Build(ctx, players, centroids, catOpts...)
	if err != nil {
		metrics.RecordCatalogBuildFailure()
		return err
	}
	metrics.RecordCatalogBuildDuration(float64(time.Since(buildStart).Nanoseconds())/nanosecondsPerMillisecond)

	s.catalog = catalog
	s.index = search.New(catalog)
	s.engine = similarity.New(catalog)
	s.started = true
	s.startedAt = time.Now()

	metrics.UpdateCatalogPlayers(catalog.Count())
	metrics.UpdateCatalogClusters(catalog.ClusterCount())
	metrics.UpdateCatalogDimensions(catalog.Dimensions())

	s.logger.Info(ctx, "catalog ready",
		logger.Int("players", catalog.Count()),
		logger.Int("clusters", catalog.ClusterCount()),
		logger.Int("dimensions", catalog.Dimensions()),
	)
	return nil
}

// Stop marks the service stopped. The catalog has no resources to release.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "service stopped")
}

func (s *Service) components() (*search.Index, *similarity.Engine, *repository.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, nil, nil, ErrNotStarted
	}
	return s.index, s.engine, s.catalog, nil
}

// Search resolves free-text input to ranked player matches. The limit is
// clamped to [1, max]; zero or negative means the default. Empty or
// unmatchable queries yield an empty result, never an error.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]types.Match, error) {
	index, _, _, err := s.components()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	if normalize.Key(query) == "" {
		metrics.RecordSearchQuery()
		metrics.RecordSearchEmptyQuery()
		return []types.Match{}, nil
	}

	start := time.Now()
	found := index.Search(ctx, query, limit)
	metrics.RecordSearchLatency(float64(time.Since(start).Nanoseconds())/nanosecondsPerMillisecond)
	metrics.RecordSearchQuery()
	metrics.RecordSearchResultCount(len(found))
	if len(found) == 0 {
		metrics.RecordSearchNoMatch()
	}

	out := make([]types.Match, 0, len(found))
	for _, m := range found {
		out = append(out, types.Match{
			PlayerSummary: summarize(m.Player),
			MatchKind:     m.Kind.String(),
		})
	}
	return out, nil
}

// Similar returns the players closest to playerID. Defaults (k, cluster
// restriction) come from service configuration and can be overridden per
// query. k is clamped to [1, max].
func (s *Service) Similar(ctx context.Context, playerID string, opts ...SimilarOption) ([]types.Neighbor, error) {
	_, engine, _, err := s.components()
	if err != nil {
		return nil, err
	}

	q := similarQuery{k: s.defaultK, sameCluster: s.sameClusterDefault}
	for _, opt := range opts {
		opt(&q)
	}
	if q.k <= 0 {
		q.k = s.defaultK
	}
	if q.k > s.maxK {
		q.k = s.maxK
	}

	start := time.Now()
	neighbors, err := engine.Similar(ctx, playerID, q.k, q.sameCluster)
	if err != nil {
		return nil, err
	}
	metrics.RecordSimilarLatency(float64(time.Since(start).Nanoseconds())/nanosecondsPerMillisecond)
	metrics.RecordSimilarQuery(!q.sameCluster)

	out := make([]types.Neighbor, 0, len(neighbors))
	for _, n := range neighbors {
		out = append(out, types.Neighbor{
			PlayerSummary: summarize(n.Player),
			Distance:      n.Distance,
		})
	}
	return out, nil
}

// SimilarQuery adapts Similar to the HTTP dependency shape: non-positive k
// means the configured default, nil sameCluster means the configured default.
func (s *Service) SimilarQuery(ctx context.Context, playerID string, k int, sameCluster *bool) ([]types.Neighbor, error) {
	var opts []SimilarOption
	if k > 0 {
		opts = append(opts, WithK(k))
	}
	if sameCluster != nil {
		opts = append(opts, WithSameClusterOnly(*sameCluster))
	}
	return s.Similar(ctx, playerID, opts...)
}

// Player returns the full card for one player id.
func (s *Service) Player(ctx context.Context, playerID string) (types.PlayerDetail, error) {
	_, _, catalog, err := s.components()
	if err != nil {
		return types.PlayerDetail{}, err
	}

	p, err := catalog.Get(ctx, playerID)
	if err != nil {
		return types.PlayerDetail{}, err
	}
	return types.PlayerDetail{
		PlayerSummary:  summarize(p),
		Role:           roles.Name(p.ClusterID),
		AbilityFlagged: p.AbilityFlagged(),
		Coordinates:    p.Coordinates,
		Attributes:     p.Attributes,
		Memberships:    roles.TopMemberships(p, topMembershipCount),
	}, nil
}

// Clusters documents every role cluster in the catalog.
func (s *Service) Clusters(ctx context.Context) ([]types.ClusterInfo, error) {
	_, _, catalog, err := s.components()
	if err != nil {
		return nil, err
	}

	out := make([]types.ClusterInfo, 0, catalog.ClusterCount())
	for id := 0; id < catalog.ClusterCount(); id++ {
		out = append(out, s.clusterInfo(ctx, catalog, id))
	}
	return out, nil
}

// Cluster documents a single role cluster. Unknown ids fail with the
// catalog's not-found kind.
func (s *Service) Cluster(ctx context.Context, clusterID int) (types.ClusterInfo, error) {
	_, _, catalog, err := s.components()
	if err != nil {
		return types.ClusterInfo{}, err
	}
	if clusterID < 0 || clusterID >= catalog.ClusterCount() {
		return types.ClusterInfo{}, repository.ErrNotFound
	}
	return s.clusterInfo(ctx, catalog, clusterID), nil
}

func (s *Service) clusterInfo(ctx context.Context, catalog *repository.Catalog, id int) types.ClusterInfo {
	info := types.ClusterInfo{
		ClusterID:   id,
		Role:        roles.Name(id),
		Description: roles.Description(id),
		Members:     catalog.ClusterSize(id),
	}
	if cen, err := catalog.Centroid(ctx, id); err == nil {
		info.TopAttributes = roles.TopAttributes(cen, topCentroidAttributes)
	}
	return info
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":              s.started,
		"default_search_limit": s.defaultLimit,
		"max_search_limit":     s.maxLimit,
		"default_similar_k":    s.defaultK,
		"max_similar_k":        s.maxK,
		"same_cluster_default": s.sameClusterDefault,
	}
	if s.started {
		stats["players"] = s.catalog.Count()
		stats["clusters"] = s.catalog.ClusterCount()
		stats["dimensions"] = s.catalog.Dimensions()
		stats["uptime_seconds"] = int(time.Since(s.startedAt).Seconds())
	}
	return stats
}

func summarize(p model.PlayerRecord) types.PlayerSummary {
	return types.PlayerSummary{
		ID:               p.ID,
		Name:             p.DisplayName,
		Club:             p.Club,
		CurrentAbility:   p.CurrentAbility,
		PotentialAbility: p.PotentialAbility,
		ClusterID:        p.ClusterID,
	}
}
