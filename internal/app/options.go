package app

import (
	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/model"
	"github.com/adityasharma624/Player-Role-Dashboard/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDataPaths sets the players and centroids CSV paths loaded at Start.
func WithDataPaths(players, centroids string) Option {
	return func(s *Service) {
		s.playersPath = players
		s.centroidsPath = centroids
	}
}

// WithStaticData supplies in-memory records instead of CSV files. Intended
// for tests and embedding; when set, Start skips file loading entirely.
func WithStaticData(players []model.PlayerRecord, centroids []model.ClusterCentroid) Option {
	return func(s *Service) {
		s.staticPlayers = players
		s.staticCentroids = centroids
		s.useStatic = true
	}
}

// WithSearchLimits sets the default and maximum search result limits.
func WithSearchLimits(def, max int) Option {
	return func(s *Service) {
		if def > 0 {
			s.defaultLimit = def
		}
		if max > 0 {
			s.maxLimit = max
		}
	}
}

// WithSimilarLimits sets the default and maximum similar-player counts.
func WithSimilarLimits(def, max int) Option {
	return func(s *Service) {
		if def > 0 {
			s.defaultK = def
		}
		if max > 0 {
			s.maxK = max
		}
	}
}

// WithSameClusterDefault sets whether similarity queries restrict to the
// target's cluster when the caller does not say.
func WithSameClusterDefault(v bool) Option {
	return func(s *Service) {
		s.sameClusterDefault = v
	}
}

// WithProbabilityTolerance sets the catalog's probability-sum tolerance.
func WithProbabilityTolerance(tol float64) Option {
	return func(s *Service) {
		if tol > 0 {
			s.probTolerance = tol
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// SimilarOption adjusts a single similarity query.
type SimilarOption func(*similarQuery)

type similarQuery struct {
	k           int
	sameCluster bool
}

// WithK overrides the number of neighbors for one query.
func WithK(k int) SimilarOption {
	return func(q *similarQuery) { q.k = k }
}

// WithSameClusterOnly overrides cluster restriction for one query.
func WithSameClusterOnly(v bool) SimilarOption {
	return func(q *similarQuery) { q.sameCluster = v }
}
