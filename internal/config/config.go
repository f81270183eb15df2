// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults, Load(ctx) to layer
//   file and environment overrides on top.
// - External errors must be wrapped via this package's error kinds.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// PlayersCSV points at the wide-form player dataset.
	PlayersCSV string `koanf:"players_csv"`

	// CentroidsCSV points at the long-form centroid z-score dataset.
	CentroidsCSV string `koanf:"centroids_csv"`

	// DefaultSearchLimit applies when GET /search omits limit.
	DefaultSearchLimit int `koanf:"default_search_limit"`

	// MaxSearchLimit caps GET /search?limit.
	MaxSearchLimit int `koanf:"max_search_limit"`

	// DefaultSimilarK applies when GET /players/{id}/similar omits k.
	DefaultSimilarK int `koanf:"default_similar_k"`

	// MaxSimilarK caps GET /players/{id}/similar?k.
	MaxSimilarK int `koanf:"max_similar_k"`

	// SameClusterDefault restricts similarity to the query's role cluster
	// unless the request says otherwise.
	SameClusterDefault bool `koanf:"same_cluster_default"`

	// ProbabilityTolerance bounds how far a membership vector may drift
	// from summing to one before the catalog rejects it.
	ProbabilityTolerance float64 `koanf:"probability_tolerance"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":9080",
		PlayersCSV:           "data/players.csv",
		CentroidsCSV:         "data/centroids.csv",
		DefaultSearchLimit:   10,
		MaxSearchLimit:       50,
		DefaultSimilarK:      5,
		MaxSimilarK:          50,
		SameClusterDefault:   true,
		ProbabilityTolerance: 1e-3,
	}
}
