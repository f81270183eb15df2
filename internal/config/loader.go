package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if ROLEDASH_CONFIG is set
//  3. env (prefix ROLEDASH_)
func Load(_ context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("ROLEDASH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: ROLEDASH_ADDR, ROLEDASH_MAX_SEARCH_LIMIT, ...
	// Map env keys like ROLEDASH_MAX_SEARCH_LIMIT -> max_search_limit.
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("ROLEDASH_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "roledash_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.PlayersCSV == "":
		return fmt.Errorf("%w: players_csv must not be empty", ErrInvalidConfig)
	case c.CentroidsCSV == "":
		return fmt.Errorf("%w: centroids_csv must not be empty", ErrInvalidConfig)
	case c.DefaultSearchLimit < 1 || c.MaxSearchLimit < c.DefaultSearchLimit:
		return fmt.Errorf("%w: search limits must satisfy 1 <= default <= max", ErrInvalidConfig)
	case c.DefaultSimilarK < 1 || c.MaxSimilarK < c.DefaultSimilarK:
		return fmt.Errorf("%w: similar limits must satisfy 1 <= default <= max", ErrInvalidConfig)
	case c.ProbabilityTolerance <= 0:
		return fmt.Errorf("%w: probability_tolerance must be positive", ErrInvalidConfig)
	}
	return nil
}
