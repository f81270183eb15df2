// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adityasharma624/Player-Role-Dashboard/internal/adapters/repository"
	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/types"
)

// Dependencies bundles the facade operations the HTTP handlers need. Keeping
// the handler layer on an interface avoids coupling it to the app package.
type Dependencies interface {
	Search(ctx context.Context, query string, limit int) ([]types.Match, error)
	SimilarQuery(ctx context.Context, playerID string, k int, sameCluster *bool) ([]types.Neighbor, error)
	Player(ctx context.Context, playerID string) (types.PlayerDetail, error)
	Clusters(ctx context.Context) ([]types.ClusterInfo, error)
	Cluster(ctx context.Context, clusterID int) (types.ClusterInfo, error)
}

// Server wires HTTP routes for the query API.
type Server struct {
	searchHandler   *SearchHandler
	playersHandler  *PlayersHandler
	clustersHandler *ClustersHandler
	statsHandler    *StatsHandler
	healthHandler   *HealthHandler
}

// NewServer creates an API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		searchHandler:   NewSearchHandler(deps),
		playersHandler:  NewPlayersHandler(deps),
		clustersHandler: NewClustersHandler(deps),
		statsHandler:    NewStatsHandler(statsProvider),
		healthHandler:   NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/search", MetricsMiddleware(s.searchHandler.HandleSearch, "search"))
	mux.HandleFunc("/players/", MetricsMiddleware(s.playersHandler.HandlePlayers, "players"))
	mux.HandleFunc("/clusters", MetricsMiddleware(s.clustersHandler.HandleClusters, "clusters"))
	mux.HandleFunc("/clusters/", MetricsMiddleware(s.clustersHandler.HandleClusters, "clusters"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates the catalog's not-found kind to a 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
