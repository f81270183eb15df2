package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/types"
)

// PlayersDependencies defines the interface for player lookups.
type PlayersDependencies interface {
	Player(ctx context.Context, playerID string) (types.PlayerDetail, error)
	SimilarQuery(ctx context.Context, playerID string, k int, sameCluster *bool) ([]types.Neighbor, error)
}

// PlayersHandler handles player card and similar-player requests.
type PlayersHandler struct {
	deps PlayersDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayersDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// HandlePlayers dispatches GET /players/{id} and GET /players/{id}/similar.
func (h *PlayersHandler) HandlePlayers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/players/")
	id, rest, _ := strings.Cut(path, "/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	switch rest {
	case "":
		h.handleCard(w, r, id)
	case "similar":
		h.handleSimilar(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (h *PlayersHandler) handleCard(w http.ResponseWriter, r *http.Request, id string) {
	detail, err := h.deps.Player(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// handleSimilar handles GET /players/{id}/similar?k=N&same_cluster=<bool>.
// Both parameters are optional; the facade applies its configured defaults.
func (h *PlayersHandler) handleSimilar(w http.ResponseWriter, r *http.Request, id string) {
	k := 0
	if kStr := r.URL.Query().Get("k"); kStr != "" {
		n, err := strconv.Atoi(kStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		k = n
	}

	var sameCluster *bool
	if scStr := r.URL.Query().Get("same_cluster"); scStr != "" {
		v, err := strconv.ParseBool(scStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		sameCluster = &v
	}

	neighbors, err := h.deps.SimilarQuery(r.Context(), id, k, sameCluster)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if neighbors == nil {
		neighbors = []types.Neighbor{}
	}
	writeJSON(w, http.StatusOK, neighbors)
}
