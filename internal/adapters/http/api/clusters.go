package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/types"
)

// ClustersDependencies defines the interface for role cluster lookups.
type ClustersDependencies interface {
	Clusters(ctx context.Context) ([]types.ClusterInfo, error)
	Cluster(ctx context.Context, clusterID int) (types.ClusterInfo, error)
}

// ClustersHandler handles role cluster requests.
type ClustersHandler struct {
	deps ClustersDependencies
}

// NewClustersHandler creates a new clusters handler.
func NewClustersHandler(deps ClustersDependencies) *ClustersHandler {
	return &ClustersHandler{deps: deps}
}

// HandleClusters dispatches GET /clusters and GET /clusters/{id}.
func (h *ClustersHandler) HandleClusters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/clusters")
	rest = strings.TrimPrefix(rest, "/")
	if rest == "" {
		h.handleList(w, r)
		return
	}

	id, err := strconv.Atoi(rest)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	h.handleOne(w, r, id)
}

func (h *ClustersHandler) handleList(w http.ResponseWriter, r *http.Request) {
	infos, err := h.deps.Clusters(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if infos == nil {
		infos = []types.ClusterInfo{}
	}
	writeJSON(w, http.StatusOK, infos)
}

func (h *ClustersHandler) handleOne(w http.ResponseWriter, r *http.Request, id int) {
	info, err := h.deps.Cluster(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}
