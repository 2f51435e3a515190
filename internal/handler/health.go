package handler

import (
	"net/http"

	"github.com/skarn-dev/rupture-planner/internal/catalog"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports ready once a catalog snapshot is loaded. Traffic
// arriving before the first snapshot swap gets 503, not empty plans.
func HandleReadyz(provider *catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := provider.Current(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: "game data not loaded",
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
