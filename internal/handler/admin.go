package handler

import (
	"net/http"

	"github.com/skarn-dev/rupture-planner/internal/catalog"
	"github.com/skarn-dev/rupture-planner/internal/logger"
	"github.com/skarn-dev/rupture-planner/internal/metrics"
)

// ReloadResponse reports the outcome of a snapshot reload.
type ReloadResponse struct {
	Message        string `json:"message"`
	CatalogVersion string `json:"catalogVersion,omitempty"`
}

// HandleReloadCatalog reloads the game data snapshot from disk and swaps
// it into the provider. In-flight plans keep the snapshot they started
// with; the plan cache self-invalidates because the catalog version is
// part of every cache key.
func HandleReloadCatalog(loader catalog.Loader, provider *catalog.Provider, dataPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		c, err := loader.Load(dataPath)
		if err != nil {
			metrics.CatalogLoadErrors.Inc()
			log.Error("Catalog reload failed", "path", dataPath, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		provider.Swap(c)
		metrics.RecordCatalogLoad(catalogEntityCounts(c))
		log.Info("Catalog reloaded",
			"path", dataPath,
			"version", c.Version(),
			"items", len(c.Data().Items),
			"recipes", len(c.Data().Recipes),
		)

		respondJSON(w, http.StatusOK, ReloadResponse{
			Message:        "catalog reloaded",
			CatalogVersion: c.Version(),
		})
	}
}

func catalogEntityCounts(c *catalog.Catalog) map[string]int {
	data := c.Data()
	return map[string]int{
		"items":        len(data.Items),
		"recipes":      len(data.Recipes),
		"buildings":    len(data.Buildings),
		"schematics":   len(data.Schematics),
		"corporations": len(data.Corporations),
	}
}
