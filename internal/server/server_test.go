package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skarn-dev/rupture-planner/internal/catalog"
	"github.com/skarn-dev/rupture-planner/internal/domain"
	"github.com/skarn-dev/rupture-planner/internal/planner"
)

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()

	data := &domain.GameData{
		Version: "v1",
		Items: map[string]*domain.Item{
			"IT_IronOre":   {ClassName: "IT_IronOre", Slug: "iron-ore", Name: "Iron Ore"},
			"IT_IronIngot": {ClassName: "IT_IronIngot", Slug: "iron-ingot", Name: "Iron Ingot"},
		},
		Recipes: map[string]*domain.Recipe{
			"RC_IronIngot": {
				ClassName:   "RC_IronIngot",
				Slug:        "iron-ingot",
				Name:        "Iron Ingot",
				Time:        2,
				InMachine:   true,
				Ingredients: []domain.ItemAmount{{Item: "IT_IronOre", Amount: 1}},
				Products:    []domain.ItemAmount{{Item: "IT_IronIngot", Amount: 1}},
				ProducedIn:  []string{"BD_Smelter"},
			},
		},
		Buildings: map[string]*domain.Building{
			"BD_Smelter": {
				ClassName: "BD_Smelter",
				Slug:      "smelter",
				Name:      "Smelter",
				Metadata:  domain.BuildingMetadata{PowerConsumption: 4, ManufacturingSpeed: 1},
			},
		},
		Miners:     map[string]*domain.Miner{},
		Generators: map[string]*domain.Generator{},
		Resources:  map[string]*domain.Resource{},
		Schematics: map[string]*domain.Schematic{},
	}
	provider := catalog.NewProvider()
	provider.Swap(catalog.New(data))

	service, err := planner.NewService(provider, 0)
	require.NoError(t, err)

	return NewServer(opts, provider, service, catalog.NewLoader())
}

func TestServerRoutes(t *testing.T) {
	srv := newTestServer(t, Options{Port: 8080})

	t.Run("healthz", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("readyz with snapshot loaded", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("version reports the catalog", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"catalog_version":"v1"`)
	})

	t.Run("plan endpoint", func(t *testing.T) {
		body := strings.NewReader(`{"production":[{"item":"IT_IronIngot","amount":60}]}`)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/plan", body))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"RC_IronIngot@100#BD_Smelter":2`)
	})

	t.Run("browse endpoints", func(t *testing.T) {
		for _, path := range []string{
			"/api/v1/items",
			"/api/v1/items/iron-ore",
			"/api/v1/recipes",
			"/api/v1/recipes/iron-ingot",
			"/api/v1/buildings",
			"/api/v1/buildings/smelter",
			"/api/v1/corporations",
			"/api/v1/resources",
		} {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", path, nil))
			assert.Equal(t, http.StatusOK, w.Code, path)
		}
	})

	t.Run("security headers present", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/items", nil))

		assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
		assert.Equal(t, HeaderValueSameOrigin, w.Header().Get(HeaderFrameOptions))
	})

	t.Run("admin routes absent without key", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/admin/reload", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServerAdminAuth(t *testing.T) {
	srv := newTestServer(t, Options{Port: 8080, AdminAPIKey: "secret", DataPath: "/nonexistent.json"})

	t.Run("rejects missing key", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/admin/reload", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects wrong key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/admin/reload", nil)
		req.Header.Set(HeaderAPIKey, "wrong")
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("accepts the configured key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/admin/reload", nil)
		req.Header.Set(HeaderAPIKey, "secret")
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		// Auth passes; the reload itself fails on the bogus data path.
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
