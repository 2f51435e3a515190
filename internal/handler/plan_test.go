package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skarn-dev/rupture-planner/internal/catalog"
	"github.com/skarn-dev/rupture-planner/internal/planner"
)

func postPlan(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestHandlePlan(t *testing.T) {
	service, err := planner.NewService(newTestProvider(), 0)
	require.NoError(t, err)
	handler := HandlePlan(service)

	t.Run("computes a plan", func(t *testing.T) {
		w := postPlan(t, handler, `{"production":[{"item":"IT_IronIngot","amount":60}]}`)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `"catalogVersion":"v1"`)
		assert.Contains(t, body, `"RC_IronIngot@100#BD_Smelter":2`)
		assert.Contains(t, body, `"IT_IronOre#Mine":60`)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := postPlan(t, handler, `{"production":[`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequestError)
	})

	t.Run("validation failure", func(t *testing.T) {
		w := postPlan(t, handler, `{"production":[]}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequestError)
	})

	t.Run("unusable targets are skipped", func(t *testing.T) {
		w := postPlan(t, handler, `{"production":[{"item":"IT_IronIngot","amount":60},{"item":"IT_IronIngot","amount":-5}]}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"IT_IronIngot#Product":60`)
	})

	t.Run("catalog not loaded", func(t *testing.T) {
		emptyService, err := planner.NewService(catalog.NewProvider(), 0)
		require.NoError(t, err)

		w := postPlan(t, HandlePlan(emptyService), `{"production":[{"item":"IT_IronIngot","amount":60}]}`)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgCatalogNotReadyError)
	})
}
