package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jaychen/travel-planner/internal/enrichment"
	"github.com/jaychen/travel-planner/internal/export"
	"github.com/jaychen/travel-planner/internal/store"
)

// newTestRouter wires the full route table against the in-memory store.
// Enrichment clients point at unreachable endpoints; tests that exercise
// them expect the degraded behavior.
func newTestRouter(t *testing.T) (*gin.Engine, *store.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	s := store.NewMemory()
	aiCfg := enrichment.AdvisorConfig{APIKey: "test", BaseURL: "http://127.0.0.1:1/v1", Model: "test"}
	router := NewRouter(Handlers{
		Trips:     NewTripsHandler(s, logger),
		Itinerary: NewItineraryHandler(s, logger),
		Expenses:  NewExpensesHandler(s, logger),
		Enrichment: NewEnrichmentHandler(
			s,
			enrichment.NewAdvisor(aiCfg, logger),
			enrichment.NewTravelTimeClient(enrichment.TravelTimeConfig{APIKey: "test", BaseURL: "http://127.0.0.1:1"}, logger),
			enrichment.NewExtractor(aiCfg, logger),
			enrichment.NewPDFReader(logger),
			logger,
		),
		Export: NewExportHandler(s, export.NewWorkbook(logger), logger),
	}, logger)
	return router, s
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"ok": true}`, w.Body.String())
}
