package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaychen/travel-planner/internal/enrichment"
)

// The test router's AI and maps endpoints are unreachable, so these cover
// the degraded paths; happy paths live in the enrichment package tests.

func TestAdviceRequiresActivity(t *testing.T) {
	router, _ := newTestRouter(t)
	createTokyoTrip(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/trips/Tokyo2025/advice", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdviceUnknownTrip(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/trips/Nowhere/advice?activity=x", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdviceDegradesToFallback(t *testing.T) {
	router, _ := newTestRouter(t)
	createTokyoTrip(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/trips/Tokyo2025/advice?activity=Senso-ji", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var advice enrichment.Advice
	decodeBody(t, w, &advice)
	assert.True(t, advice.Fallback)
	assert.Contains(t, advice.Text, "暫時無法獲取建議")
}

func TestTravelTimeRequiresBothEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)
	createTokyoTrip(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/trips/Tokyo2025/travel-time?origin=a", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTravelTimeDegradesToError(t *testing.T) {
	router, _ := newTestRouter(t)
	createTokyoTrip(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/trips/Tokyo2025/travel-time?origin=a&destination=b", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result enrichment.TravelTime
	decodeBody(t, w, &result)
	assert.Equal(t, enrichment.TravelTimeError, result.Status)
	assert.Equal(t, "計算超時", result.Text)
}

func TestParseMetaRequiresBody(t *testing.T) {
	router, _ := newTestRouter(t)
	createTokyoTrip(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/trips/Tokyo2025/meta/parse", gin.H{"text": "  "})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseMetaUnknownTrip(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/trips/Nowhere/meta/parse", gin.H{"text": "BR198"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
