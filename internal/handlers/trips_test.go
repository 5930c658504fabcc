package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaychen/travel-planner/internal/models"
)

func createTokyoTrip(t *testing.T, router *gin.Engine) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/trips", gin.H{
		"name": "Tokyo2025", "startDate": "2025-04-01", "endDate": "2025-04-03", "country": "日本 (Japan)",
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateAndListTrips(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/trips", gin.H{
		"name": "Tokyo2025", "startDate": "2025-04-01", "endDate": "2025-04-03", "country": "日本 (Japan)",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		OK   bool        `json:"ok"`
		Trip models.Trip `json:"trip"`
	}
	decodeBody(t, w, &created)
	assert.True(t, created.OK)
	assert.Equal(t, "Tokyo2025", created.Trip.Name)

	w = doJSON(t, router, http.MethodGet, "/api/trips", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var trips []models.Trip
	decodeBody(t, w, &trips)
	require.Len(t, trips, 1)
	assert.Equal(t, "日本 (Japan)", trips[0].Country)
	assert.Equal(t, "2025-04-01", trips[0].StartDate)
}

func TestCreateTripDuplicate(t *testing.T) {
	router, _ := newTestRouter(t)
	createTokyoTrip(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/trips", gin.H{
		"name": "Tokyo2025", "startDate": "2025-04-01", "endDate": "2025-04-03", "country": "日本 (Japan)",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateTripValidation(t *testing.T) {
	tests := []struct {
		name string
		body gin.H
	}{
		{"empty name", gin.H{"name": "", "startDate": "2025-04-01", "endDate": "2025-04-03", "country": "日本 (Japan)"}},
		{"sheet-hostile name", gin.H{"name": "a/b", "startDate": "2025-04-01", "endDate": "2025-04-03", "country": "日本 (Japan)"}},
		{"bad date format", gin.H{"name": "T", "startDate": "04/01/2025", "endDate": "2025-04-03", "country": "日本 (Japan)"}},
		{"end before start", gin.H{"name": "T", "startDate": "2025-04-03", "endDate": "2025-04-01", "country": "日本 (Japan)"}},
		{"unknown country", gin.H{"name": "T", "startDate": "2025-04-01", "endDate": "2025-04-03", "country": "Atlantis"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)
			w := doJSON(t, router, http.MethodPost, "/api/trips", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUpdateTripMeta(t *testing.T) {
	router, _ := newTestRouter(t)
	createTokyoTrip(t, router)

	w := doJSON(t, router, http.MethodPut, "/api/trips/Tokyo2025/meta", gin.H{
		"航班號": "BR198", "出發機場": "TPE", "出發時間": "09:20",
		"抵達機場": "NRT", "抵達時間": "13:30",
		"酒店名稱": "Asakusa View", "入住日期": "2025-04-01", "退房日期": "2025-04-03",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/trips", nil)
	var trips []models.Trip
	decodeBody(t, w, &trips)
	require.Len(t, trips, 1)
	assert.Equal(t, "BR198", trips[0].FlightNumber)
	assert.Equal(t, "Asakusa View", trips[0].HotelName)
}

func TestUpdateTripMetaUnknownTrip(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/api/trips/Nowhere/meta", gin.H{"航班號": "BR198"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
