package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jaychen/travel-planner/internal/models"
	"github.com/jaychen/travel-planner/internal/store"
)

// TripsHandler serves the trip index: listing, creation and flight/hotel
// meta updates.
type TripsHandler struct {
	store  store.Store
	logger *zap.Logger
}

// NewTripsHandler creates a trips handler.
func NewTripsHandler(s store.Store, logger *zap.Logger) *TripsHandler {
	return &TripsHandler{store: s, logger: logger}
}

type createTripRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Country   string `json:"country"`
}

// List handles GET /api/trips.
func (h *TripsHandler) List(c *gin.Context) {
	trips, err := h.store.ListTrips(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// Create handles POST /api/trips.
func (h *TripsHandler) Create(c *gin.Context) {
	var req createTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	trip := models.Trip{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Country:   req.Country,
	}
	if err := h.store.CreateTrip(c.Request.Context(), trip); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "trip": trip})
}

// UpdateMeta handles PUT /api/trips/:name/meta. The nine flight/hotel
// columns are overwritten in full; last writer wins.
func (h *TripsHandler) UpdateMeta(c *gin.Context) {
	name := c.Param("name")

	var meta models.TripMeta
	if err := c.ShouldBindJSON(&meta); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	if err := h.store.UpdateTripMeta(c.Request.Context(), name, meta); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
