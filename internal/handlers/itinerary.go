package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jaychen/travel-planner/internal/models"
	"github.com/jaychen/travel-planner/internal/store"
)

// ItineraryHandler serves a trip's activity schedule.
type ItineraryHandler struct {
	store  store.Store
	logger *zap.Logger
}

// NewItineraryHandler creates an itinerary handler.
func NewItineraryHandler(s store.Store, logger *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{store: s, logger: logger}
}

// Get handles GET /api/trips/:name/itinerary. Without parameters items
// come back in row-insertion order; ?date=YYYY-MM-DD narrows to one day
// sorted by start time, unparsable times last.
func (h *ItineraryHandler) Get(c *gin.Context) {
	name := c.Param("name")

	items, err := h.store.GetItinerary(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}

	if date := c.Query("date"); date != "" {
		items = models.FilterByDate(items, date)
		models.SortByStartTime(items)
	}

	c.JSON(http.StatusOK, items)
}

// Add handles POST /api/trips/:name/itinerary. The body uses the sheet's
// column headers as keys; an empty map link is derived from the trip's
// country and the activity name.
func (h *ItineraryHandler) Add(c *gin.Context) {
	name := c.Param("name")

	var item models.ItineraryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	if err := h.store.AddItineraryItem(c.Request.Context(), name, item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}
