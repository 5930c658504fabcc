package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jaychen/travel-planner/internal/enrichment"
	"github.com/jaychen/travel-planner/internal/store"
)

// EnrichmentHandler serves the AI/maps lookups layered on top of stored
// trips: activity tips, travel times and confirmation-mail extraction.
type EnrichmentHandler struct {
	store      store.Store
	advisor    *enrichment.Advisor
	travelTime *enrichment.TravelTimeClient
	extractor  *enrichment.Extractor
	pdfReader  *enrichment.PDFReader
	logger     *zap.Logger
}

// NewEnrichmentHandler creates an enrichment handler.
func NewEnrichmentHandler(
	s store.Store,
	advisor *enrichment.Advisor,
	travelTime *enrichment.TravelTimeClient,
	extractor *enrichment.Extractor,
	pdfReader *enrichment.PDFReader,
	logger *zap.Logger,
) *EnrichmentHandler {
	return &EnrichmentHandler{
		store:      s,
		advisor:    advisor,
		travelTime: travelTime,
		extractor:  extractor,
		pdfReader:  pdfReader,
		logger:     logger,
	}
}

// Advice handles GET /api/trips/:name/advice?activity=. The lookup never
// fails the request; degraded results are tagged with fallback=true.
func (h *EnrichmentHandler) Advice(c *gin.Context) {
	name := c.Param("name")
	activity := strings.TrimSpace(c.Query("activity"))
	if activity == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "activity query parameter is required"})
		return
	}

	trip, err := h.store.GetTrip(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}

	advice := h.advisor.Suggest(c.Request.Context(), activity, trip.Country)
	c.JSON(http.StatusOK, advice)
}

// TravelTime handles GET /api/trips/:name/travel-time?origin=&destination=.
func (h *EnrichmentHandler) TravelTime(c *gin.Context) {
	name := c.Param("name")
	origin := strings.TrimSpace(c.Query("origin"))
	destination := strings.TrimSpace(c.Query("destination"))
	if origin == "" || destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin and destination query parameters are required"})
		return
	}

	trip, err := h.store.GetTrip(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}

	result := h.travelTime.Lookup(c.Request.Context(), origin, destination, trip.Country)
	c.JSON(http.StatusOK, result)
}

type parseMetaRequest struct {
	Text string `json:"text"`
}

// ParseMeta handles POST /api/trips/:name/meta/parse. The body is either
// JSON {"text": ...} or a multipart "file" holding a confirmation PDF.
// The parsed nine-key object is returned without being written; saving
// stays a separate, user-confirmed step.
func (h *EnrichmentHandler) ParseMeta(c *gin.Context) {
	name := c.Param("name")

	trip, err := h.store.GetTrip(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}

	text, ok := h.requestText(c)
	if !ok {
		return
	}

	meta, err := h.extractor.ExtractTripMeta(c.Request.Context(), text, trip.StartDate)
	if err != nil {
		// surface the raw extraction error instead of crashing the page
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meta)
}

// requestText pulls the confirmation text out of the request, reading an
// uploaded PDF when one is present. Responds with an error itself when
// returning ok=false.
func (h *EnrichmentHandler) requestText(c *gin.Context) (string, bool) {
	if file, err := c.FormFile("file"); err == nil {
		tmpPath := filepath.Join(os.TempDir(), "confirmation_"+filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, tmpPath); err != nil {
			h.logger.Error("Failed to save uploaded confirmation", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save uploaded file"})
			return "", false
		}
		defer os.Remove(tmpPath)

		text, err := h.pdfReader.ReadText(tmpPath)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return "", false
		}
		return text, true
	}

	var req parseMetaRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text body or file upload is required"})
		return "", false
	}
	return req.Text, true
}
