package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Trips      *TripsHandler
	Itinerary  *ItineraryHandler
	Expenses   *ExpensesHandler
	Enrichment *EnrichmentHandler
	Export     *ExportHandler
}

// NewRouter wires the HTTP surface: recovery, request logging, CORS and
// the /api routes.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		api.GET("/trips", h.Trips.List)
		api.POST("/trips", h.Trips.Create)
		api.PUT("/trips/:name/meta", h.Trips.UpdateMeta)
		api.POST("/trips/:name/meta/parse", h.Enrichment.ParseMeta)

		api.GET("/trips/:name/itinerary", h.Itinerary.Get)
		api.POST("/trips/:name/itinerary", h.Itinerary.Add)

		api.GET("/trips/:name/expenses", h.Expenses.List)
		api.POST("/trips/:name/expenses", h.Expenses.Add)
		api.GET("/trips/:name/expenses/summary", h.Expenses.Summary)

		api.GET("/trips/:name/advice", h.Enrichment.Advice)
		api.GET("/trips/:name/travel-time", h.Enrichment.TravelTime)
		api.GET("/trips/:name/export", h.Export.Download)
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)
	}
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
