package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jaychen/travel-planner/internal/export"
	"github.com/jaychen/travel-planner/internal/store"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams a trip as an .xlsx workbook.
type ExportHandler struct {
	store    store.Store
	workbook *export.Workbook
	logger   *zap.Logger
}

// NewExportHandler creates an export handler.
func NewExportHandler(s store.Store, workbook *export.Workbook, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{store: s, workbook: workbook, logger: logger}
}

// Download handles GET /api/trips/:name/export.
func (h *ExportHandler) Download(c *gin.Context) {
	name := c.Param("name")
	ctx := c.Request.Context()

	trip, err := h.store.GetTrip(ctx, name)
	if err != nil {
		respondError(c, err)
		return
	}
	items, err := h.store.GetItinerary(ctx, name)
	if err != nil {
		respondError(c, err)
		return
	}
	expenses, err := h.store.ListExpenses(ctx, name)
	if err != nil {
		respondError(c, err)
		return
	}

	f, err := h.workbook.Build(trip, items, expenses)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, name))
	if err := f.Write(c.Writer); err != nil {
		h.logger.Error("Failed to stream workbook",
			zap.String("trip", name),
			zap.Error(err))
	}
}
