package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jaychen/travel-planner/internal/models"
	"github.com/jaychen/travel-planner/internal/store"
)

// ExpensesHandler serves a trip's expense rows and their read-time
// aggregation.
type ExpensesHandler struct {
	store  store.Store
	logger *zap.Logger
}

// NewExpensesHandler creates an expenses handler.
func NewExpensesHandler(s store.Store, logger *zap.Logger) *ExpensesHandler {
	return &ExpensesHandler{store: s, logger: logger}
}

type expenseRequest struct {
	Description string      `json:"描述"`
	Category    string      `json:"類別"`
	Amount      json.Number `json:"金額"`
	Currency    string      `json:"幣值"`
	Date        string      `json:"日期"`
}

// List handles GET /api/trips/:name/expenses. A trip with no expense
// sheet yet yields an empty array.
func (h *ExpensesHandler) List(c *gin.Context) {
	name := c.Param("name")

	items, err := h.store.ListExpenses(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Add handles POST /api/trips/:name/expenses. Category defaults to other
// and currency to the trip country's currency.
func (h *ExpensesHandler) Add(c *gin.Context) {
	name := c.Param("name")

	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	item := models.ExpenseItem{
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount.String(),
		Currency:    req.Currency,
		Date:        req.Date,
	}
	if err := h.store.AddExpense(c.Request.Context(), name, item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// Summary handles GET /api/trips/:name/expenses/summary: the total plus
// per-category amounts and percentage shares.
func (h *ExpensesHandler) Summary(c *gin.Context) {
	name := c.Param("name")

	items, err := h.store.ListExpenses(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SummarizeExpenses(items))
}
