// Package export renders a trip as a downloadable Excel workbook.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/jaychen/travel-planner/internal/models"
)

const (
	itinerarySheet = "行程"
	expenseSheet   = "支出"
)

// Workbook builds .xlsx workbooks from trip records.
type Workbook struct {
	logger *zap.Logger
}

// NewWorkbook creates a workbook builder.
func NewWorkbook(logger *zap.Logger) *Workbook {
	return &Workbook{logger: logger}
}

// Build renders one trip into a workbook: a summary header, the itinerary
// rows, and an expense sheet when the trip has recorded expenses. The
// caller owns closing the returned file.
func (w *Workbook) Build(trip *models.Trip, items []models.ItineraryItem, expenses []models.ExpenseItem) (*excelize.File, error) {
	f := excelize.NewFile()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, itinerarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name itinerary sheet: %w", err)
	}

	w.setCell(f, itinerarySheet, "A1", trip.Name)
	w.setCell(f, itinerarySheet, "B1", fmt.Sprintf("%s ~ %s", trip.StartDate, trip.EndDate))
	w.setCell(f, itinerarySheet, "C1", trip.Country)

	for col, header := range models.ItineraryHeaders {
		w.setHeaderCell(f, itinerarySheet, 3, col, header)
	}
	for i, it := range items {
		row := 4 + i
		w.setRow(f, itinerarySheet, row, []string{
			it.Date, it.StartTime, it.EndTime, it.Activity, it.MapLink, it.Note,
		})
	}

	if len(expenses) > 0 {
		if _, err := f.NewSheet(expenseSheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to add expense sheet: %w", err)
		}
		for col, header := range models.ExpenseHeaders {
			w.setHeaderCell(f, expenseSheet, 1, col, header)
		}
		for i, e := range expenses {
			row := 2 + i
			w.setRow(f, expenseSheet, row, []string{
				e.Description, e.Category, e.Amount, e.Currency, e.Date,
			})
		}
		summary := models.SummarizeExpenses(expenses)
		totalRow := 3 + len(expenses)
		w.setCell(f, expenseSheet, fmt.Sprintf("A%d", totalRow), "合計")
		w.setCell(f, expenseSheet, fmt.Sprintf("C%d", totalRow), fmt.Sprintf("%.2f", summary.Total))
	}

	w.logger.Info("Workbook built",
		zap.String("trip", trip.Name),
		zap.Int("items", len(items)),
		zap.Int("expenses", len(expenses)))
	return f, nil
}

func (w *Workbook) setRow(f *excelize.File, sheet string, row int, values []string) {
	for col, v := range values {
		w.setHeaderCell(f, sheet, row, col, v)
	}
}

func (w *Workbook) setHeaderCell(f *excelize.File, sheet string, row, col int, value string) {
	cell, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		w.logger.Warn("Bad cell coordinates", zap.Int("row", row), zap.Int("col", col), zap.Error(err))
		return
	}
	w.setCell(f, sheet, cell, value)
}

func (w *Workbook) setCell(f *excelize.File, sheet, cell, value string) {
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		w.logger.Warn("Failed to set cell value",
			zap.String("sheet", sheet),
			zap.String("cell", cell),
			zap.Error(err))
	}
}
