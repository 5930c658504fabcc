package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jaychen/travel-planner/internal/models"
)

func testTrip() *models.Trip {
	return &models.Trip{
		Name:      "Tokyo2025",
		StartDate: "2025-04-01",
		EndDate:   "2025-04-03",
		Country:   "日本 (Japan)",
	}
}

func TestBuildItinerarySheet(t *testing.T) {
	wb := NewWorkbook(zap.NewNop())

	f, err := wb.Build(testTrip(), []models.ItineraryItem{
		{Date: "2025-04-01", StartTime: "09:00", EndTime: "10:30", Activity: "Senso-ji Temple"},
		{Date: "2025-04-02", Activity: "Ueno Park", Note: "cherry blossoms"},
	}, nil)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue(itinerarySheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Tokyo2025", name)

	dates, _ := f.GetCellValue(itinerarySheet, "B1")
	assert.Equal(t, "2025-04-01 ~ 2025-04-03", dates)

	header, _ := f.GetCellValue(itinerarySheet, "A3")
	assert.Equal(t, "日期", header)

	activity, _ := f.GetCellValue(itinerarySheet, "D4")
	assert.Equal(t, "Senso-ji Temple", activity)

	note, _ := f.GetCellValue(itinerarySheet, "F5")
	assert.Equal(t, "cherry blossoms", note)

	// no expenses: no expense sheet
	idx, err := f.GetSheetIndex(expenseSheet)
	require.NoError(t, err)
	assert.Equal(t, -1, idx)
}

func TestBuildWithExpenses(t *testing.T) {
	wb := NewWorkbook(zap.NewNop())

	f, err := wb.Build(testTrip(), nil, []models.ExpenseItem{
		{Description: "metro pass", Category: models.CategoryTransport, Amount: "100", Currency: "JPY", Date: "2025-04-01"},
		{Description: "ryokan", Category: models.CategoryLodging, Amount: "300", Currency: "JPY", Date: "2025-04-01"},
	})
	require.NoError(t, err)
	defer f.Close()

	desc, err := f.GetCellValue(expenseSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "metro pass", desc)

	label, _ := f.GetCellValue(expenseSheet, "A5")
	assert.Equal(t, "合計", label)

	total, _ := f.GetCellValue(expenseSheet, "C5")
	assert.Equal(t, "400.00", total)
}
