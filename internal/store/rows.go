package store

import (
	"fmt"
	"strings"

	"github.com/jaychen/travel-planner/internal/models"
)

// Row codecs between record structs and positional sheet rows. Column
// order follows the header constants in the models package; short rows
// are padded with empty strings on read.

func tripToRow(t models.Trip) []any {
	return []any{
		t.Name, t.StartDate, t.EndDate, t.Country,
		t.FlightNumber, t.DepartureAirport, t.DepartureTime, t.ArrivalAirport, t.ArrivalTime,
		t.HotelName, t.HotelAddress, t.CheckinDate, t.CheckoutDate,
	}
}

func tripFromRow(row []string) models.Trip {
	row = padRow(row, len(models.IndexHeaders))
	return models.Trip{
		Name:             row[0],
		StartDate:        row[1],
		EndDate:          row[2],
		Country:          row[3],
		FlightNumber:     row[4],
		DepartureAirport: row[5],
		DepartureTime:    row[6],
		ArrivalAirport:   row[7],
		ArrivalTime:      row[8],
		HotelName:        row[9],
		HotelAddress:     row[10],
		CheckinDate:      row[11],
		CheckoutDate:     row[12],
	}
}

func metaToRow(m models.TripMeta) []any {
	return []any{
		m.FlightNumber, m.DepartureAirport, m.DepartureTime, m.ArrivalAirport, m.ArrivalTime,
		m.HotelName, m.HotelAddress, m.CheckinDate, m.CheckoutDate,
	}
}

func itineraryToRow(it models.ItineraryItem) []any {
	return []any{it.Date, it.StartTime, it.EndTime, it.Activity, it.MapLink, it.Note}
}

func itineraryFromRow(row []string) models.ItineraryItem {
	row = padRow(row, len(models.ItineraryHeaders))
	return models.ItineraryItem{
		Date:      row[0],
		StartTime: row[1],
		EndTime:   row[2],
		Activity:  row[3],
		MapLink:   row[4],
		Note:      row[5],
	}
}

func expenseToRow(e models.ExpenseItem) []any {
	return []any{e.Description, e.Category, e.Amount, e.Currency, e.Date}
}

func expenseFromRow(row []string) models.ExpenseItem {
	row = padRow(row, len(models.ExpenseHeaders))
	return models.ExpenseItem{
		Description: row[0],
		Category:    row[1],
		Amount:      row[2],
		Currency:    row[3],
		Date:        row[4],
	}
}

func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

// cellStrings coerces a raw sheet row to trimmed strings; the Sheets API
// returns cells as untyped values.
func cellStrings(row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}

// expenseSheetName returns the title of a trip's expense sheet.
func expenseSheetName(trip string) string {
	return trip + models.ExpenseSheetSuffix
}
