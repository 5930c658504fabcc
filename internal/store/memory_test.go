package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaychen/travel-planner/internal/models"
)

func newTrip(name string) models.Trip {
	return models.Trip{
		Name:      name,
		StartDate: "2025-04-01",
		EndDate:   "2025-04-03",
		Country:   "日本 (Japan)",
	}
}

func TestCreateTripThenList(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.CreateTrip(ctx, newTrip("Tokyo2025")))

	trips, err := s.ListTrips(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Tokyo2025", trips[0].Name)
	assert.Equal(t, "2025-04-01", trips[0].StartDate)

	// the itinerary partition exists and is empty
	items, err := s.GetItinerary(ctx, "Tokyo2025")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateTripDuplicateName(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.CreateTrip(ctx, newTrip("Tokyo2025")))
	err := s.CreateTrip(ctx, newTrip("Tokyo2025"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	trips, err := s.ListTrips(ctx)
	require.NoError(t, err)
	assert.Len(t, trips, 1, "conflicting create must not add a row")
}

func TestCreateTripValidation(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	tests := []struct {
		name string
		trip models.Trip
	}{
		{"blank name", models.Trip{StartDate: "2025-04-01", EndDate: "2025-04-03", Country: "日本 (Japan)"}},
		{"bad date", models.Trip{Name: "T", StartDate: "yesterday", EndDate: "2025-04-03", Country: "日本 (Japan)"}},
		{"end before start", models.Trip{Name: "T", StartDate: "2025-04-03", EndDate: "2025-04-01", Country: "日本 (Japan)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.CreateTrip(ctx, tt.trip)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	trips, err := s.ListTrips(ctx)
	require.NoError(t, err)
	assert.Empty(t, trips, "failed creates must not leave partial records")
}

func TestItineraryRoundTrip(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	require.NoError(t, s.CreateTrip(ctx, newTrip("Tokyo2025")))

	item := models.ItineraryItem{
		Date:      "2025-04-01",
		StartTime: "09:00",
		EndTime:   "10:30",
		Activity:  "Senso-ji Temple",
		MapLink:   "https://maps.example/sensoji",
		Note:      "go early",
	}
	require.NoError(t, s.AddItineraryItem(ctx, "Tokyo2025", item))

	items, err := s.GetItinerary(ctx, "Tokyo2025")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item, items[0], "all fields preserved byte for byte")
}

func TestAddItineraryItemDerivesMapLink(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	require.NoError(t, s.CreateTrip(ctx, newTrip("Tokyo2025")))

	require.NoError(t, s.AddItineraryItem(ctx, "Tokyo2025", models.ItineraryItem{
		Date:     "2025-04-01",
		Activity: "Senso-ji Temple",
	}))

	items, err := s.GetItinerary(ctx, "Tokyo2025")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0].MapLink, "google.com/maps/search")
}

func TestAddItineraryItemValidation(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	require.NoError(t, s.CreateTrip(ctx, newTrip("Tokyo2025")))

	err := s.AddItineraryItem(ctx, "Tokyo2025", models.ItineraryItem{Date: "2025-04-01"})
	assert.ErrorIs(t, err, ErrValidation)

	err = s.AddItineraryItem(ctx, "Tokyo2025", models.ItineraryItem{Activity: "Temple"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUnknownTripIsNotFound(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	_, err := s.GetItinerary(ctx, "Nowhere")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetTrip(ctx, "Nowhere")
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.AddItineraryItem(ctx, "Nowhere", models.ItineraryItem{Date: "2025-04-01", Activity: "X"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.UpdateTripMeta(ctx, "Nowhere", models.TripMeta{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTripMeta(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	require.NoError(t, s.CreateTrip(ctx, newTrip("Tokyo2025")))

	meta := models.TripMeta{
		FlightNumber:     "BR198",
		DepartureAirport: "TPE",
		DepartureTime:    "09:20",
		ArrivalAirport:   "NRT",
		ArrivalTime:      "13:30",
		HotelName:        "Asakusa View",
		HotelAddress:     "3-17-1 Nishi-Asakusa",
		CheckinDate:      "2025-04-01",
		CheckoutDate:     "2025-04-03",
	}
	require.NoError(t, s.UpdateTripMeta(ctx, "Tokyo2025", meta))

	trip, err := s.GetTrip(ctx, "Tokyo2025")
	require.NoError(t, err)
	assert.Equal(t, "BR198", trip.FlightNumber)
	assert.Equal(t, "Asakusa View", trip.HotelName)
	assert.Equal(t, "2025-04-03", trip.CheckoutDate)
	// creation columns untouched
	assert.Equal(t, "2025-04-01", trip.StartDate)
	assert.Equal(t, "日本 (Japan)", trip.Country)
}

func TestExpensesLazyPartition(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	require.NoError(t, s.CreateTrip(ctx, newTrip("Tokyo2025")))

	// no expense recorded yet: empty list, not an error
	items, err := s.ListExpenses(ctx, "Tokyo2025")
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, s.AddExpense(ctx, "Tokyo2025", models.ExpenseItem{
		Description: "taxi",
		Category:    models.CategoryTransport,
		Amount:      "100",
		Date:        "2025-04-01",
	}))

	items, err = s.ListExpenses(ctx, "Tokyo2025")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "taxi", items[0].Description)
	assert.Equal(t, "JPY", items[0].Currency, "currency defaults from the trip country")
}

func TestAddExpenseValidation(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	require.NoError(t, s.CreateTrip(ctx, newTrip("Tokyo2025")))

	err := s.AddExpense(ctx, "Tokyo2025", models.ExpenseItem{Category: models.CategoryFood, Amount: "100"})
	assert.ErrorIs(t, err, ErrValidation)

	err = s.AddExpense(ctx, "Tokyo2025", models.ExpenseItem{Description: "x", Amount: "not-a-number"})
	assert.ErrorIs(t, err, ErrValidation)

	err = s.AddExpense(ctx, "Nowhere", models.ExpenseItem{Description: "x", Amount: "1"})
	assert.ErrorIs(t, err, ErrNotFound)
}
