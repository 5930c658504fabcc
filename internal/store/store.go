// Package store persists trips, itineraries and expenses. The backing
// document is one spreadsheet: an "Index" sheet of trip rows, one sheet
// per trip for its itinerary, and a lazily created {trip}_Expenses sheet.
package store

import (
	"context"

	"github.com/jaychen/travel-planner/internal/models"
)

// Store is the persistence boundary. Implementations keep no per-request
// state; every method round-trips to the backing document.
type Store interface {
	// ListTrips returns every index record, in row order.
	ListTrips(ctx context.Context) ([]models.Trip, error)

	// GetTrip returns one index record by name.
	GetTrip(ctx context.Context, name string) (*models.Trip, error)

	// CreateTrip validates the record, creates the trip's itinerary
	// sheet and appends the index row. Fails with ErrValidation on bad
	// fields and ErrConflict when the name is taken.
	CreateTrip(ctx context.Context, trip models.Trip) error

	// UpdateTripMeta overwrites the flight/hotel columns of one index
	// row, located by name. Last writer wins.
	UpdateTripMeta(ctx context.Context, name string, meta models.TripMeta) error

	// GetItinerary returns the trip's items in row-insertion order.
	GetItinerary(ctx context.Context, name string) ([]models.ItineraryItem, error)

	// AddItineraryItem appends one activity row.
	AddItineraryItem(ctx context.Context, name string, item models.ItineraryItem) error

	// ListExpenses returns the trip's expenses; a trip with no expense
	// sheet yet yields an empty list.
	ListExpenses(ctx context.Context, name string) ([]models.ExpenseItem, error)

	// AddExpense appends one expense row, creating the expense sheet on
	// first use.
	AddExpense(ctx context.Context, name string, item models.ExpenseItem) error
}
