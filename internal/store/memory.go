package store

import (
	"context"
	"sync"

	"github.com/jaychen/travel-planner/internal/models"
)

// Memory is an in-process Store with the same semantics as the Sheets
// implementation. It backs tests and credential-less local runs; nothing
// survives a restart.
type Memory struct {
	mu         sync.Mutex
	trips      []models.Trip
	partitions map[string][]models.ItineraryItem
	expenses   map[string][]models.ExpenseItem
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		partitions: make(map[string][]models.ItineraryItem),
		expenses:   make(map[string][]models.ExpenseItem),
	}
}

// ListTrips implements Store.
func (m *Memory) ListTrips(ctx context.Context) ([]models.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Trip, len(m.trips))
	copy(out, m.trips)
	return out, nil
}

// GetTrip implements Store.
func (m *Memory) GetTrip(ctx context.Context, name string) (*models.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.trips {
		if m.trips[i].Name == name {
			trip := m.trips[i]
			return &trip, nil
		}
	}
	return nil, notFoundErr(name)
}

// CreateTrip implements Store.
func (m *Memory) CreateTrip(ctx context.Context, trip models.Trip) error {
	if err := trip.ValidateNew(); err != nil {
		return validationErr("%v", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.trips {
		if existing.Name == trip.Name {
			return conflictErr(trip.Name)
		}
	}
	m.trips = append(m.trips, trip)
	m.partitions[trip.Name] = []models.ItineraryItem{}
	return nil
}

// UpdateTripMeta implements Store.
func (m *Memory) UpdateTripMeta(ctx context.Context, name string, meta models.TripMeta) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.trips {
		if m.trips[i].Name != name {
			continue
		}
		t := &m.trips[i]
		t.FlightNumber = meta.FlightNumber
		t.DepartureAirport = meta.DepartureAirport
		t.DepartureTime = meta.DepartureTime
		t.ArrivalAirport = meta.ArrivalAirport
		t.ArrivalTime = meta.ArrivalTime
		t.HotelName = meta.HotelName
		t.HotelAddress = meta.HotelAddress
		t.CheckinDate = meta.CheckinDate
		t.CheckoutDate = meta.CheckoutDate
		return nil
	}
	return notFoundErr(name)
}

// GetItinerary implements Store.
func (m *Memory) GetItinerary(ctx context.Context, name string) ([]models.ItineraryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items, ok := m.partitions[name]
	if !ok {
		return nil, notFoundErr(name)
	}
	out := make([]models.ItineraryItem, len(items))
	copy(out, items)
	return out, nil
}

// AddItineraryItem implements Store.
func (m *Memory) AddItineraryItem(ctx context.Context, name string, item models.ItineraryItem) error {
	trip, err := m.GetTrip(ctx, name)
	if err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return validationErr("%v", err)
	}
	item.DeriveMapLink(trip.Country)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.partitions[name] = append(m.partitions[name], item)
	return nil
}

// ListExpenses implements Store.
func (m *Memory) ListExpenses(ctx context.Context, name string) ([]models.ExpenseItem, error) {
	if _, err := m.GetTrip(ctx, name); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	items := m.expenses[name]
	out := make([]models.ExpenseItem, len(items))
	copy(out, items)
	return out, nil
}

// AddExpense implements Store.
func (m *Memory) AddExpense(ctx context.Context, name string, item models.ExpenseItem) error {
	trip, err := m.GetTrip(ctx, name)
	if err != nil {
		return err
	}
	item.Normalize(trip.Country)
	if err := item.Validate(); err != nil {
		return validationErr("%v", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.expenses[name] = append(m.expenses[name], item)
	return nil
}
