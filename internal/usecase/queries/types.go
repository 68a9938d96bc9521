package queries

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// Read models (DTO for read side). Availability listings run outside any
// transaction and may be marginally stale; they are for display, not for
// admission decisions.

type ReservationView struct {
	ID         uuid.UUID   `json:"id"`
	ClientID   uuid.UUID   `json:"client_id"`
	SectorID   uuid.UUID   `json:"sector_id"`
	SectorName string      `json:"sector_name"`
	SectorType string      `json:"sector_type"`
	BeginTime  time.Time   `json:"begin_time"`
	EndTime    time.Time   `json:"end_time"`
	Status     string      `json:"status"`
	Events     []EventView `json:"events,omitempty"`
}

type EventView struct {
	ID         uuid.UUID `json:"id"`
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
}

type SectorAvailabilityView struct {
	ID             uuid.UUID  `json:"id"`
	ParkingID      uuid.UUID  `json:"parking_id"`
	Name           string     `json:"name"`
	Type           string     `json:"type"`
	MaxPlaces      int        `json:"max_places"`
	OccupiedPlaces int        `json:"occupied_places"`
	FreePlaces     int        `json:"free_places"`
	Weight         int        `json:"weight"`
	Active         bool       `json:"active"`
	DeactivateAt   *time.Time `json:"deactivate_at,omitempty"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*ReservationView, error)
}

type SectorQueries interface {
	ListByParking(ctx context.Context, parkingID uuid.UUID) ([]*SectorAvailabilityView, error)
}
