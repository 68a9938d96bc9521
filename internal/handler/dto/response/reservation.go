package response

import (
	"time"

	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID         uuid.UUID       `json:"id"`
	ClientID   uuid.UUID       `json:"clientId"`
	SectorID   uuid.UUID       `json:"sectorId"`
	SectorName string          `json:"sectorName"`
	SectorType string          `json:"sectorType"`
	BeginTime  time.Time       `json:"beginTime"`
	EndTime    time.Time       `json:"endTime"`
	Status     string          `json:"status"`
	Events     []EventResponse `json:"events,omitempty"`
}

type EventResponse struct {
	ID         uuid.UUID `json:"id"`
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurredAt"`
}

type CreateReservationResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	events := make([]EventResponse, len(rm.Events))
	for i, ev := range rm.Events {
		events[i] = EventResponse{
			ID:         ev.ID,
			Kind:       ev.Kind,
			OccurredAt: ev.OccurredAt,
		}
	}
	return &ReservationResponse{
		ID:         rm.ID,
		ClientID:   rm.ClientID,
		SectorID:   rm.SectorID,
		SectorName: rm.SectorName,
		SectorType: rm.SectorType,
		BeginTime:  rm.BeginTime,
		EndTime:    rm.EndTime,
		Status:     rm.Status,
		Events:     events,
	}
}
