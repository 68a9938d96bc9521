package response

import (
	"time"

	"parkhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type EntryTicketResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	SectorID      uuid.UUID `json:"sectorId"`
	Code          string    `json:"code"`
	EnteredAt     time.Time `json:"enteredAt"`
}

type ReceiptResponse struct {
	ReservationID   uuid.UUID `json:"reservationId"`
	SectorID        uuid.UUID `json:"sectorId"`
	EnteredAt       time.Time `json:"enteredAt"`
	ExitedAt        time.Time `json:"exitedAt"`
	DurationMinutes int64     `json:"durationMinutes"`
}

func FromEntryTicket(t *commands.EntryTicket) *EntryTicketResponse {
	return &EntryTicketResponse{
		ReservationID: t.ReservationID,
		SectorID:      t.SectorID,
		Code:          t.Code,
		EnteredAt:     t.EnteredAt,
	}
}

func FromReceipt(r *commands.Receipt) *ReceiptResponse {
	return &ReceiptResponse{
		ReservationID:   r.ReservationID,
		SectorID:        r.SectorID,
		EnteredAt:       r.EnteredAt,
		ExitedAt:        r.ExitedAt,
		DurationMinutes: int64(r.Duration.Minutes()),
	}
}
