package request

import (
	"strings"

	"parkhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type EnterRequest struct {
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
	ParkingID     uuid.UUID  `json:"parking_id" binding:"required"`
	SectorType    *string    `json:"sector_type,omitempty"`
}

func (r EnterRequest) GetSectorType() *string {
	if r.SectorType == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.SectorType)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r EnterRequest) ToParams() commands.EnterParams {
	return commands.EnterParams{
		ReservationID: r.ReservationID,
		ParkingID:     r.ParkingID,
		SectorType:    r.GetSectorType(),
	}
}

type ExitRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	Code          string    `json:"code" binding:"required"`
}
