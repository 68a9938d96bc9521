package request

import (
	"strings"
	"time"

	"parkhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ParkingID  uuid.UUID  `json:"parking_id" binding:"required"`
	SectorID   *uuid.UUID `json:"sector_id,omitempty"`
	SectorType *string    `json:"sector_type,omitempty"`
	BeginTime  time.Time  `json:"begin_time" binding:"required"`
	EndTime    time.Time  `json:"end_time" binding:"required"`
}

func (r CreateReservationRequest) GetSectorType() *string {
	if r.SectorType == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.SectorType)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateReservationRequest) ToParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		ParkingID:  r.ParkingID,
		SectorID:   r.SectorID,
		SectorType: r.GetSectorType(),
		Begin:      r.BeginTime,
		End:        r.EndTime,
	}
}
