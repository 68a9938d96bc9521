package response

import (
	"time"

	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SectorAvailabilityResponse struct {
	ID             uuid.UUID  `json:"id"`
	ParkingID      uuid.UUID  `json:"parkingId"`
	Name           string     `json:"name"`
	Type           string     `json:"type"`
	MaxPlaces      int        `json:"maxPlaces"`
	OccupiedPlaces int        `json:"occupiedPlaces"`
	FreePlaces     int        `json:"freePlaces"`
	Weight         int        `json:"weight"`
	Active         bool       `json:"active"`
	DeactivateAt   *time.Time `json:"deactivateAt,omitempty"`
}

func FromSectorAvailabilityView(rm *queries.SectorAvailabilityView) (*SectorAvailabilityResponse, error) {
	var resp SectorAvailabilityResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, err
	}
	return &resp, nil
}
