//go:build unit || e2e

package builder

import (
	"time"

	"parkhub/internal/domain/parking"

	"github.com/google/uuid"
)

type SectorBuilder struct {
	ID           uuid.UUID
	ParkingID    uuid.UUID
	Name         string
	Type         parking.SectorType
	MaxPlaces    int
	Occupied     int
	Weight       int
	Active       bool
	DeactivateAt *time.Time
	Version      int64
}

func NewSectorBuilder() *SectorBuilder {
	return &SectorBuilder{
		ID:        uuid.New(),
		ParkingID: uuid.New(),
		Name:      "A",
		Type:      parking.SectorCovered,
		MaxPlaces: 10,
		Occupied:  0,
		Weight:    0,
		Active:    true,
	}
}

func (b *SectorBuilder) With(mutate func(*SectorBuilder)) *SectorBuilder {
	mutate(b)
	return b
}

func (b *SectorBuilder) BuildDomain() *parking.Sector {
	return parking.ReconstructSector(
		b.ID, b.ParkingID, b.Name, b.Type,
		b.MaxPlaces, b.Occupied, b.Weight,
		b.Active, b.DeactivateAt, b.Version,
	)
}
