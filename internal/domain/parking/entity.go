package parking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAddress        = errors.New("address must not be empty")
	ErrInvalidSectorName     = errors.New("sector name must not be empty")
	ErrInvalidMaxPlaces      = errors.New("max places must be positive")
	ErrNoAvailablePlace      = errors.New("no available place in sector")
	ErrNegativeOccupancy     = errors.New("occupied places would drop below zero")
	ErrSectorNotActive       = errors.New("sector is not active")
	ErrSectorAlreadyActive   = errors.New("sector is already active")
	ErrSectorAlreadyInactive = errors.New("sector is already inactive")
	ErrSectorStillOccupied   = errors.New("sector has open reservations or entries")
	ErrDeactivationNotFuture = errors.New("scheduled deactivation must be in the future")
)

// Parking is a facility. Sectors are owned by exactly one parking and looked
// up by parking ID; there is no live back-reference from sector to parking.
type Parking struct {
	id       uuid.UUID
	address  string
	strategy Strategy
	version  int64
}

func NewParking(address string, strategy Strategy) (*Parking, error) {
	if address == "" {
		return nil, ErrInvalidAddress
	}
	if !strategy.IsValid() {
		return nil, ErrInvalidStrategy
	}
	return &Parking{
		id:       uuid.New(),
		address:  address,
		strategy: strategy,
	}, nil
}

func ReconstructParking(id uuid.UUID, address string, strategy Strategy, version int64) *Parking {
	return &Parking{
		id:       id,
		address:  address,
		strategy: strategy,
		version:  version,
	}
}

func (p *Parking) ID() uuid.UUID      { return p.id }
func (p *Parking) Address() string    { return p.address }
func (p *Parking) Strategy() Strategy { return p.strategy }
func (p *Parking) Version() int64     { return p.version }

// Sector is a capacity-bearing subdivision of a parking. The occupied-places
// counter is the source of truth for "is there room"; every mutation goes
// through ReservePlace/ReleasePlace so the 0 <= occupied <= max invariant
// cannot be broken in-process. The version field backs the optimistic
// compare-and-increment performed at commit time.
type Sector struct {
	id           uuid.UUID
	parkingID    uuid.UUID
	name         string
	sectorType   SectorType
	maxPlaces    int
	occupied     int
	weight       int
	active       bool
	deactivateAt *time.Time
	version      int64
}

func NewSector(parkingID uuid.UUID, name string, sectorType SectorType, maxPlaces, weight int) (*Sector, error) {
	if name == "" {
		return nil, ErrInvalidSectorName
	}
	if !sectorType.IsValid() {
		return nil, ErrInvalidSectorType
	}
	if maxPlaces <= 0 {
		return nil, ErrInvalidMaxPlaces
	}
	return &Sector{
		id:         uuid.New(),
		parkingID:  parkingID,
		name:       name,
		sectorType: sectorType,
		maxPlaces:  maxPlaces,
		weight:     weight,
		active:     true,
	}, nil
}

func ReconstructSector(
	id, parkingID uuid.UUID,
	name string,
	sectorType SectorType,
	maxPlaces, occupied, weight int,
	active bool,
	deactivateAt *time.Time,
	version int64,
) *Sector {
	return &Sector{
		id:           id,
		parkingID:    parkingID,
		name:         name,
		sectorType:   sectorType,
		maxPlaces:    maxPlaces,
		occupied:     occupied,
		weight:       weight,
		active:       active,
		deactivateAt: deactivateAt,
		version:      version,
	}
}

// ReservePlace takes one place. The caller commits the change with a
// version-checked update; a concurrent winner surfaces there as a conflict.
func (s *Sector) ReservePlace() error {
	if !s.active {
		return ErrSectorNotActive
	}
	if s.occupied >= s.maxPlaces {
		return ErrNoAvailablePlace
	}
	s.occupied++
	return nil
}

// ReleasePlace returns one place. Going below zero is an invariant violation
// and is reported, never clamped silently.
func (s *Sector) ReleasePlace() error {
	if s.occupied <= 0 {
		return ErrNegativeOccupancy
	}
	s.occupied--
	return nil
}

func (s *Sector) HasCapacity() bool {
	return s.occupied < s.maxPlaces
}

func (s *Sector) FreePlaces() int {
	return s.maxPlaces - s.occupied
}

// OccupancyRatio is occupied/max in [0,1]. maxPlaces is always positive.
func (s *Sector) OccupancyRatio() float64 {
	return float64(s.occupied) / float64(s.maxPlaces)
}

// IsOperationalAt reports whether the sector admits entries at the given
// instant: active, and any scheduled deactivation not yet effective.
func (s *Sector) IsOperationalAt(at time.Time) bool {
	if !s.active {
		return false
	}
	if s.deactivateAt != nil && !at.Before(*s.deactivateAt) {
		return false
	}
	return true
}

// AcceptsWindow reports whether a reservation window fits entirely inside
// the sector's operational period: the window must end before any scheduled
// deactivation takes effect.
func (s *Sector) AcceptsWindow(begin, end time.Time) bool {
	if !s.IsOperationalAt(begin) {
		return false
	}
	if s.deactivateAt != nil && end.After(*s.deactivateAt) {
		return false
	}
	return true
}

// Deactivate takes the sector out of service. Immediate deactivation
// requires the sector to be empty; a non-empty sector can only be scheduled
// for deactivation strictly in the future.
func (s *Sector) Deactivate(now time.Time, when *time.Time) error {
	if !s.active {
		return ErrSectorAlreadyInactive
	}
	if when == nil {
		if s.occupied > 0 {
			return ErrSectorStillOccupied
		}
		s.active = false
		s.deactivateAt = nil
		return nil
	}
	if !when.After(now) {
		return ErrDeactivationNotFuture
	}
	w := *when
	s.deactivateAt = &w
	return nil
}

func (s *Sector) Activate() error {
	if s.active && s.deactivateAt == nil {
		return ErrSectorAlreadyActive
	}
	s.active = true
	s.deactivateAt = nil
	return nil
}

func (s *Sector) ID() uuid.UUID            { return s.id }
func (s *Sector) ParkingID() uuid.UUID     { return s.parkingID }
func (s *Sector) Name() string             { return s.name }
func (s *Sector) Type() SectorType         { return s.sectorType }
func (s *Sector) MaxPlaces() int           { return s.maxPlaces }
func (s *Sector) OccupiedPlaces() int      { return s.occupied }
func (s *Sector) Weight() int              { return s.weight }
func (s *Sector) Active() bool             { return s.active }
func (s *Sector) DeactivateAt() *time.Time { return s.deactivateAt }
func (s *Sector) Version() int64           { return s.version }
