package shared

import (
	"context"

	"parkhub/internal/domain/client"
	"parkhub/internal/domain/parking"
	"parkhub/internal/domain/reservation"
	"parkhub/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for capacity-affecting operations
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single read operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

// Tx exposes the repositories bound to one transaction. Every mutation made
// through it commits or rolls back as a single atomic unit.
type Tx interface {
	Parkings() ParkingRepository
	Sectors() SectorRepository
	Reservations() ReservationRepository
	Accounts() AccountRepository
	EntryCodes() EntryCodeRepository
	Events() ParkingEventRepository
	Outbox() OutboxRepository
	DB() db.DBTX
}

type ParkingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*parking.Parking, error)
}

// SectorRepository is the persistence side of the capacity ledger. The
// place-count mutations are compare-and-increment on the version column: a
// stale expectedVersion surfaces as KindVersionConflict, a full sector as
// KindNoCapacity.
type SectorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*parking.Sector, error)
	FindByParking(ctx context.Context, parkingID uuid.UUID) ([]*parking.Sector, error)
	ReservePlace(ctx context.Context, sectorID uuid.UUID, expectedVersion int64) error
	ReleasePlace(ctx context.Context, sectorID uuid.UUID, expectedVersion int64) error
	SetActivation(ctx context.Context, sector *parking.Sector, expectedVersion int64) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, res *reservation.Reservation, expectedVersion int64) error
	CountActiveByClient(ctx context.Context, clientID uuid.UUID) (int, error)
	// ListOpenWindows returns the windows of the client's scheduled and
	// entered reservations on the sector, for overlap checking.
	ListOpenWindows(ctx context.Context, clientID, sectorID uuid.UUID) ([]reservation.TimeWindow, error)
	CountOpenBySector(ctx context.Context, sectorID uuid.UUID) (int, error)
}

type AccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*client.Account, error)
}

type EntryCodeRepository interface {
	Create(ctx context.Context, code EntryCodeRecord) error
	FindByReservation(ctx context.Context, reservationID uuid.UUID) (*EntryCodeRecord, error)
	// Delete redeems the code; the second redeem finds nothing to delete.
	Delete(ctx context.Context, reservationID uuid.UUID) (bool, error)
}

type ParkingEventRepository interface {
	Append(ctx context.Context, events []reservation.ParkingEvent) error
}

// OutboxRepository records domain events in the same transaction as the
// mutation that caused them; external subscribers drain the outbox.
type OutboxRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte) error
}
