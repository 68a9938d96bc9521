package commands

import (
	"context"
	"encoding/json"
	"time"

	"parkhub/internal/domain/parking"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/clock"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type SectorCommands interface {
	Activate(ctx context.Context, sectorID uuid.UUID) error
	// Deactivate takes a sector out of service. With when == nil the sector
	// must be empty and is closed immediately; otherwise the closure is
	// scheduled for the (strictly future) instant.
	Deactivate(ctx context.Context, sectorID uuid.UUID, when *time.Time) error
}

type sectorCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSectorCommands(uow shared.UnitOfWork, clk clock.Clock) SectorCommands {
	return &sectorCommandsImpl{uow: uow, clock: clk}
}

func (s *sectorCommandsImpl) Activate(ctx context.Context, sectorID uuid.UUID) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sector, err := s.findSector(ctx, tx, sectorID)
		if err != nil {
			return err
		}

		if err := sector.Activate(); err != nil {
			return mapSectorStateErr(err)
		}

		if err := tx.Sectors().SetActivation(ctx, sector, sector.Version()); err != nil {
			return mapLedgerErr(err)
		}

		return publishSectorEvent(ctx, tx, "sector_activated", sector)
	})
}

func (s *sectorCommandsImpl) Deactivate(ctx context.Context, sectorID uuid.UUID, when *time.Time) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sector, err := s.findSector(ctx, tx, sectorID)
		if err != nil {
			return err
		}

		if when == nil {
			// Scheduled-but-not-yet-entered reservations block an immediate
			// closure just like physically present cars.
			open, countErr := tx.Reservations().CountOpenBySector(ctx, sectorID)
			if countErr != nil {
				return errs.Mark(countErr, ErrDatabaseOperationFailed)
			}
			if open > 0 {
				return ErrSectorStillOccupied
			}
		}

		if err := sector.Deactivate(s.clock.Now(), when); err != nil {
			return mapSectorStateErr(err)
		}

		if err := tx.Sectors().SetActivation(ctx, sector, sector.Version()); err != nil {
			return mapLedgerErr(err)
		}

		return publishSectorEvent(ctx, tx, "sector_deactivated", sector)
	})
}

func (s *sectorCommandsImpl) findSector(ctx context.Context, tx shared.Tx, sectorID uuid.UUID) (*parking.Sector, error) {
	sector, err := tx.Sectors().FindByID(ctx, sectorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSectorNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return sector, nil
}

func mapSectorStateErr(err error) error {
	switch err {
	case parking.ErrSectorAlreadyActive:
		return ErrSectorAlreadyActive
	case parking.ErrSectorAlreadyInactive:
		return ErrSectorAlreadyInactive
	case parking.ErrSectorStillOccupied:
		return ErrSectorStillOccupied
	case parking.ErrDeactivationNotFuture:
		return ErrDeactivationNotFuture
	default:
		return err
	}
}

func publishSectorEvent(ctx context.Context, tx shared.Tx, topic string, sector *parking.Sector) error {
	payload, err := json.Marshal(map[string]any{
		"sector_id":  sector.ID(),
		"parking_id": sector.ParkingID(),
		"active":     sector.Active(),
	})
	if err != nil {
		return err
	}
	if err := tx.Outbox().CreateJob(ctx, "email", topic, payload); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
