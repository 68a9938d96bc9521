package commands

import (
	"context"
	"time"

	"parkhub/internal/domain/parking"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

// reserveSectorPlace applies one place reservation to both the in-memory
// entity and the store, translating ledger-level kinds into command
// sentinels. Must run inside the same transaction as the reservation insert.
func reserveSectorPlace(ctx context.Context, tx shared.Tx, sector *parking.Sector) error {
	if err := sector.ReservePlace(); err != nil {
		switch err {
		case parking.ErrNoAvailablePlace:
			return ErrNoAvailablePlace
		case parking.ErrSectorNotActive:
			return ErrSectorNonActive
		default:
			return err
		}
	}
	if err := tx.Sectors().ReservePlace(ctx, sector.ID(), sector.Version()); err != nil {
		return mapLedgerErr(err)
	}
	return nil
}

func releaseSectorPlace(ctx context.Context, tx shared.Tx, sectorID uuid.UUID) error {
	sector, err := tx.Sectors().FindByID(ctx, sectorID)
	if err != nil {
		return mapLedgerErr(err)
	}
	if err := tx.Sectors().ReleasePlace(ctx, sector.ID(), sector.Version()); err != nil {
		return mapLedgerErr(err)
	}
	return nil
}

func mapLedgerErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrSectorNotFound)
	case infra.IsKind(err, infra.KindVersionConflict):
		return errs.Mark(err, ErrVersionConflict)
	case infra.IsKind(err, infra.KindNoCapacity):
		return errs.Mark(err, ErrNoAvailablePlace)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

// resolveSector returns the target sector: the explicitly requested one, or
// the one the parking's strategy selects for the requested type. Selection
// and the later place reservation share one transaction, so two concurrent
// walk-ins cannot both claim the last place of a sector.
func resolveSector(
	ctx context.Context,
	tx shared.Tx,
	parkingID uuid.UUID,
	sectorID *uuid.UUID,
	sectorType *string,
	at time.Time,
) (*parking.Sector, error) {
	if sectorID != nil {
		sector, err := tx.Sectors().FindByID(ctx, *sectorID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrSectorNotFound)
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return sector, nil
	}

	facility, err := tx.Parkings().FindByID(ctx, parkingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrParkingNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	sectors, err := tx.Sectors().FindByParking(ctx, facility.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var requestedType *parking.SectorType
	if sectorType != nil {
		st, typeErr := parking.NewSectorType(*sectorType)
		if typeErr != nil {
			return nil, errs.Mark(typeErr, ErrNoAvailableSector)
		}
		requestedType = &st
	}

	sector, err := parking.SelectSector(facility, sectors, requestedType, at)
	if err != nil {
		return nil, errs.Mark(err, ErrNoAvailableSector)
	}
	return sector, nil
}
