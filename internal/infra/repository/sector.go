package repository

import (
	"context"
	"errors"

	"parkhub/internal/domain/parking"
	"parkhub/internal/infra"
	"parkhub/internal/infra/db"
	"parkhub/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type SectorRepository struct {
	db db.DBTX
}

func NewSectorRepository(dbtx db.DBTX) *SectorRepository {
	return &SectorRepository{db: dbtx}
}

const sectorColumns = `id, parking_id, name, type, max_places, occupied_places, weight, active, deactivate_at, version`

func (r *SectorRepository) FindByID(ctx context.Context, id uuid.UUID) (*parking.Sector, error) {
	row := r.db.QueryRow(ctx, `SELECT `+sectorColumns+` FROM sectors WHERE id = $1`, id)
	sector, err := scanSector(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "sector not found", err)
		}
		return nil, infra.ClassifyPgError("failed to find sector", err)
	}
	return sector, nil
}

func (r *SectorRepository) FindByParking(ctx context.Context, parkingID uuid.UUID) ([]*parking.Sector, error) {
	rows, err := r.db.Query(ctx, `SELECT `+sectorColumns+` FROM sectors WHERE parking_id = $1 ORDER BY name`, parkingID)
	if err != nil {
		return nil, infra.ClassifyPgError("failed to list sectors", err)
	}
	defer rows.Close()

	var sectors []*parking.Sector
	for rows.Next() {
		sector, scanErr := scanSector(rows)
		if scanErr != nil {
			return nil, infra.ClassifyPgError("failed to scan sector", scanErr)
		}
		sectors = append(sectors, sector)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgError("failed to iterate sectors", err)
	}
	return sectors, nil
}

// ReservePlace is the commit point of the capacity ledger: the occupancy
// guard and the version compare-and-increment happen in the UPDATE itself,
// so at most one writer per version can succeed.
func (r *SectorRepository) ReservePlace(ctx context.Context, sectorID uuid.UUID, expectedVersion int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE sectors
		SET occupied_places = occupied_places + 1, version = version + 1
		WHERE id = $1 AND version = $2 AND active AND occupied_places < max_places`,
		sectorID, expectedVersion)
	if err != nil {
		return infra.ClassifyPgError("failed to reserve place", err)
	}
	if tag.RowsAffected() == 0 {
		return r.diagnoseReserveFailure(ctx, sectorID, expectedVersion)
	}
	return nil
}

// ReleasePlace is the mirror of ReservePlace. An underflow means a place was
// released twice; that is an invariant violation and is reported as such.
func (r *SectorRepository) ReleasePlace(ctx context.Context, sectorID uuid.UUID, expectedVersion int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE sectors
		SET occupied_places = occupied_places - 1, version = version + 1
		WHERE id = $1 AND version = $2 AND occupied_places > 0`,
		sectorID, expectedVersion)
	if err != nil {
		return infra.ClassifyPgError("failed to release place", err)
	}
	if tag.RowsAffected() == 0 {
		return r.diagnoseReleaseFailure(ctx, sectorID, expectedVersion)
	}
	return nil
}

func (r *SectorRepository) SetActivation(ctx context.Context, sector *parking.Sector, expectedVersion int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE sectors
		SET active = $2, deactivate_at = $3, version = version + 1
		WHERE id = $1 AND version = $4`,
		sector.ID(), sector.Active(), ptr.PgtypeFromTime(sector.DeactivateAt()), expectedVersion)
	if err != nil {
		return infra.ClassifyPgError("failed to update sector activation", err)
	}
	if tag.RowsAffected() == 0 {
		return r.diagnoseVersionFailure(ctx, sector.ID(), expectedVersion, "sector activation")
	}
	return nil
}

// diagnoseReserveFailure re-reads the row inside the same transaction to
// tell a stale version apart from a genuinely full sector, so callers can
// distinguish "retry the same operation" from "try a different sector".
func (r *SectorRepository) diagnoseReserveFailure(ctx context.Context, sectorID uuid.UUID, expectedVersion int64) error {
	var version int64
	var occupied, maxPlaces int
	var active bool
	err := r.db.QueryRow(ctx,
		`SELECT version, occupied_places, max_places, active FROM sectors WHERE id = $1`,
		sectorID).Scan(&version, &occupied, &maxPlaces, &active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr(infra.KindNotFound, "sector not found", err)
		}
		return infra.ClassifyPgError("failed to diagnose reserve failure", err)
	}
	if version != expectedVersion {
		return infra.NewRepoErr(infra.KindVersionConflict, "sector version conflict")
	}
	if !active {
		return infra.NewRepoErr(infra.KindNoCapacity, "sector is inactive")
	}
	return infra.NewRepoErr(infra.KindNoCapacity, "sector has no free places")
}

func (r *SectorRepository) diagnoseReleaseFailure(ctx context.Context, sectorID uuid.UUID, expectedVersion int64) error {
	var version int64
	var occupied int
	err := r.db.QueryRow(ctx,
		`SELECT version, occupied_places FROM sectors WHERE id = $1`,
		sectorID).Scan(&version, &occupied)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr(infra.KindNotFound, "sector not found", err)
		}
		return infra.ClassifyPgError("failed to diagnose release failure", err)
	}
	if version != expectedVersion {
		return infra.NewRepoErr(infra.KindVersionConflict, "sector version conflict")
	}
	return infra.NewRepoErr(infra.KindDBFailure, "sector occupancy underflow")
}

func (r *SectorRepository) diagnoseVersionFailure(ctx context.Context, sectorID uuid.UUID, expectedVersion int64, what string) error {
	var version int64
	err := r.db.QueryRow(ctx, `SELECT version FROM sectors WHERE id = $1`, sectorID).Scan(&version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr(infra.KindNotFound, "sector not found", err)
		}
		return infra.ClassifyPgError("failed to diagnose "+what, err)
	}
	return infra.NewRepoErr(infra.KindVersionConflict, "sector version conflict")
}

func scanSector(row pgx.Row) (*parking.Sector, error) {
	var (
		id, parkingID       uuid.UUID
		name, sectorType    string
		maxPlaces, occupied int
		weight              int
		active              bool
		deactivateAt        pgtype.Timestamptz
		version             int64
	)
	if err := row.Scan(&id, &parkingID, &name, &sectorType, &maxPlaces, &occupied, &weight, &active, &deactivateAt, &version); err != nil {
		return nil, err
	}
	return parking.ReconstructSector(
		id, parkingID, name, parking.SectorType(sectorType),
		maxPlaces, occupied, weight, active,
		ptr.TimeFromPgtype(deactivateAt), version,
	), nil
}
