package repository

import (
	"context"
	"errors"

	"parkhub/internal/domain/parking"
	"parkhub/internal/infra"
	"parkhub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ParkingRepository struct {
	db db.DBTX
}

func NewParkingRepository(dbtx db.DBTX) *ParkingRepository {
	return &ParkingRepository{db: dbtx}
}

func (r *ParkingRepository) FindByID(ctx context.Context, id uuid.UUID) (*parking.Parking, error) {
	var (
		address  string
		strategy string
		version  int64
	)
	err := r.db.QueryRow(ctx, `SELECT address, strategy, version FROM parkings WHERE id = $1`, id).
		Scan(&address, &strategy, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "parking not found", err)
		}
		return nil, infra.ClassifyPgError("failed to find parking", err)
	}
	return parking.ReconstructParking(id, address, parking.Strategy(strategy), version), nil
}
