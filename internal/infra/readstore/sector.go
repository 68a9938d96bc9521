package readstore

import (
	"context"

	"parkhub/internal/infra"
	"parkhub/internal/infra/db"
	"parkhub/internal/pkg/ptr"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SectorReadStore struct {
	db db.DBTX
}

func NewSectorReadStore(dbtx db.DBTX) *SectorReadStore {
	return &SectorReadStore{db: dbtx}
}

func (r *SectorReadStore) ListByParking(ctx context.Context, parkingID uuid.UUID) ([]*queries.SectorAvailabilityView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, parking_id, name, type, max_places, occupied_places, weight, active, deactivate_at
		FROM sectors WHERE parking_id = $1 ORDER BY name`, parkingID)
	if err != nil {
		return nil, infra.ClassifyPgError("failed to list sector availability", err)
	}
	defer rows.Close()

	var views []*queries.SectorAvailabilityView
	for rows.Next() {
		var (
			view         queries.SectorAvailabilityView
			deactivateAt pgtype.Timestamptz
		)
		if scanErr := rows.Scan(&view.ID, &view.ParkingID, &view.Name, &view.Type,
			&view.MaxPlaces, &view.OccupiedPlaces, &view.Weight, &view.Active, &deactivateAt); scanErr != nil {
			return nil, infra.ClassifyPgError("failed to scan sector availability", scanErr)
		}
		view.FreePlaces = view.MaxPlaces - view.OccupiedPlaces
		view.DeactivateAt = ptr.TimeFromPgtype(deactivateAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgError("failed to iterate sector availability", err)
	}
	return views, nil
}
