package repository

import (
	"context"

	"parkhub/internal/domain/reservation"
	"parkhub/internal/infra"
	"parkhub/internal/infra/db"
)

type ParkingEventRepository struct {
	db db.DBTX
}

func NewParkingEventRepository(dbtx db.DBTX) *ParkingEventRepository {
	return &ParkingEventRepository{db: dbtx}
}

// Append writes gate events. Duplicate IDs are ignored so re-persisting a
// reservation's full event list only adds the new facts; rows are never
// updated or deleted.
func (r *ParkingEventRepository) Append(ctx context.Context, events []reservation.ParkingEvent) error {
	for _, e := range events {
		_, err := r.db.Exec(ctx, `
			INSERT INTO parking_events (id, reservation_id, kind, occurred_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			e.ID(), e.ReservationID(), e.Kind().String(), e.OccurredAt())
		if err != nil {
			return infra.ClassifyPgError("failed to append parking event", err)
		}
	}
	return nil
}
