package repository

import (
	"context"
	"errors"
	"time"

	"parkhub/internal/domain/reservation"
	"parkhub/internal/infra"
	"parkhub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reservations (id, client_id, sector_id, begin_time, end_time, status, version)
		VALUES ($1, $2, $3, $4, $5, $6, 0)`,
		res.ID(), res.ClientID(), res.SectorID(),
		res.Window().Begin(), res.Window().End(), res.Status().String())
	if err != nil {
		return infra.ClassifyPgError("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	var (
		clientID, sectorID uuid.UUID
		beginTime, endTime time.Time
		status             string
		version            int64
	)
	err := r.db.QueryRow(ctx, `
		SELECT client_id, sector_id, begin_time, end_time, status, version
		FROM reservations WHERE id = $1`, id).
		Scan(&clientID, &sectorID, &beginTime, &endTime, &status, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.ClassifyPgError("failed to find reservation", err)
	}

	events, err := r.findEvents(ctx, id)
	if err != nil {
		return nil, err
	}

	window, err := reservation.NewTimeWindow(beginTime, endTime)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored reservation window is invalid", err)
	}

	return reservation.Reconstruct(id, clientID, sectorID, window, reservation.Status(status), events, version), nil
}

// UpdateStatus commits a lifecycle transition with the same
// compare-and-increment discipline as the capacity ledger.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation, expectedVersion int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations SET status = $2, version = version + 1
		WHERE id = $1 AND version = $3`,
		res.ID(), res.Status().String(), expectedVersion)
	if err != nil {
		return infra.ClassifyPgError("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		var version int64
		scanErr := r.db.QueryRow(ctx, `SELECT version FROM reservations WHERE id = $1`, res.ID()).Scan(&version)
		if scanErr != nil {
			if errors.Is(scanErr, pgx.ErrNoRows) {
				return infra.WrapRepoErr(infra.KindNotFound, "reservation not found", scanErr)
			}
			return infra.ClassifyPgError("failed to diagnose status update", scanErr)
		}
		return infra.NewRepoErr(infra.KindVersionConflict, "reservation version conflict")
	}
	return nil
}

func (r *ReservationRepository) CountActiveByClient(ctx context.Context, clientID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM reservations
		WHERE client_id = $1 AND status IN ('scheduled', 'entered')`, clientID).Scan(&count)
	if err != nil {
		return 0, infra.ClassifyPgError("failed to count active reservations", err)
	}
	return count, nil
}

func (r *ReservationRepository) ListOpenWindows(ctx context.Context, clientID, sectorID uuid.UUID) ([]reservation.TimeWindow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT begin_time, end_time FROM reservations
		WHERE client_id = $1 AND sector_id = $2
		  AND status IN ('scheduled', 'entered')
		ORDER BY begin_time`,
		clientID, sectorID)
	if err != nil {
		return nil, infra.ClassifyPgError("failed to list open reservation windows", err)
	}
	defer rows.Close()

	var windows []reservation.TimeWindow
	for rows.Next() {
		var beginTime, endTime time.Time
		if scanErr := rows.Scan(&beginTime, &endTime); scanErr != nil {
			return nil, infra.ClassifyPgError("failed to scan reservation window", scanErr)
		}
		window, windowErr := reservation.NewTimeWindow(beginTime, endTime)
		if windowErr != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored reservation window is invalid", windowErr)
		}
		windows = append(windows, window)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgError("failed to iterate reservation windows", err)
	}
	return windows, nil
}

func (r *ReservationRepository) CountOpenBySector(ctx context.Context, sectorID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM reservations
		WHERE sector_id = $1 AND status IN ('scheduled', 'entered')`, sectorID).Scan(&count)
	if err != nil {
		return 0, infra.ClassifyPgError("failed to count open reservations", err)
	}
	return count, nil
}

func (r *ReservationRepository) findEvents(ctx context.Context, reservationID uuid.UUID) ([]reservation.ParkingEvent, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, kind, occurred_at FROM parking_events
		WHERE reservation_id = $1 ORDER BY occurred_at`, reservationID)
	if err != nil {
		return nil, infra.ClassifyPgError("failed to list parking events", err)
	}
	defer rows.Close()

	var events []reservation.ParkingEvent
	for rows.Next() {
		var (
			id         uuid.UUID
			kind       string
			occurredAt time.Time
		)
		if scanErr := rows.Scan(&id, &kind, &occurredAt); scanErr != nil {
			return nil, infra.ClassifyPgError("failed to scan parking event", scanErr)
		}
		events = append(events, reservation.ReconstructParkingEvent(id, reservationID, reservation.EventKind(kind), occurredAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgError("failed to iterate parking events", err)
	}
	return events, nil
}
