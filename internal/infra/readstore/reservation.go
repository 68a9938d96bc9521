package readstore

import (
	"context"
	"errors"
	"time"

	"parkhub/internal/infra"
	"parkhub/internal/infra/db"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationViewQuery = `
	SELECT r.id, r.client_id, r.sector_id, s.name, s.type,
	       r.begin_time, r.end_time, r.status
	FROM reservations r
	JOIN sectors s ON s.id = r.sector_id`

func (r *ReservationReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, reservationViewQuery+` WHERE r.id = $1`, id)
	view, err := scanReservationView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(infra.WrapRepoErr(infra.KindNotFound, "reservation not found", err), queries.ErrNotFound)
		}
		return nil, infra.ClassifyPgError("failed to find reservation by ID", err)
	}

	events, err := r.findEvents(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Events = events

	return view, nil
}

func (r *ReservationReadStore) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, reservationViewQuery+` WHERE r.client_id = $1 ORDER BY r.begin_time DESC`, clientID)
	if err != nil {
		return nil, infra.ClassifyPgError("failed to list reservations by client", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		view, scanErr := scanReservationView(rows)
		if scanErr != nil {
			return nil, infra.ClassifyPgError("failed to scan reservation", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgError("failed to iterate reservations", err)
	}
	return views, nil
}

func (r *ReservationReadStore) findEvents(ctx context.Context, reservationID uuid.UUID) ([]queries.EventView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, kind, occurred_at FROM parking_events
		WHERE reservation_id = $1 ORDER BY occurred_at`, reservationID)
	if err != nil {
		return nil, infra.ClassifyPgError("failed to list parking events", err)
	}
	defer rows.Close()

	var events []queries.EventView
	for rows.Next() {
		var ev queries.EventView
		if scanErr := rows.Scan(&ev.ID, &ev.Kind, &ev.OccurredAt); scanErr != nil {
			return nil, infra.ClassifyPgError("failed to scan parking event", scanErr)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgError("failed to iterate parking events", err)
	}
	return events, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		view       queries.ReservationView
		begin, end time.Time
	)
	if err := row.Scan(&view.ID, &view.ClientID, &view.SectorID, &view.SectorName, &view.SectorType,
		&begin, &end, &view.Status); err != nil {
		return nil, err
	}
	view.BeginTime = begin
	view.EndTime = end
	return &view, nil
}
