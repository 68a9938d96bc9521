package repository

import (
	"context"
	"errors"
	"time"

	"parkhub/internal/infra"
	"parkhub/internal/infra/db"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type EntryCodeRepository struct {
	db db.DBTX
}

func NewEntryCodeRepository(dbtx db.DBTX) *EntryCodeRepository {
	return &EntryCodeRepository{db: dbtx}
}

// Create inserts the single live code for a reservation. The primary key on
// reservation_id enforces at most one live code; a duplicate insert means an
// entry was already recorded.
func (r *EntryCodeRepository) Create(ctx context.Context, code shared.EntryCodeRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO entry_codes (reservation_id, code_hash, issued_at)
		VALUES ($1, $2, $3)`,
		code.ReservationID, code.CodeHash, code.IssuedAt)
	if err != nil {
		return infra.ClassifyPgError("failed to create entry code", err)
	}
	return nil
}

func (r *EntryCodeRepository) FindByReservation(ctx context.Context, reservationID uuid.UUID) (*shared.EntryCodeRecord, error) {
	var (
		codeHash string
		issuedAt time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT code_hash, issued_at FROM entry_codes WHERE reservation_id = $1`,
		reservationID).Scan(&codeHash, &issuedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "entry code not found", err)
		}
		return nil, infra.ClassifyPgError("failed to find entry code", err)
	}
	return &shared.EntryCodeRecord{
		ReservationID: reservationID,
		CodeHash:      codeHash,
		IssuedAt:      issuedAt,
	}, nil
}

// Delete redeems the code. Returns false when no live code exists, which is
// how a second redeem attempt is detected.
func (r *EntryCodeRepository) Delete(ctx context.Context, reservationID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM entry_codes WHERE reservation_id = $1`, reservationID)
	if err != nil {
		return false, infra.ClassifyPgError("failed to delete entry code", err)
	}
	return tag.RowsAffected() > 0, nil
}
