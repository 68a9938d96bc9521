package repository

import (
	"context"
	"errors"
	"time"

	"parkhub/internal/domain/client"
	"parkhub/internal/infra"
	"parkhub/internal/infra/db"
	"parkhub/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type AccountRepository struct {
	db db.DBTX
}

func NewAccountRepository(dbtx db.DBTX) *AccountRepository {
	return &AccountRepository{db: dbtx}
}

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Account, error) {
	var (
		email     string
		role      string
		enabled   bool
		blockedAt pgtype.Timestamptz
		createdAt time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT email, role, enabled, blocked_at, created_at
		FROM clients WHERE id = $1`, id).
		Scan(&email, &role, &enabled, &blockedAt, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "client account not found", err)
		}
		return nil, infra.ClassifyPgError("failed to find client account", err)
	}
	return client.ReconstructAccount(
		id, client.ReconstructEmail(email), client.Role(role),
		enabled, ptr.TimeFromPgtype(blockedAt), createdAt,
	), nil
}
