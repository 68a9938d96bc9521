package repository

import (
	"context"

	"parkhub/internal/infra"
	"parkhub/internal/infra/db"

	"github.com/google/uuid"
)

type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(dbtx db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: dbtx}
}

// CreateJob queues a domain event in the same transaction as the mutation
// that produced it. External subscribers (notification, audit) drain the
// outbox; their failures never affect the committed mutation.
func (r *OutboxRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO event_outbox (id, kind, topic, payload, status)
		VALUES ($1, $2, $3, $4, 'queued')`,
		uuid.New(), kind, topic, payload)
	if err != nil {
		return infra.ClassifyPgError("failed to create outbox job", err)
	}
	return nil
}
