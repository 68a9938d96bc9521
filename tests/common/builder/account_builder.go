//go:build unit || e2e

package builder

import (
	"time"

	"parkhub/internal/domain/client"

	"github.com/google/uuid"
)

type AccountBuilder struct {
	ID        uuid.UUID
	Email     string
	Role      client.Role
	Enabled   bool
	BlockedAt *time.Time
	CreatedAt time.Time
}

func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		ID:        uuid.New(),
		Email:     "driver@example.com",
		Role:      client.RoleClient,
		Enabled:   true,
		CreatedAt: time.Now(),
	}
}

func (b *AccountBuilder) With(mutate func(*AccountBuilder)) *AccountBuilder {
	mutate(b)
	return b
}

func (b *AccountBuilder) BuildDomain() *client.Account {
	return client.ReconstructAccount(
		b.ID, client.ReconstructEmail(b.Email), b.Role,
		b.Enabled, b.BlockedAt, b.CreatedAt,
	)
}
