package client

import (
	"time"

	"github.com/google/uuid"
)

// Account is the slice of a client account the reservation core cares about:
// identity plus eligibility. Credential management lives elsewhere.
type Account struct {
	id        uuid.UUID
	email     Email
	role      Role
	enabled   bool
	blockedAt *time.Time
	createdAt time.Time
}

func ReconstructAccount(id uuid.UUID, email Email, role Role, enabled bool, blockedAt *time.Time, createdAt time.Time) *Account {
	return &Account{
		id:        id,
		email:     email,
		role:      role,
		enabled:   enabled,
		blockedAt: blockedAt,
		createdAt: createdAt,
	}
}

// CanReserve reports whether the account may hold reservations.
func (a *Account) CanReserve() bool {
	return a.enabled && a.blockedAt == nil
}

func (a *Account) ID() uuid.UUID         { return a.id }
func (a *Account) Email() Email          { return a.email }
func (a *Account) Role() Role            { return a.role }
func (a *Account) Enabled() bool         { return a.enabled }
func (a *Account) BlockedAt() *time.Time { return a.blockedAt }
func (a *Account) CreatedAt() time.Time  { return a.createdAt }
