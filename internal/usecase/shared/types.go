package shared

import (
	"time"

	"github.com/google/uuid"
)

// EntryCodeRecord is the persisted form of a live entry code. Only the
// bcrypt hash is stored; the plaintext exists once, in the entry response.
type EntryCodeRecord struct {
	ReservationID uuid.UUID
	CodeHash      string
	IssuedAt      time.Time
}
