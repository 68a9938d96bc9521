package request

import (
	"time"
)

type DeactivateSectorRequest struct {
	// When is the scheduled deactivation instant. Omitted means close the
	// sector immediately, which requires it to be empty.
	When *time.Time `json:"when,omitempty"`
}
