package reservation

import (
	"errors"
	"time"

	"parkhub/internal/domain/client"
	"parkhub/internal/domain/parking"
)

var (
	ErrInvalidTimeframe       = errors.New("invalid reservation timeframe")
	ErrExceedsMaximumDuration = errors.New("reservation exceeds maximum duration")
	ErrOverlappingReservation = errors.New("window overlaps an existing reservation")
	ErrSectorNonActive        = errors.New("sector is not active for the requested window")
	ErrClientLimitExceeded    = errors.New("client reservation limit exceeded")
	ErrClientNotEnabled       = errors.New("client account does not permit reservations")
)

// Limits are the tunable business rules the validator enforces. Values come
// from configuration, not from the entities themselves.
type Limits struct {
	MaxDuration        time.Duration
	MaxActivePerClient int
}

// Validator checks a reservation request before any state is touched. Rules
// run in a fixed order so error precedence is deterministic: timeframe,
// duration, window overlap, sector availability, client limit, client
// eligibility.
type Validator struct {
	limits Limits
}

func NewValidator(limits Limits) *Validator {
	return &Validator{limits: limits}
}

// ValidateWindow runs the rules that depend only on the requested window.
// These fail before any sector is looked at, so a request with a bad
// timeframe is never answered with a capacity error.
func (v *Validator) ValidateWindow(window TimeWindow, now time.Time) error {
	if window.Begin().Before(now) {
		return ErrInvalidTimeframe
	}
	if window.Duration() > v.limits.MaxDuration {
		return ErrExceedsMaximumDuration
	}
	return nil
}

// Validate admits or rejects a reservation of the given window on the given
// sector. bookedWindows are the client's open reservation windows on the
// sector and activeCount is the client's total number of place-holding
// reservations; both are read inside the same transaction as the eventual
// insert.
func (v *Validator) Validate(
	account *client.Account,
	sector *parking.Sector,
	window TimeWindow,
	bookedWindows []TimeWindow,
	activeCount int,
	now time.Time,
) error {
	if err := v.ValidateWindow(window, now); err != nil {
		return err
	}
	for _, booked := range bookedWindows {
		if window.Overlaps(booked) {
			return ErrOverlappingReservation
		}
	}
	if !sector.AcceptsWindow(window.Begin(), window.End()) {
		return ErrSectorNonActive
	}
	if activeCount >= v.limits.MaxActivePerClient {
		return ErrClientLimitExceeded
	}
	if !account.CanReserve() {
		return ErrClientNotEnabled
	}
	return nil
}
