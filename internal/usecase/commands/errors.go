package commands

import "parkhub/internal/pkg/errs"

// Stable outcome sentinels for the request layer. Capacity exhaustion and
// version conflict are deliberately distinct so callers can tell "try a
// different sector" apart from "retry the same operation"; they are the only
// two worth retrying.
var (
	ErrParkingNotFound     = errs.New("parking not found")
	ErrSectorNotFound      = errs.New("sector not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrClientNotFound      = errs.New("client not found")

	ErrInvalidTimeframe       = errs.New("invalid reservation timeframe")
	ErrExceedsMaximumDuration = errs.New("reservation exceeds maximum duration")
	ErrOverlappingReservation = errs.New("window overlaps an existing reservation")
	ErrSectorNonActive        = errs.New("sector not active for requested window")
	ErrClientLimitExceeded    = errs.New("client reservation limit exceeded")
	ErrClientNotEnabled       = errs.New("client account not enabled")

	ErrNoAvailablePlace  = errs.New("no available place in sector")
	ErrNoAvailableSector = errs.New("no available sector")
	ErrVersionConflict   = errs.New("concurrent modification detected")

	ErrReservationNotStarted = errs.New("reservation has not started")
	ErrAlreadyEntered        = errs.New("reservation already has an entry recorded")
	ErrReservationExpired    = errs.New("reservation has expired")
	ErrCannotExitParking     = errs.New("cannot exit parking")
	ErrCancellationTooLate   = errs.New("cancellation attempted past the cutoff")
	ErrReservationClosed     = errs.New("reservation already ended or cancelled")
	ErrExpiryNotDue          = errs.New("reservation is not due for expiry")

	ErrSectorAlreadyActive   = errs.New("sector is already active")
	ErrSectorAlreadyInactive = errs.New("sector is already inactive")
	ErrSectorStillOccupied   = errs.New("sector has open reservations or entries")
	ErrDeactivationNotFuture = errs.New("scheduled deactivation must be in the future")

	ErrForbidden = errs.New("actor may not perform this operation")

	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
