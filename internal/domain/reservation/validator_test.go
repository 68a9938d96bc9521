//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"parkhub/internal/domain/reservation"
	"parkhub/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultLimits() reservation.Limits {
	return reservation.Limits{
		MaxDuration:        24 * time.Hour,
		MaxActivePerClient: 3,
	}
}

func TestValidate(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	validator := reservation.NewValidator(defaultLimits())

	window := func(begin, end time.Time) reservation.TimeWindow {
		w, err := reservation.NewTimeWindow(begin, end)
		require.NoError(t, err)
		return w
	}

	okAccount := builder.NewAccountBuilder().BuildDomain()
	okSector := builder.NewSectorBuilder().BuildDomain()
	okWindow := window(now.Add(time.Hour), now.Add(5*time.Hour))

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, validator.Validate(okAccount, okSector, okWindow, nil, 0, now))
	})

	t.Run("window starting now is accepted", func(t *testing.T) {
		assert.NoError(t, validator.Validate(okAccount, okSector, window(now, now.Add(time.Hour)), nil, 0, now))
	})

	t.Run("past begin time", func(t *testing.T) {
		w := window(now.Add(-time.Minute), now.Add(time.Hour))
		assert.ErrorIs(t, validator.Validate(okAccount, okSector, w, nil, 0, now), reservation.ErrInvalidTimeframe)
	})

	t.Run("duration above maximum", func(t *testing.T) {
		w := window(now.Add(time.Hour), now.Add(26*time.Hour))
		assert.ErrorIs(t, validator.Validate(okAccount, okSector, w, nil, 0, now), reservation.ErrExceedsMaximumDuration)
	})

	t.Run("duration exactly at maximum is accepted", func(t *testing.T) {
		w := window(now.Add(time.Hour), now.Add(25*time.Hour))
		assert.NoError(t, validator.Validate(okAccount, okSector, w, nil, 0, now))
	})

	t.Run("overlapping booking on the same sector", func(t *testing.T) {
		// An identical window already booked must be rejected even though
		// the client is still under the active-reservation limit.
		booked := []reservation.TimeWindow{okWindow}
		err := validator.Validate(okAccount, okSector, okWindow, booked, 1, now)
		assert.ErrorIs(t, err, reservation.ErrOverlappingReservation)

		// Partial intersection counts too.
		shifted := window(now.Add(4*time.Hour), now.Add(6*time.Hour))
		err = validator.Validate(okAccount, okSector, shifted, booked, 1, now)
		assert.ErrorIs(t, err, reservation.ErrOverlappingReservation)
	})

	t.Run("back-to-back windows do not overlap", func(t *testing.T) {
		booked := []reservation.TimeWindow{okWindow}
		next := window(okWindow.End(), okWindow.End().Add(2*time.Hour))
		assert.NoError(t, validator.Validate(okAccount, okSector, next, booked, 1, now))
	})

	t.Run("inactive sector", func(t *testing.T) {
		sector := builder.NewSectorBuilder().With(func(b *builder.SectorBuilder) {
			b.Active = false
		}).BuildDomain()
		assert.ErrorIs(t, validator.Validate(okAccount, sector, okWindow, nil, 0, now), reservation.ErrSectorNonActive)
	})

	t.Run("window overrunning a scheduled closure", func(t *testing.T) {
		closing := now.Add(3 * time.Hour)
		sector := builder.NewSectorBuilder().With(func(b *builder.SectorBuilder) {
			b.DeactivateAt = &closing
		}).BuildDomain()
		assert.ErrorIs(t, validator.Validate(okAccount, sector, okWindow, nil, 0, now), reservation.ErrSectorNonActive)
	})

	t.Run("active reservation limit", func(t *testing.T) {
		assert.NoError(t, validator.Validate(okAccount, okSector, okWindow, nil, 2, now))
		assert.ErrorIs(t, validator.Validate(okAccount, okSector, okWindow, nil, 3, now), reservation.ErrClientLimitExceeded)
	})

	t.Run("disabled account", func(t *testing.T) {
		account := builder.NewAccountBuilder().With(func(b *builder.AccountBuilder) {
			b.Enabled = false
		}).BuildDomain()
		assert.ErrorIs(t, validator.Validate(account, okSector, okWindow, nil, 0, now), reservation.ErrClientNotEnabled)
	})

	t.Run("blocked account", func(t *testing.T) {
		blockedAt := now.Add(-time.Hour)
		account := builder.NewAccountBuilder().With(func(b *builder.AccountBuilder) {
			b.BlockedAt = &blockedAt
		}).BuildDomain()
		assert.ErrorIs(t, validator.Validate(account, okSector, okWindow, nil, 0, now), reservation.ErrClientNotEnabled)
	})

	t.Run("rule precedence is fixed", func(t *testing.T) {
		// Everything wrong at once: timeframe wins.
		badWindow := window(now.Add(-time.Hour), now.Add(30*time.Hour))
		inactiveSector := builder.NewSectorBuilder().With(func(b *builder.SectorBuilder) {
			b.Active = false
		}).BuildDomain()
		blockedAt := now
		badAccount := builder.NewAccountBuilder().With(func(b *builder.AccountBuilder) {
			b.BlockedAt = &blockedAt
		}).BuildDomain()

		booked := []reservation.TimeWindow{okWindow}
		err := validator.Validate(badAccount, inactiveSector, badWindow, booked, 5, now)
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeframe)

		// Fix the timeframe: duration wins next.
		longWindow := window(now.Add(time.Hour), now.Add(30*time.Hour))
		err = validator.Validate(badAccount, inactiveSector, longWindow, booked, 5, now)
		assert.ErrorIs(t, err, reservation.ErrExceedsMaximumDuration)

		// Fix the duration: the window overlap wins next.
		err = validator.Validate(badAccount, inactiveSector, okWindow, booked, 5, now)
		assert.ErrorIs(t, err, reservation.ErrOverlappingReservation)

		// Clear the overlap: sector availability wins next.
		err = validator.Validate(badAccount, inactiveSector, okWindow, nil, 5, now)
		assert.ErrorIs(t, err, reservation.ErrSectorNonActive)

		// Fix the sector: client limit wins next.
		err = validator.Validate(badAccount, okSector, okWindow, nil, 5, now)
		assert.ErrorIs(t, err, reservation.ErrClientLimitExceeded)

		// Fix the count: eligibility is checked last.
		err = validator.Validate(badAccount, okSector, okWindow, nil, 0, now)
		assert.ErrorIs(t, err, reservation.ErrClientNotEnabled)
	})
}

func TestValidateWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	validator := reservation.NewValidator(defaultLimits())

	window := func(begin, end time.Time) reservation.TimeWindow {
		w, err := reservation.NewTimeWindow(begin, end)
		require.NoError(t, err)
		return w
	}

	t.Run("future window within limits", func(t *testing.T) {
		assert.NoError(t, validator.ValidateWindow(window(now.Add(time.Hour), now.Add(3*time.Hour)), now))
	})

	t.Run("past begin time", func(t *testing.T) {
		w := window(now.Add(-time.Minute), now.Add(time.Hour))
		assert.ErrorIs(t, validator.ValidateWindow(w, now), reservation.ErrInvalidTimeframe)
	})

	t.Run("duration above maximum", func(t *testing.T) {
		w := window(now.Add(time.Hour), now.Add(26*time.Hour))
		assert.ErrorIs(t, validator.ValidateWindow(w, now), reservation.ErrExceedsMaximumDuration)
	})
}
