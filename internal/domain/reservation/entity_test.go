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

var (
	base  = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	begin = base.Add(2 * time.Hour)
	end   = base.Add(6 * time.Hour)
)

func scheduled() *reservation.Reservation {
	return builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.Begin = begin
		b.End = end
	}).BuildDomain()
}

func withStatus(status reservation.Status) *reservation.Reservation {
	return builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.Begin = begin
		b.End = end
		b.Status = status
	}).BuildDomain()
}

func TestEnter(t *testing.T) {
	t.Run("inside the window", func(t *testing.T) {
		res := scheduled()
		now := begin.Add(time.Minute)

		require.NoError(t, res.Enter(now))
		assert.Equal(t, reservation.StatusEntered, res.Status())
		require.Len(t, res.Events(), 1)
		assert.Equal(t, reservation.EventEntry, res.Events()[0].Kind())
		assert.Equal(t, now, res.Events()[0].OccurredAt())
	})

	t.Run("before the window begins", func(t *testing.T) {
		res := scheduled()

		assert.ErrorIs(t, res.Enter(begin.Add(-time.Minute)), reservation.ErrNotStarted)
		assert.Equal(t, reservation.StatusScheduled, res.Status())
	})

	t.Run("after the window ended", func(t *testing.T) {
		res := scheduled()

		assert.ErrorIs(t, res.Enter(end.Add(time.Minute)), reservation.ErrReservationExpired)
	})

	t.Run("double entry", func(t *testing.T) {
		res := scheduled()
		require.NoError(t, res.Enter(begin))

		assert.ErrorIs(t, res.Enter(begin.Add(time.Minute)), reservation.ErrAlreadyEntered)
		assert.Len(t, res.Events(), 1)
	})

	t.Run("terminal states reject entry", func(t *testing.T) {
		for _, status := range []reservation.Status{
			reservation.StatusExited,
			reservation.StatusCancelled,
			reservation.StatusExpired,
		} {
			res := withStatus(status)
			assert.ErrorIs(t, res.Enter(begin), reservation.ErrReservationClosed, "status %s", status)
		}
	})
}

func TestExit(t *testing.T) {
	t.Run("entered reservation exits", func(t *testing.T) {
		res := scheduled()
		require.NoError(t, res.Enter(begin))
		exitAt := begin.Add(90 * time.Minute)

		require.NoError(t, res.Exit(exitAt))
		assert.Equal(t, reservation.StatusExited, res.Status())
		require.Len(t, res.Events(), 2)
		assert.Equal(t, reservation.EventExit, res.Events()[1].Kind())
	})

	t.Run("exit without entry", func(t *testing.T) {
		res := scheduled()

		assert.ErrorIs(t, res.Exit(begin), reservation.ErrNotEntered)
	})

	t.Run("double exit", func(t *testing.T) {
		res := scheduled()
		require.NoError(t, res.Enter(begin))
		require.NoError(t, res.Exit(begin.Add(time.Hour)))

		assert.ErrorIs(t, res.Exit(begin.Add(2*time.Hour)), reservation.ErrReservationClosed)
	})
}

func TestCancel(t *testing.T) {
	cutoff := time.Hour

	t.Run("before the cutoff", func(t *testing.T) {
		res := scheduled()

		require.NoError(t, res.Cancel(begin.Add(-2*time.Hour), cutoff))
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("exactly at the cutoff", func(t *testing.T) {
		res := scheduled()

		require.NoError(t, res.Cancel(begin.Add(-cutoff), cutoff))
	})

	t.Run("past the cutoff", func(t *testing.T) {
		res := scheduled()

		assert.ErrorIs(t, res.Cancel(begin.Add(-30*time.Minute), cutoff), reservation.ErrCancellationTooLate)
		assert.Equal(t, reservation.StatusScheduled, res.Status())
	})

	t.Run("after entry", func(t *testing.T) {
		res := scheduled()
		require.NoError(t, res.Enter(begin))

		assert.ErrorIs(t, res.Cancel(begin, cutoff), reservation.ErrAlreadyEntered)
	})

	t.Run("already cancelled", func(t *testing.T) {
		res := withStatus(reservation.StatusCancelled)

		assert.ErrorIs(t, res.Cancel(base, cutoff), reservation.ErrReservationClosed)
	})
}

func TestExpire(t *testing.T) {
	t.Run("after the window lapsed", func(t *testing.T) {
		res := scheduled()

		require.NoError(t, res.Expire(end.Add(time.Minute)))
		assert.Equal(t, reservation.StatusExpired, res.Status())
	})

	t.Run("window not lapsed yet", func(t *testing.T) {
		res := scheduled()

		assert.ErrorIs(t, res.Expire(end), reservation.ErrExpiryNotDue)
		assert.ErrorIs(t, res.Expire(begin), reservation.ErrExpiryNotDue)
	})

	t.Run("entered reservations never expire", func(t *testing.T) {
		res := scheduled()
		require.NoError(t, res.Enter(begin))

		assert.ErrorIs(t, res.Expire(end.Add(time.Hour)), reservation.ErrAlreadyEntered)
	})
}

func TestWalkIn(t *testing.T) {
	res := reservation.NewWalkIn(scheduled().ClientID(), scheduled().SectorID(), base, 24*time.Hour)

	assert.Equal(t, reservation.StatusEntered, res.Status())
	assert.Equal(t, base, res.Window().Begin())
	assert.Equal(t, base.Add(24*time.Hour), res.Window().End())
	require.Len(t, res.Events(), 1)
	assert.Equal(t, reservation.EventEntry, res.Events()[0].Kind())

	entry := res.EntryTime()
	require.NotNil(t, entry)
	assert.Equal(t, base, *entry)
}

func TestTimeWindow(t *testing.T) {
	t.Run("begin must precede end", func(t *testing.T) {
		_, err := reservation.NewTimeWindow(begin, begin)
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeWindow)

		_, err = reservation.NewTimeWindow(end, begin)
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeWindow)
	})

	t.Run("half-open containment", func(t *testing.T) {
		window, err := reservation.NewTimeWindow(begin, end)
		require.NoError(t, err)

		assert.True(t, window.Contains(begin))
		assert.True(t, window.Contains(end.Add(-time.Nanosecond)))
		assert.False(t, window.Contains(end))
		assert.False(t, window.Contains(begin.Add(-time.Nanosecond)))
	})

	t.Run("overlap", func(t *testing.T) {
		w1, err := reservation.NewTimeWindow(begin, end)
		require.NoError(t, err)
		w2, err := reservation.NewTimeWindow(end, end.Add(time.Hour))
		require.NoError(t, err)

		assert.False(t, w1.Overlaps(w2))

		w3, err := reservation.NewTimeWindow(begin.Add(time.Hour), end.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, w1.Overlaps(w3))
	})
}
