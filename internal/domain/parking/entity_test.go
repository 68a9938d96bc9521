//go:build unit

package parking_test

import (
	"testing"
	"time"

	"parkhub/internal/domain/parking"
	"parkhub/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectorCapacity(t *testing.T) {
	t.Run("reserve and release keep the counter in bounds", func(t *testing.T) {
		sector := builder.NewSectorBuilder().With(func(b *builder.SectorBuilder) {
			b.MaxPlaces = 2
		}).BuildDomain()

		require.NoError(t, sector.ReservePlace())
		require.NoError(t, sector.ReservePlace())
		assert.Equal(t, 2, sector.OccupiedPlaces())
		assert.False(t, sector.HasCapacity())

		assert.ErrorIs(t, sector.ReservePlace(), parking.ErrNoAvailablePlace)
		assert.Equal(t, 2, sector.OccupiedPlaces())

		require.NoError(t, sector.ReleasePlace())
		assert.Equal(t, 1, sector.OccupiedPlaces())
		assert.True(t, sector.HasCapacity())
	})

	t.Run("release below zero is an invariant violation", func(t *testing.T) {
		sector := builder.NewSectorBuilder().BuildDomain()

		assert.ErrorIs(t, sector.ReleasePlace(), parking.ErrNegativeOccupancy)
		assert.Equal(t, 0, sector.OccupiedPlaces())
	})

	t.Run("inactive sector rejects reservations", func(t *testing.T) {
		sector := builder.NewSectorBuilder().With(func(b *builder.SectorBuilder) {
			b.Active = false
		}).BuildDomain()

		assert.ErrorIs(t, sector.ReservePlace(), parking.ErrSectorNotActive)
	})

	t.Run("occupancy ratio and free places", func(t *testing.T) {
		sector := builder.NewSectorBuilder().With(func(b *builder.SectorBuilder) {
			b.MaxPlaces = 4
			b.Occupied = 3
		}).BuildDomain()

		assert.InDelta(t, 0.75, sector.OccupancyRatio(), 1e-9)
		assert.Equal(t, 1, sector.FreePlaces())
	})
}

func TestSectorOperationalWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	closing := now.Add(6 * time.Hour)

	t.Run("scheduled deactivation not yet effective", func(t *testing.T) {
		sector := builder.NewSectorBuilder().With(func(b *builder.SectorBuilder) {
			b.DeactivateAt = &closing
		}).BuildDomain()

		assert.True(t, sector.IsOperationalAt(now))
		assert.False(t, sector.IsOperationalAt(closing))
		assert.False(t, sector.IsOperationalAt(closing.Add(time.Hour)))
	})

	t.Run("window must end before the scheduled closure", func(t *testing.T) {
		sector := builder.NewSectorBuilder().With(func(b *builder.SectorBuilder) {
			b.DeactivateAt = &closing
		}).BuildDomain()

		assert.True(t, sector.AcceptsWindow(now, closing))
		assert.False(t, sector.AcceptsWindow(now, closing.Add(time.Minute)))
		assert.False(t, sector.AcceptsWindow(closing, closing.Add(time.Hour)))
	})

	t.Run("inactive sector accepts no window", func(t *testing.T) {
		sector := builder.NewSectorBuilder().With(func(b *builder.SectorBuilder) {
			b.Active = false
		}).BuildDomain()

		assert.False(t, sector.AcceptsWindow(now, now.Add(time.Hour)))
	})
}

func TestSectorDeactivation(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("immediate deactivation of an empty sector", func(t *testing.T) {
		sector := builder.NewSectorBuilder().BuildDomain()

		require.NoError(t, sector.Deactivate(now, nil))
		assert.False(t, sector.Active())
		assert.Nil(t, sector.DeactivateAt())
	})

	t.Run("immediate deactivation rejected while occupied", func(t *testing.T) {
		sector := builder.NewSectorBuilder().With(func(b *builder.SectorBuilder) {
			b.Occupied = 1
		}).BuildDomain()

		assert.ErrorIs(t, sector.Deactivate(now, nil), parking.ErrSectorStillOccupied)
		assert.True(t, sector.Active())
	})

	t.Run("occupied sector can schedule a future closure", func(t *testing.T) {
		sector := builder.NewSectorBuilder().With(func(b *builder.SectorBuilder) {
			b.Occupied = 3
		}).BuildDomain()
		when := now.Add(24 * time.Hour)

		require.NoError(t, sector.Deactivate(now, &when))
		assert.True(t, sector.Active())
		require.NotNil(t, sector.DeactivateAt())
		assert.Equal(t, when, *sector.DeactivateAt())
	})

	t.Run("scheduled closure must be strictly future", func(t *testing.T) {
		sector := builder.NewSectorBuilder().BuildDomain()

		assert.ErrorIs(t, sector.Deactivate(now, &now), parking.ErrDeactivationNotFuture)
		past := now.Add(-time.Hour)
		assert.ErrorIs(t, sector.Deactivate(now, &past), parking.ErrDeactivationNotFuture)
	})

	t.Run("already inactive", func(t *testing.T) {
		sector := builder.NewSectorBuilder().With(func(b *builder.SectorBuilder) {
			b.Active = false
		}).BuildDomain()

		assert.ErrorIs(t, sector.Deactivate(now, nil), parking.ErrSectorAlreadyInactive)
	})
}

func TestSectorActivation(t *testing.T) {
	t.Run("reactivation clears a scheduled closure", func(t *testing.T) {
		closing := time.Now().Add(time.Hour)
		sector := builder.NewSectorBuilder().With(func(b *builder.SectorBuilder) {
			b.DeactivateAt = &closing
		}).BuildDomain()

		require.NoError(t, sector.Activate())
		assert.True(t, sector.Active())
		assert.Nil(t, sector.DeactivateAt())
	})

	t.Run("activating an inactive sector", func(t *testing.T) {
		sector := builder.NewSectorBuilder().With(func(b *builder.SectorBuilder) {
			b.Active = false
		}).BuildDomain()

		require.NoError(t, sector.Activate())
		assert.True(t, sector.Active())
	})

	t.Run("already active with no scheduled closure", func(t *testing.T) {
		sector := builder.NewSectorBuilder().BuildDomain()

		assert.ErrorIs(t, sector.Activate(), parking.ErrSectorAlreadyActive)
	})
}

func TestNewSector(t *testing.T) {
	parkingEntity, err := parking.NewParking("12 Harbor Road", parking.StrategyLeastOccupied)
	require.NoError(t, err)

	t.Run("valid sector", func(t *testing.T) {
		sector, err := parking.NewSector(parkingEntity.ID(), "B", parking.SectorUnderground, 40, 2)
		require.NoError(t, err)
		assert.True(t, sector.Active())
		assert.Equal(t, 0, sector.OccupiedPlaces())
		assert.Equal(t, 40, sector.MaxPlaces())
	})

	t.Run("invalid arguments", func(t *testing.T) {
		_, err := parking.NewSector(parkingEntity.ID(), "", parking.SectorCovered, 10, 0)
		assert.ErrorIs(t, err, parking.ErrInvalidSectorName)

		_, err = parking.NewSector(parkingEntity.ID(), "C", parking.SectorType("rooftop"), 10, 0)
		assert.ErrorIs(t, err, parking.ErrInvalidSectorType)

		_, err = parking.NewSector(parkingEntity.ID(), "C", parking.SectorCovered, 0, 0)
		assert.ErrorIs(t, err, parking.ErrInvalidMaxPlaces)
	})
}
