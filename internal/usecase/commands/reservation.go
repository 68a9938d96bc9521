package commands

import (
	"context"
	"encoding/json"
	"time"

	"parkhub/internal/domain/client"
	"parkhub/internal/domain/reservation"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/clock"
	"parkhub/internal/pkg/config"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationParams struct {
	ParkingID  uuid.UUID
	SectorID   *uuid.UUID
	SectorType *string
	Begin      time.Time
	End        time.Time
}

type ReservationCommands interface {
	Create(ctx context.Context, clientID uuid.UUID, params CreateReservationParams) (uuid.UUID, error)
	Cancel(ctx context.Context, reservationID, actorID uuid.UUID, actorRole client.Role) error
	// Expire is the entry point for the external expiry sweep: one
	// reservation per call, each in its own atomic unit.
	Expire(ctx context.Context, reservationID uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	validator *reservation.Validator
	cfg       config.ReservationConfig
	clock     clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, cfg config.ReservationConfig, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		uow: uow,
		validator: reservation.NewValidator(reservation.Limits{
			MaxDuration:        cfg.MaxDuration,
			MaxActivePerClient: cfg.MaxActivePerClient,
		}),
		cfg:   cfg,
		clock: clk,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, clientID uuid.UUID, params CreateReservationParams) (uuid.UUID, error) {
	window, err := reservation.NewTimeWindow(params.Begin, params.End)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidTimeframe)
	}
	// Timeframe and duration are rejected before any sector is resolved, so
	// a malformed request never reports capacity exhaustion.
	if err := c.validator.ValidateWindow(window, c.clock.Now()); err != nil {
		return uuid.Nil, mapValidationErr(err)
	}

	var reservationID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		account, err := c.findAccount(ctx, tx, clientID)
		if err != nil {
			return err
		}

		// Selection uses the window's begin: the sector must be taking
		// entries when the reservation starts.
		sector, err := resolveSector(ctx, tx, params.ParkingID, params.SectorID, params.SectorType, window.Begin())
		if err != nil {
			return err
		}

		bookedWindows, err := tx.Reservations().ListOpenWindows(ctx, clientID, sector.ID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		activeCount, err := tx.Reservations().CountActiveByClient(ctx, clientID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := c.validator.Validate(account, sector, window, bookedWindows, activeCount, c.clock.Now()); err != nil {
			return mapValidationErr(err)
		}

		if err := reserveSectorPlace(ctx, tx, sector); err != nil {
			return err
		}

		res := reservation.NewScheduled(clientID, sector.ID(), window)
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		reservationID = res.ID()
		return publishReservationEvent(ctx, tx, "reservation_created", res)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return reservationID, nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, reservationID, actorID uuid.UUID, actorRole client.Role) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := c.findReservation(ctx, tx, reservationID)
		if err != nil {
			return err
		}

		if actorRole != client.RoleStaff && res.ClientID() != actorID {
			return ErrForbidden
		}

		if err := res.Cancel(c.clock.Now(), c.cfg.CancelCutoff); err != nil {
			return mapLifecycleErr(err)
		}

		if err := tx.Reservations().UpdateStatus(ctx, res, res.Version()); err != nil {
			return mapReservationWriteErr(err)
		}

		if err := releaseSectorPlace(ctx, tx, res.SectorID()); err != nil {
			return err
		}

		return publishReservationEvent(ctx, tx, "reservation_cancelled", res)
	})
}

func (c *reservationCommandsImpl) Expire(ctx context.Context, reservationID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := c.findReservation(ctx, tx, reservationID)
		if err != nil {
			return err
		}

		if err := res.Expire(c.clock.Now()); err != nil {
			return mapLifecycleErr(err)
		}

		if err := tx.Reservations().UpdateStatus(ctx, res, res.Version()); err != nil {
			return mapReservationWriteErr(err)
		}

		if err := releaseSectorPlace(ctx, tx, res.SectorID()); err != nil {
			return err
		}

		return publishReservationEvent(ctx, tx, "reservation_expired", res)
	})
}

func (c *reservationCommandsImpl) findAccount(ctx context.Context, tx shared.Tx, clientID uuid.UUID) (*client.Account, error) {
	account, err := tx.Accounts().FindByID(ctx, clientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrClientNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return account, nil
}

func (c *reservationCommandsImpl) findReservation(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := tx.Reservations().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return res, nil
}

func mapValidationErr(err error) error {
	switch err {
	case reservation.ErrInvalidTimeframe:
		return ErrInvalidTimeframe
	case reservation.ErrExceedsMaximumDuration:
		return ErrExceedsMaximumDuration
	case reservation.ErrOverlappingReservation:
		return ErrOverlappingReservation
	case reservation.ErrSectorNonActive:
		return ErrSectorNonActive
	case reservation.ErrClientLimitExceeded:
		return ErrClientLimitExceeded
	case reservation.ErrClientNotEnabled:
		return ErrClientNotEnabled
	default:
		return err
	}
}

func mapLifecycleErr(err error) error {
	switch err {
	case reservation.ErrNotStarted:
		return ErrReservationNotStarted
	case reservation.ErrReservationExpired:
		return ErrReservationExpired
	case reservation.ErrCancellationTooLate:
		return ErrCancellationTooLate
	case reservation.ErrReservationClosed:
		return ErrReservationClosed
	case reservation.ErrExpiryNotDue:
		return ErrExpiryNotDue
	case reservation.ErrAlreadyEntered:
		return ErrAlreadyEntered
	case reservation.ErrNotEntered:
		return ErrCannotExitParking
	default:
		return err
	}
}

func mapReservationWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrReservationNotFound)
	case infra.IsKind(err, infra.KindVersionConflict):
		return errs.Mark(err, ErrVersionConflict)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

func publishReservationEvent(ctx context.Context, tx shared.Tx, topic string, res *reservation.Reservation) error {
	payload, err := json.Marshal(map[string]any{
		"reservation_id": res.ID(),
		"client_id":      res.ClientID(),
		"sector_id":      res.SectorID(),
		"status":         res.Status().String(),
	})
	if err != nil {
		return err
	}
	if err := tx.Outbox().CreateJob(ctx, "email", topic, payload); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
