package commands

import (
	"context"
	"time"

	"parkhub/internal/domain/reservation"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/clock"
	"parkhub/internal/pkg/config"
	"parkhub/internal/pkg/entrycode"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

// EnterParams describes a gate entry. With a ReservationID the entry redeems
// an existing booking; without one it is a walk-in and a sector is chosen
// automatically within ParkingID.
type EnterParams struct {
	ReservationID *uuid.UUID
	ParkingID     uuid.UUID
	SectorType    *string
}

// EntryTicket carries the one-time gate code. The plaintext code exists only
// in this response; the store keeps a hash.
type EntryTicket struct {
	ReservationID uuid.UUID
	SectorID      uuid.UUID
	Code          string
	EnteredAt     time.Time
}

type Receipt struct {
	ReservationID uuid.UUID
	SectorID      uuid.UUID
	EnteredAt     time.Time
	ExitedAt      time.Time
	Duration      time.Duration
}

type GateCommands interface {
	Enter(ctx context.Context, clientID uuid.UUID, params EnterParams) (*EntryTicket, error)
	Exit(ctx context.Context, reservationID uuid.UUID, code string) (*Receipt, error)
}

type gateCommandsImpl struct {
	uow   shared.UnitOfWork
	cfg   config.ReservationConfig
	clock clock.Clock
}

func NewGateCommands(uow shared.UnitOfWork, cfg config.ReservationConfig, clk clock.Clock) GateCommands {
	return &gateCommandsImpl{
		uow:   uow,
		cfg:   cfg,
		clock: clk,
	}
}

func (g *gateCommandsImpl) Enter(ctx context.Context, clientID uuid.UUID, params EnterParams) (*EntryTicket, error) {
	if params.ReservationID != nil {
		return g.enterWithReservation(ctx, clientID, *params.ReservationID)
	}
	return g.enterWalkIn(ctx, clientID, params)
}

func (g *gateCommandsImpl) enterWithReservation(ctx context.Context, clientID, reservationID uuid.UUID) (*EntryTicket, error) {
	var ticket *EntryTicket
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if res.ClientID() != clientID {
			return ErrForbidden
		}

		now := g.clock.Now()
		if err := res.Enter(now); err != nil {
			return mapLifecycleErr(err)
		}

		if err := tx.Reservations().UpdateStatus(ctx, res, res.Version()); err != nil {
			return mapReservationWriteErr(err)
		}
		if err := tx.Events().Append(ctx, res.Events()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		code, err := g.mintEntryCode(ctx, tx, res.ID(), now)
		if err != nil {
			return err
		}

		ticket = &EntryTicket{
			ReservationID: res.ID(),
			SectorID:      res.SectorID(),
			Code:          code,
			EnteredAt:     now,
		}
		return publishReservationEvent(ctx, tx, "reservation_entered", res)
	})
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

// enterWalkIn routes a vehicle with no booking: sector selection, place
// reservation and the implicit entered reservation commit as one unit, so
// two simultaneous walk-ins cannot share the last free place.
func (g *gateCommandsImpl) enterWalkIn(ctx context.Context, clientID uuid.UUID, params EnterParams) (*EntryTicket, error) {
	var ticket *EntryTicket
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		account, err := tx.Accounts().FindByID(ctx, clientID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrClientNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !account.CanReserve() {
			return ErrClientNotEnabled
		}

		now := g.clock.Now()
		sector, err := resolveSector(ctx, tx, params.ParkingID, nil, params.SectorType, now)
		if err != nil {
			return err
		}

		if err := reserveSectorPlace(ctx, tx, sector); err != nil {
			return err
		}

		res := reservation.NewWalkIn(clientID, sector.ID(), now, g.cfg.MaxDuration)
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Events().Append(ctx, res.Events()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		code, err := g.mintEntryCode(ctx, tx, res.ID(), now)
		if err != nil {
			return err
		}

		ticket = &EntryTicket{
			ReservationID: res.ID(),
			SectorID:      sector.ID(),
			Code:          code,
			EnteredAt:     now,
		}
		return publishReservationEvent(ctx, tx, "reservation_entered", res)
	})
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

func (g *gateCommandsImpl) Exit(ctx context.Context, reservationID uuid.UUID, code string) (*Receipt, error) {
	var receipt *Receipt
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		record, err := tx.EntryCodes().FindByReservation(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Already exited, or never entered.
				return errs.Mark(err, ErrCannotExitParking)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := entrycode.Verify(record.CodeHash, code); err != nil {
			return errs.Mark(err, ErrCannotExitParking)
		}

		res, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		now := g.clock.Now()
		if err := res.Exit(now); err != nil {
			return mapLifecycleErr(err)
		}

		if err := tx.Reservations().UpdateStatus(ctx, res, res.Version()); err != nil {
			return mapReservationWriteErr(err)
		}
		if err := tx.Events().Append(ctx, res.Events()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		deleted, err := tx.EntryCodes().Delete(ctx, reservationID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !deleted {
			return ErrCannotExitParking
		}

		if err := releaseSectorPlace(ctx, tx, res.SectorID()); err != nil {
			return err
		}

		enteredAt := now
		if t := res.EntryTime(); t != nil {
			enteredAt = *t
		}
		receipt = &Receipt{
			ReservationID: res.ID(),
			SectorID:      res.SectorID(),
			EnteredAt:     enteredAt,
			ExitedAt:      now,
			Duration:      now.Sub(enteredAt),
		}
		return publishReservationEvent(ctx, tx, "reservation_exited", res)
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func (g *gateCommandsImpl) mintEntryCode(ctx context.Context, tx shared.Tx, reservationID uuid.UUID, now time.Time) (string, error) {
	code, hash, err := entrycode.Generate()
	if err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	record := shared.EntryCodeRecord{
		ReservationID: reservationID,
		CodeHash:      hash,
		IssuedAt:      now,
	}
	if err := tx.EntryCodes().Create(ctx, record); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return "", errs.Mark(err, ErrAlreadyEntered)
		}
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return code, nil
}
