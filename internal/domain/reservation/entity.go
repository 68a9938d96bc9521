package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotStarted          = errors.New("reservation has not started yet")
	ErrReservationExpired  = errors.New("reservation has expired")
	ErrAlreadyEntered      = errors.New("reservation already has an entry recorded")
	ErrNotEntered          = errors.New("reservation has no entry recorded")
	ErrCancellationTooLate = errors.New("cancellation attempted past the cutoff")
	ErrExpiryNotDue        = errors.New("reservation end time has not passed")
	ErrReservationClosed   = errors.New("reservation already ended or cancelled")
)

// ParkingEvent is an immutable ENTRY or EXIT fact. Events are appended by
// the reservation and never mutated or deleted.
type ParkingEvent struct {
	id            uuid.UUID
	reservationID uuid.UUID
	kind          EventKind
	occurredAt    time.Time
}

func ReconstructParkingEvent(id, reservationID uuid.UUID, kind EventKind, occurredAt time.Time) ParkingEvent {
	return ParkingEvent{
		id:            id,
		reservationID: reservationID,
		kind:          kind,
		occurredAt:    occurredAt,
	}
}

func (e ParkingEvent) ID() uuid.UUID            { return e.id }
func (e ParkingEvent) ReservationID() uuid.UUID { return e.reservationID }
func (e ParkingEvent) Kind() EventKind          { return e.kind }
func (e ParkingEvent) OccurredAt() time.Time    { return e.occurredAt }

// Reservation is one client's claim on one place in one sector for a bounded
// window. State transitions happen only through the methods below; a
// terminal reservation rejects every further transition with
// ErrReservationClosed.
type Reservation struct {
	id       uuid.UUID
	clientID uuid.UUID
	sectorID uuid.UUID
	window   TimeWindow
	status   Status
	events   []ParkingEvent
	version  int64
}

// NewScheduled creates a reservation after validation passed and the sector
// place was reserved.
func NewScheduled(clientID, sectorID uuid.UUID, window TimeWindow) *Reservation {
	return &Reservation{
		id:       uuid.New(),
		clientID: clientID,
		sectorID: sectorID,
		window:   window,
		status:   StatusScheduled,
	}
}

// NewWalkIn creates an already-entered reservation for a vehicle at the gate
// with no prior booking. The window runs from now for the configured maximum
// duration; the ENTRY event is recorded immediately.
func NewWalkIn(clientID, sectorID uuid.UUID, now time.Time, maxDuration time.Duration) *Reservation {
	r := &Reservation{
		id:       uuid.New(),
		clientID: clientID,
		sectorID: sectorID,
		window:   TimeWindow{begin: now, end: now.Add(maxDuration)},
		status:   StatusEntered,
	}
	r.appendEvent(EventEntry, now)
	return r
}

func Reconstruct(
	id, clientID, sectorID uuid.UUID,
	window TimeWindow,
	status Status,
	events []ParkingEvent,
	version int64,
) *Reservation {
	return &Reservation{
		id:       id,
		clientID: clientID,
		sectorID: sectorID,
		window:   window,
		status:   status,
		events:   events,
		version:  version,
	}
}

// Enter records the physical arrival: scheduled -> entered. The caller mints
// the entry code in the same atomic unit.
func (r *Reservation) Enter(now time.Time) error {
	if r.status.IsTerminal() {
		return ErrReservationClosed
	}
	if r.status == StatusEntered {
		return ErrAlreadyEntered
	}
	if now.Before(r.window.begin) {
		return ErrNotStarted
	}
	if now.After(r.window.end) {
		return ErrReservationExpired
	}
	r.status = StatusEntered
	r.appendEvent(EventEntry, now)
	return nil
}

// Exit records the physical departure: entered -> exited. The caller redeems
// the entry code and releases the place in the same atomic unit.
func (r *Reservation) Exit(now time.Time) error {
	if r.status.IsTerminal() {
		return ErrReservationClosed
	}
	if r.status != StatusEntered {
		return ErrNotEntered
	}
	r.status = StatusExited
	r.appendEvent(EventExit, now)
	return nil
}

// Cancel closes a scheduled reservation before arrival. Allowed only up to
// cutoff before the begin time.
func (r *Reservation) Cancel(now time.Time, cutoff time.Duration) error {
	if r.status.IsTerminal() {
		return ErrReservationClosed
	}
	if r.status != StatusScheduled {
		return ErrAlreadyEntered
	}
	if now.After(r.window.begin.Add(-cutoff)) {
		return ErrCancellationTooLate
	}
	r.status = StatusCancelled
	return nil
}

// Expire closes a scheduled reservation whose window passed with no entry.
// Driven by an external sweep, one reservation per atomic unit.
func (r *Reservation) Expire(now time.Time) error {
	if r.status.IsTerminal() {
		return ErrReservationClosed
	}
	if r.status != StatusScheduled {
		return ErrAlreadyEntered
	}
	if !now.After(r.window.end) {
		return ErrExpiryNotDue
	}
	r.status = StatusExpired
	return nil
}

func (r *Reservation) appendEvent(kind EventKind, at time.Time) {
	r.events = append(r.events, ParkingEvent{
		id:            uuid.New(),
		reservationID: r.id,
		kind:          kind,
		occurredAt:    at,
	})
}

// EntryTime returns the timestamp of the first ENTRY event, if any.
func (r *Reservation) EntryTime() *time.Time {
	for _, e := range r.events {
		if e.kind == EventEntry {
			t := e.occurredAt
			return &t
		}
	}
	return nil
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) ClientID() uuid.UUID   { return r.clientID }
func (r *Reservation) SectorID() uuid.UUID   { return r.sectorID }
func (r *Reservation) Window() TimeWindow    { return r.window }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) Events() []ParkingEvent { return r.events }
func (r *Reservation) Version() int64        { return r.version }
