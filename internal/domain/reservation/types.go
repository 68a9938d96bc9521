package reservation

// Status models the reservation lifecycle. Scheduled and entered hold one
// place of the owning sector; the three terminal states hold none.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusEntered   Status = "entered"
	StatusExited    Status = "exited"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusEntered, StatusExited, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusExited, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// OccupiesPlace reports whether a reservation in this status counts against
// sector capacity.
func (s Status) OccupiesPlace() bool {
	return s == StatusScheduled || s == StatusEntered
}

// EventKind tags a physical gate movement.
type EventKind string

const (
	EventEntry EventKind = "ENTRY"
	EventExit  EventKind = "EXIT"
)

func (k EventKind) String() string {
	return string(k)
}

func (k EventKind) IsValid() bool {
	return k == EventEntry || k == EventExit
}
