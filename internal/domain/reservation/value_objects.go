package reservation

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeWindow = errors.New("begin time must be before end time")

// TimeWindow is the half-open interval [begin, end) a reservation claims.
type TimeWindow struct {
	begin time.Time
	end   time.Time
}

func NewTimeWindow(begin, end time.Time) (TimeWindow, error) {
	if !begin.Before(end) {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	return TimeWindow{begin: begin, end: end}, nil
}

func (w TimeWindow) Begin() time.Time {
	return w.begin
}

func (w TimeWindow) End() time.Time {
	return w.end
}

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.begin)
}

func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.begin) && t.Before(w.end)
}

func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.begin.Before(other.end) && other.begin.Before(w.end)
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s,%s)", w.begin.Format(time.RFC3339), w.end.Format(time.RFC3339))
}
