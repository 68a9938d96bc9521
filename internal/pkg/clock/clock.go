package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FakeClock is a settable clock for tests. Not safe for concurrent use.
type FakeClock struct {
	current time.Time
}

func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

func (c *FakeClock) Now() time.Time {
	return c.current
}

func (c *FakeClock) Set(t time.Time) {
	c.current = t
}

func (c *FakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
