package clock

import "time"

// Clock allows injecting time into use cases and services.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now.
//
// The service works in a single implicit local zone and stores wall-clock
// timestamps without a zone, so the local wall time is re-expressed as a
// UTC-located value. Dates built with time.Date(..., time.UTC) compare
// correctly against it.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return Wall(time.Now())
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock that always returns the same instant (useful for tests).
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t}
}

func (f fixedClock) Now() time.Time {
	return f.now
}

// Wall drops the zone of t keeping its wall-clock reading.
func Wall(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
