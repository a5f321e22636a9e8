package domain

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds [start, start+duration).
func NewInterval(start time.Time, durationMinutes int) Interval {
	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

// Overlaps is the only collision predicate in the system. Intervals that
// merely touch (one ends exactly where the other starts) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// WithinWindow reports whether i lies entirely inside window.
func (i Interval) WithinWindow(window Interval) bool {
	return !i.Start.Before(window.Start) && !i.End.After(window.End)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}
