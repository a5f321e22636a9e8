package domain

import "time"

// IsOpenDay reports whether the shop works on the given date.
func IsOpenDay(date time.Time) bool {
	return date.Weekday() != ClosedWeekday
}

// DayStart truncates t to midnight in its location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// BusinessWindow returns [opening, closing) on the given date.
func BusinessWindow(date time.Time) Interval {
	return Interval{
		Start: OpeningTime.On(date),
		End:   ClosingTime.On(date),
	}
}
