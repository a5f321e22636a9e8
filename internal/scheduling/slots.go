// Package scheduling holds the pure availability and booking rules. Nothing
// here touches storage or the clock: callers load the barber's day and pass
// the current moment in.
package scheduling

import (
	"time"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/types"
)

// ComputeSlots returns every grid candidate of the day in ascending order,
// each flagged available or not. A closed day yields an empty slice.
//
// A candidate is unavailable when, in this order of precedence:
//   - the day is today and the start is strictly before now (past_time)
//   - [start, start+duration) does not fit before closing (exceeds_closing_time)
//   - it overlaps one of existing (collision)
func ComputeSlots(durationMinutes int, day time.Time, existing []domain.Interval, now time.Time) []domain.Slot {
	if !domain.IsOpenDay(day) {
		return []domain.Slot{}
	}

	day = domain.DayStart(day)
	window := domain.BusinessWindow(day)
	isToday := domain.SameDay(day, now)

	slots := make([]domain.Slot, 0, gridSize())
	for start := window.Start; start.Before(window.End); start = start.Add(domain.SlotGranularityMinutes * time.Minute) {
		candidate := domain.NewInterval(start, durationMinutes)

		reason := domain.SlotReasonNone
		switch {
		case isToday && start.Before(now):
			reason = domain.SlotReasonPastTime
		case !candidate.WithinWindow(window):
			reason = domain.SlotReasonExceedsTime
		case collides(candidate, existing):
			reason = domain.SlotReasonCollision
		}

		slots = append(slots, domain.Slot{
			StartTime:   types.NewTimeString(start),
			IsAvailable: reason == domain.SlotReasonNone,
			Reason:      reason,
		})
	}

	return slots
}

// Spans extracts the occupied intervals of appointments.
func Spans(appointments []*domain.Appointment) []domain.Interval {
	spans := make([]domain.Interval, 0, len(appointments))
	for _, a := range appointments {
		spans = append(spans, a.Span())
	}
	return spans
}

func collides(candidate domain.Interval, existing []domain.Interval) bool {
	_, ok := firstConflict(candidate, existing)
	return ok
}

func firstConflict(candidate domain.Interval, existing []domain.Interval) (domain.Interval, bool) {
	for _, span := range existing {
		if candidate.Overlaps(span) {
			return span, true
		}
	}
	return domain.Interval{}, false
}

func gridSize() int {
	return (domain.ClosingTime.Minutes() - domain.OpeningTime.Minutes()) / domain.SlotGranularityMinutes
}
