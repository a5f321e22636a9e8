package scheduling

import (
	"time"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
)

// Proposal is a booking request reduced to what the rules need.
type Proposal struct {
	Start           time.Time
	DurationMinutes int
	CustomerID      *int64
}

// Span returns the interval the proposal would occupy.
func (p Proposal) Span() domain.Interval {
	return domain.NewInterval(p.Start, p.DurationMinutes)
}

// CheckBooking decides whether a proposal may be committed against the
// barber's appointments for that day and the customer's count for that date.
// The first failing rule wins:
//  1. closed day
//  2. start outside [opening, closing)
//  3. end after closing
//  4. overlap with an existing appointment (*domain.StaffConflictError)
//  5. daily limit, only for an attached customer
func CheckBooking(p Proposal, existing []domain.Interval, customerDailyCount int) error {
	if !domain.IsOpenDay(p.Start) {
		return domain.ErrClosedDay
	}

	window := domain.BusinessWindow(p.Start)
	if p.Start.Before(window.Start) || !p.Start.Before(window.End) {
		return domain.ErrOutsideBusinessHours
	}

	span := p.Span()
	if !span.WithinWindow(window) {
		return domain.ErrExceedsClosingTime
	}

	if conflict, ok := firstConflict(span, existing); ok {
		return &domain.StaffConflictError{Span: conflict}
	}

	if p.CustomerID != nil && customerDailyCount >= domain.DailyLimitPerCustomer {
		return domain.ErrDailyLimitExceeded
	}

	return nil
}
