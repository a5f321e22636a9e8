package domain

import (
	"errors"
	"fmt"
)

// Booking rejections. These are expected outcomes, not failures.
var (
	ErrClosedDay            = errors.New("shop is closed on this day")
	ErrOutsideBusinessHours = errors.New("start time is outside business hours")
	ErrExceedsClosingTime   = errors.New("appointment would end after closing time")
	ErrStaffConflict        = errors.New("barber already has an appointment at this time")
	ErrDailyLimitExceeded   = errors.New("customer already has an appointment on this day")
	ErrPastTime             = errors.New("start time is in the past")
	ErrBarberUnavailable    = errors.New("barber is not accepting appointments")
)

// Cancellation and lookup outcomes.
var (
	ErrPastAppointment = errors.New("appointment has already started")
	ErrNotFound        = errors.New("not found")
	ErrNotOwner        = errors.New("appointment belongs to another customer")
)

// ErrConstraintViolation is returned by storage when a concurrent writer
// committed an overlapping appointment first.
var ErrConstraintViolation = errors.New("storage constraint violation")

// StaffConflictError carries the span of the appointment that blocks the
// requested one. It matches ErrStaffConflict with errors.Is.
type StaffConflictError struct {
	Span Interval
}

func (e *StaffConflictError) Error() string {
	return fmt.Sprintf("%s: %s-%s", ErrStaffConflict,
		e.Span.Start.Format(TimeFormat), e.Span.End.Format(TimeFormat))
}

func (e *StaffConflictError) Unwrap() error {
	return ErrStaffConflict
}

// RejectionCode returns a stable machine-readable code for a booking
// rejection, or "" when err is not one.
func RejectionCode(err error) string {
	switch {
	case errors.Is(err, ErrClosedDay):
		return "closed_day"
	case errors.Is(err, ErrOutsideBusinessHours):
		return "outside_business_hours"
	case errors.Is(err, ErrExceedsClosingTime):
		return "exceeds_closing_time"
	case errors.Is(err, ErrStaffConflict):
		return "staff_conflict"
	case errors.Is(err, ErrDailyLimitExceeded):
		return "daily_limit_exceeded"
	case errors.Is(err, ErrPastTime):
		return "past_time"
	case errors.Is(err, ErrBarberUnavailable):
		return "barber_unavailable"
	default:
		return ""
	}
}
