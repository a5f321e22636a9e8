package domain

import "time"

// Appointment is a committed booking of a barber.
type Appointment struct {
	ID              int64
	CustomerName    string
	CustomerPhone   string
	BarberID        int64
	ServiceID       int64
	CustomerID      *int64 // nil for guest bookings
	StartTime       time.Time
	DurationMinutes int

	// Denormalized service data for history
	ServiceName  string
	ServicePrice float64
	BarberName   string

	CreatedAt time.Time
}

// Span returns the occupied interval [StartTime, StartTime+Duration).
func (a *Appointment) Span() Interval {
	return NewInterval(a.StartTime, a.DurationMinutes)
}

// End returns the moment the appointment ends.
func (a *Appointment) End() time.Time {
	return a.Span().End
}

// IsOwnedBy reports whether the appointment belongs to the customer.
func (a *Appointment) IsOwnedBy(customerID int64) bool {
	return a.CustomerID != nil && *a.CustomerID == customerID
}

// IsUpcoming reports whether the appointment starts strictly after now.
func (a *Appointment) IsUpcoming(now time.Time) bool {
	return a.StartTime.After(now)
}

// AppointmentEventType type of a published appointment event
type AppointmentEventType string

const (
	EventAppointmentBooked    AppointmentEventType = "appointment.booked"
	EventAppointmentCancelled AppointmentEventType = "appointment.cancelled"
)

// AppointmentsFilter filter for admin listings
type AppointmentsFilter struct {
	Date     time.Time
	BarberID *int64
}
