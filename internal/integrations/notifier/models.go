package notifier

import (
	"time"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
)

// Event сообщение о записи, публикуемое в топик
type Event struct {
	Type          domain.AppointmentEventType `json:"type"`
	OccurredAt    time.Time                   `json:"occurredAt"`
	AppointmentID int64                       `json:"appointmentId"`
	BarberID      int64                       `json:"barberId"`
	ServiceID     int64                       `json:"serviceId"`
	CustomerID    *int64                      `json:"customerId,omitempty"`
	CustomerName  string                      `json:"customerName"`
	CustomerPhone string                      `json:"customerPhone"`
	StartTime     string                      `json:"startTime"` // "2026-01-20T10:00"
	EndTime       string                      `json:"endTime"`
	ServiceName   string                      `json:"serviceName"`
}

func newEvent(eventType domain.AppointmentEventType, a *domain.Appointment, now time.Time) Event {
	return Event{
		Type:          eventType,
		OccurredAt:    now,
		AppointmentID: a.ID,
		BarberID:      a.BarberID,
		ServiceID:     a.ServiceID,
		CustomerID:    a.CustomerID,
		CustomerName:  a.CustomerName,
		CustomerPhone: a.CustomerPhone,
		StartTime:     a.StartTime.Format(domain.DateTimeFormat),
		EndTime:       a.End().Format(domain.DateTimeFormat),
		ServiceName:   a.ServiceName,
	}
}
