package models

import (
	"time"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
)

// Request модели

// GetCustomerAppointmentsRequest запрос на получение записей клиента
type GetCustomerAppointmentsRequest struct {
	CustomerID  int64 `json:"customerId"`
	IncludePast bool  `json:"includePast"`
}

// GetDayBoardRequest запрос администратора на записи за день
type GetDayBoardRequest struct {
	Date     *time.Time `json:"date,omitempty"`     // По умолчанию сегодня
	BarberID *int64     `json:"barberId,omitempty"` // Фильтр по мастеру (опционально)
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	CustomerID      *int64 `json:"customerId,omitempty"`
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	BarberID        int64  `json:"barberId"`
	BarberName      string `json:"barberName"`
	ServiceID       int64  `json:"serviceId"`
	Date            string `json:"date"`      // "2026-01-20"
	StartTime       string `json:"startTime"` // "2026-01-20T10:00"
	EndTime         string `json:"endTime"`   // "2026-01-20T10:30"
	DurationMinutes int    `json:"durationMinutes"`

	// Денормализованные данные
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`

	CreatedAt time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		CustomerID:      a.CustomerID,
		CustomerName:    a.CustomerName,
		CustomerPhone:   a.CustomerPhone,
		BarberID:        a.BarberID,
		BarberName:      a.BarberName,
		ServiceID:       a.ServiceID,
		Date:            a.StartTime.Format(domain.DateFormat),
		StartTime:       a.StartTime.Format(domain.DateTimeFormat),
		EndTime:         a.End().Format(domain.DateTimeFormat),
		DurationMinutes: a.DurationMinutes,
		ServiceName:     a.ServiceName,
		ServicePrice:    a.ServicePrice,
		CreatedAt:       a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		result.Appointments = append(result.Appointments, *FromDomainAppointment(a))
	}

	return result
}
