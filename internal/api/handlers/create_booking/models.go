package create_booking

import (
	"time"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	createBooking "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/usecase/create_booking"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	BarberID      int64  `json:"barberId"`
	ServiceID     int64  `json:"serviceId"`
	StartTime     string `json:"startTime"` // "2026-01-20T10:00"
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	CustomerID      *int64  `json:"customerId,omitempty"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	BarberID        int64   `json:"barberId"`
	BarberName      string  `json:"barberName"`
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(customerID *int64) (*createBooking.Request, error) {
	startTime, err := time.Parse(domain.DateTimeFormat, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:    customerID,
		BarberID:      r.BarberID,
		ServiceID:     r.ServiceID,
		StartTime:     startTime,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		BarberID:        resp.BarberID,
		BarberName:      resp.BarberName,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		StartTime:       resp.StartTime.Format(domain.DateTimeFormat),
		EndTime:         resp.EndTime.Format(domain.DateTimeFormat),
		DurationMinutes: resp.DurationMinutes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
