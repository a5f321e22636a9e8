package models

import "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"

// SetAvailabilityRequest запрос на включение/выключение приема записей
type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable"`
}

// BarberResponse ответ с данными мастера
type BarberResponse struct {
	ID          int64   `json:"id"`
	FullName    string  `json:"fullName"`
	IsAvailable bool    `json:"isAvailable"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// BarberListResponse ответ со списком мастеров
type BarberListResponse struct {
	Barbers []BarberResponse `json:"barbers"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Description     *string `json:"description,omitempty"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainBarbers конвертирует список мастеров в DTO
func FromDomainBarbers(barbers []*domain.Barber) *BarberListResponse {
	result := &BarberListResponse{Barbers: make([]BarberResponse, 0, len(barbers))}
	for _, b := range barbers {
		result.Barbers = append(result.Barbers, BarberResponse{
			ID:          b.ID,
			FullName:    b.FullName,
			IsAvailable: b.IsAvailable,
			ImageURL:    b.ImageURL,
		})
	}
	return result
}

// FromDomainServices конвертирует список услуг в DTO
func FromDomainServices(services []*domain.Service) *ServiceListResponse {
	result := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		result.Services = append(result.Services, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
			Description:     s.Description,
		})
	}
	return result
}
