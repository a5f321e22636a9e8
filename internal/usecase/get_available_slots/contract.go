package get_available_slots

import (
	"context"
	"time"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListByBarberAndDate получает все записи мастера на конкретную дату
	ListByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.Appointment, error)
	CountByCustomerAndDate(ctx context.Context, customerID int64, date time.Time) (int, error)
}

// BarberRepository интерфейс репозитория мастеров
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
