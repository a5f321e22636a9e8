package create_booking

import (
	"context"
	"time"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	ListByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.Appointment, error)
	CountByCustomerAndDate(ctx context.Context, customerID int64, date time.Time) (int, error)
}

// BarberRepository интерфейс репозитория мастеров
type BarberRepository interface {
	// GetByID внутри транзакции блокирует строку мастера
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier публикует события о записях после фиксации транзакции
type Notifier interface {
	Publish(ctx context.Context, event domain.AppointmentEventType, appointment *domain.Appointment) error
}

// Metrics счетчик исходов бронирования
type Metrics interface {
	IncBookingOutcome(outcome string)
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
