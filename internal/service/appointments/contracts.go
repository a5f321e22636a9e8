package appointments

import (
	"context"
	"time"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByCustomer(ctx context.Context, customerID int64, from *time.Time) ([]*domain.Appointment, error)
	ListByDate(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// CustomerRepository интерфейс репозитория клиентов (для проверки прав администратора)
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier публикует события о записях
type Notifier interface {
	Publish(ctx context.Context, event domain.AppointmentEventType, appointment *domain.Appointment) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
