package catalog

import (
	"context"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
)

// BarberRepository интерфейс репозитория мастеров
type BarberRepository interface {
	List(ctx context.Context, onlyAvailable bool) ([]*domain.Barber, error)
	SetAvailability(ctx context.Context, id int64, isAvailable bool) error
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	List(ctx context.Context) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
