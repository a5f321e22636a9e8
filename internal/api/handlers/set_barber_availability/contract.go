package set_barber_availability

import (
	"context"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/service/catalog/models"
)

type CatalogService interface {
	SetBarberAvailability(ctx context.Context, barberID int64, req *models.SetAvailabilityRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
