package list_catalog

import (
	"context"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/service/catalog/models"
)

type CatalogService interface {
	ListBarbers(ctx context.Context, onlyAvailable bool) (*models.BarberListResponse, error)
	ListServices(ctx context.Context) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
