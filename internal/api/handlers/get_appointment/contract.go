package get_appointment

import (
	"context"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByID(ctx context.Context, id int64, customerID int64) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
