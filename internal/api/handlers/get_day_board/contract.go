package get_day_board

import (
	"context"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/service/appointments/models"
)

type AppointmentService interface {
	GetDayBoard(ctx context.Context, req *models.GetDayBoardRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
