package get_day_board

import (
	"strconv"
	"time"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/service/appointments/models"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/ptr"
)

// ToServiceRequest создает запрос к сервису из query параметров
func ToServiceRequest(dateStr, barberIDStr string) (*models.GetDayBoardRequest, error) {
	req := &models.GetDayBoardRequest{}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = ptr.Ptr(date)
	}

	if barberIDStr != "" {
		barberID, err := strconv.ParseInt(barberIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.BarberID = ptr.Ptr(barberID)
	}

	return req, nil
}
