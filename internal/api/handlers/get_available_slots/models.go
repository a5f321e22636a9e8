package get_available_slots

import (
	"time"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	getAvailableSlots "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date                   string          `json:"date"`
	BarberID               int64           `json:"barberId"`
	ServiceID              int64           `json:"serviceId"`
	HasExistingAppointment bool            `json:"hasExistingAppointment"`
	Slots                  []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time        string `json:"time"` // "10:00"
	IsAvailable bool   `json:"isAvailable"`
	Reason      string `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:        slot.StartTime.String(),
			IsAvailable: slot.IsAvailable,
			Reason:      string(slot.Reason),
		}
	}

	return &AvailableSlotsResponse{
		Date:                   resp.Date.Format(domain.DateFormat),
		BarberID:               resp.BarberID,
		ServiceID:              resp.ServiceID,
		HasExistingAppointment: resp.HasExistingAppointment,
		Slots:                  slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(barberID, serviceID int64, dateStr string, customerID *int64) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		CustomerID: customerID,
		BarberID:   barberID,
		ServiceID:  serviceID,
		Date:       date,
	}, nil
}
