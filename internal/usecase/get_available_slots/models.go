package get_available_slots

import (
	"time"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	CustomerID *int64    // ID клиента (опционально, для hasExistingAppointment)
	BarberID   int64     // ID мастера
	ServiceID  int64     // ID услуги (задает длительность)
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date      time.Time
	BarberID  int64
	ServiceID int64

	// HasExistingAppointment клиент уже исчерпал дневной лимит на эту дату
	HasExistingAppointment bool

	Slots []Slot // Все кандидаты сетки по порядку, включая недоступные
}

// Slot модель временного слота
type Slot struct {
	StartTime   types.TimeString  // Время начала слота (например, "10:00")
	IsAvailable bool              // Можно ли записаться
	Reason      domain.SlotReason // Причина недоступности ("" для доступного)
}
