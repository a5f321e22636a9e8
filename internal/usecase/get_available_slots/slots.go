package get_available_slots

import (
	"time"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
)

// toSlots конвертирует слоты движка в модель ответа
func toSlots(slots []domain.Slot) []Slot {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			StartTime:   s.StartTime,
			IsAvailable: s.IsAvailable,
			Reason:      s.Reason,
		}
	}
	return result
}

// closeAll помечает все слоты недоступными с причиной reason
func closeAll(slots []Slot, reason domain.SlotReason) {
	for i := range slots {
		slots[i].IsAvailable = false
		slots[i].Reason = reason
	}
}

// countAvailable подсчитывает доступные слоты (для логирования)
func countAvailable(slots []Slot) int {
	n := 0
	for _, s := range slots {
		if s.IsAvailable {
			n++
		}
	}
	return n
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return domain.DayStart(date).Before(domain.DayStart(now))
}
