package get_day_board

import (
	"net/http"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/handlers"
)

const msgInvalidParams = "некорректные параметры запроса"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/appointments
// Query params: date (YYYY-MM-DD, по умолчанию сегодня), barberId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq, err := ToServiceRequest(r.URL.Query().Get("date"), r.URL.Query().Get("barberId"))
	if err != nil {
		h.logger.Warn("GET /admin/appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetDayBoard(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /admin/appointments - Failed to get appointments: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/appointments - Appointments retrieved successfully: count=%d", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
