package get_customer_appointments

import (
	"net/http"
	"strconv"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/handlers"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/middleware"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/service/appointments/models"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidIncludePast = "некорректное значение includePast"
)

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

// Handle GET /api/v1/customers/me/appointments
// Query params: includePast (опционально, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /customers/me/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	includePast := false
	if raw := r.URL.Query().Get("includePast"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /customers/me/appointments - Invalid includePast: %v", err)
			handlers.RespondBadRequest(w, msgInvalidIncludePast)
			return
		}
		includePast = parsed
	}

	result, err := h.service.GetCustomerAppointments(r.Context(), &models.GetCustomerAppointmentsRequest{
		CustomerID:  userID,
		IncludePast: includePast,
	})
	if err != nil {
		h.logger.Error("GET /customers/me/appointments - Failed to get appointments: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers/me/appointments - Appointments retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
