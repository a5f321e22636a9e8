package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/handlers"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/middleware"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "запись не найдена"
	msgNotOwner             = "запись принадлежит другому клиенту"
	msgPastAppointment      = "нельзя отменить запись, которая уже началась"
)

// Коды ошибок отмены
const (
	codeNotFound        = "not_found"
	codeNotOwner        = "not_owner"
	codePastAppointment = "past_appointment"
)

// CancelResponse ответ на успешную отмену
type CancelResponse struct {
	OK bool `json:"ok"`
}

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

// Handle POST /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/cancel - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.Cancel(r.Context(), appointmentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("POST /appointments/{id}/cancel - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondErrorWithCode(w, http.StatusNotFound, codeNotFound, msgNotFound, nil)

		case errors.Is(err, domain.ErrNotOwner):
			h.logger.Warn("POST /appointments/{id}/cancel - Not owner: appointment_id=%d, user_id=%d",
				appointmentID, userID)
			handlers.RespondErrorWithCode(w, http.StatusForbidden, codeNotOwner, msgNotOwner, nil)

		case errors.Is(err, domain.ErrPastAppointment):
			h.logger.Warn("POST /appointments/{id}/cancel - Past appointment: appointment_id=%d", appointmentID)
			handlers.RespondErrorWithCode(w, http.StatusConflict, codePastAppointment, msgPastAppointment, nil)

		default:
			h.logger.Error("POST /appointments/{id}/cancel - Failed to cancel appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/cancel - Appointment cancelled successfully: appointment_id=%d, user_id=%d",
		appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, CancelResponse{OK: true})
}
