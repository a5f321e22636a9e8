package create_booking

import (
	"errors"
	"net/http"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/handlers"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/middleware"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	createBooking "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/usecase/create_booking"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/ptr"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStartTime     = "некорректный формат времени начала, ожидается YYYY-MM-DDTHH:MM"
	msgInvalidInput         = "некорректные данные записи"
	msgInvalidPhone         = "некорректный номер телефона"
	msgBarberNotFound       = "мастер не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgClosedDay            = "в этот день салон не работает"
	msgOutsideBusinessHours = "время начала вне часов работы"
	msgExceedsClosingTime   = "услуга не успеет закончиться до закрытия"
	msgStaffConflict        = "мастер занят в это время"
	msgDailyLimitExceeded   = "у вас уже есть запись на этот день"
	msgPastTime             = "время начала уже прошло"
	msgBarberUnavailable    = "мастер сейчас не принимает записи"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
// X-User-ID опционален: без него запись гостевая
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var customerID *int64
	if userID, ok := middleware.GetUserID(r.Context()); ok {
		customerID = ptr.Ptr(userID)
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid start time %q: %v", req.StartTime, err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondUseCaseError(w, &req, err)
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, barber_id=%d",
		result.ID, result.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, req *CreateAppointmentRequest, err error) {
	// Отказы по правилам расписания: машинный код из domain
	if code := domain.RejectionCode(err); code != "" {
		status, message := rejectionStatus(err)
		var details map[string]interface{}

		var conflict *domain.StaffConflictError
		if errors.As(err, &conflict) {
			details = map[string]interface{}{
				"conflictStart": conflict.Span.Start.Format(domain.DateTimeFormat),
				"conflictEnd":   conflict.Span.End.Format(domain.DateTimeFormat),
			}
		}

		h.logger.Warn("POST /appointments - Rejected: code=%s, barber_id=%d, start=%s", code, req.BarberID, req.StartTime)
		handlers.RespondErrorWithCode(w, status, code, message, details)
		return
	}

	switch {
	case errors.Is(err, createBooking.ErrBarberNotFound):
		h.logger.Warn("POST /appointments - Barber not found: barber_id=%d", req.BarberID)
		handlers.RespondNotFound(w, msgBarberNotFound)

	case errors.Is(err, createBooking.ErrServiceNotFound):
		h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, createBooking.ErrInvalidPhone):
		h.logger.Warn("POST /appointments - Invalid phone: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPhone)

	case errors.Is(err, createBooking.ErrInvalidInput):
		h.logger.Warn("POST /appointments - Invalid input: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("POST /appointments - Failed to create appointment: barber_id=%d, error=%v", req.BarberID, err)
		handlers.RespondInternalError(w)
	}
}

// rejectionStatus HTTP-статус и сообщение для отказа
func rejectionStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrClosedDay):
		return http.StatusUnprocessableEntity, msgClosedDay
	case errors.Is(err, domain.ErrOutsideBusinessHours):
		return http.StatusUnprocessableEntity, msgOutsideBusinessHours
	case errors.Is(err, domain.ErrExceedsClosingTime):
		return http.StatusUnprocessableEntity, msgExceedsClosingTime
	case errors.Is(err, domain.ErrStaffConflict):
		return http.StatusConflict, msgStaffConflict
	case errors.Is(err, domain.ErrDailyLimitExceeded):
		return http.StatusConflict, msgDailyLimitExceeded
	case errors.Is(err, domain.ErrPastTime):
		return http.StatusUnprocessableEntity, msgPastTime
	default:
		return http.StatusConflict, msgBarberUnavailable
	}
}
