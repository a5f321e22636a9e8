package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	barberRepo "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/infra/storage/barber"
	serviceRepo "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/infra/storage/service"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/scheduling"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/clock"
)

// UseCase use case для получения слотов мастера на день
type UseCase struct {
	appointmentRepo AppointmentRepository
	barberRepo      BarberRepository
	serviceRepo     ServiceRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	barberRepo BarberRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		barberRepo:      barberRepo,
		serviceRepo:     serviceRepo,
		timeProvider:    clock.NewSystem(),
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: barber=%d, service=%d, date=%s",
		req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Получаем мастера
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 4. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	day := domain.DayStart(req.Date)
	response := &Response{
		Date:      day,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Slots:     []Slot{},
	}

	// 5. Клиент, исчерпавший дневной лимит, не сможет записаться: слотов нет
	if req.CustomerID != nil {
		count, err := uc.appointmentRepo.CountByCustomerAndDate(ctx, *req.CustomerID, day)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to count customer appointments: %v", err)
			return nil, fmt.Errorf("%w: failed to count customer appointments: %v", ErrInternal, err)
		}
		if count >= domain.DailyLimitPerCustomer {
			uc.logger.Info("GetAvailableSlots: customer=%d already has an appointment on %s",
				*req.CustomerID, day.Format(domain.DateFormat))
			response.HasExistingAppointment = true
			return response, nil
		}
	}

	// 6. В выходной день слотов нет
	if !domain.IsOpenDay(day) {
		uc.logger.Info("GetAvailableSlots: shop is closed on %s", day.Format(domain.DateFormat))
		return response, nil
	}

	// 7. Записи мастера на эту дату
	appointments, err := uc.appointmentRepo.ListByBarberAndDate(ctx, req.BarberID, day)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 8. Вычисляем доступность для каждого кандидата сетки
	response.Slots = toSlots(scheduling.ComputeSlots(service.DurationMinutes, day, scheduling.Spans(appointments), now))

	// Мастер не принимает записи: сетка видна, но бронирование будет отклонено
	if !barber.IsAvailable {
		closeAll(response.Slots, domain.SlotReasonBarberUnavailable)
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for barber=%d, service=%d, date=%s",
		countAvailable(response.Slots), len(response.Slots), req.BarberID, req.ServiceID, day.Format(domain.DateFormat))

	return response, nil
}
