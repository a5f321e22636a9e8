package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	barberRepo "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/infra/storage/barber"
	serviceRepo "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/infra/storage/service"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/scheduling"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/clock"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/txmanager"
)

// maxAttempts первая попытка плюс один повтор после проигранной гонки
const maxAttempts = 2

// Исходы бронирования вне таксономии отказов (для метрик)
const (
	outcomeBooked   = "booked"
	outcomeInvalid  = "invalid"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

// UseCase use case для создания записи к мастеру
type UseCase struct {
	appointmentRepo AppointmentRepository
	barberRepo      BarberRepository
	serviceRepo     ServiceRepository
	txManager       TransactionManager
	notifier        Notifier
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	barberRepo BarberRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		barberRepo:      barberRepo,
		serviceRepo:     serviceRepo,
		txManager:       txManager,
		notifier:        notifier,
		metrics:         metrics,
		timeProvider:    clock.NewSystem(),
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка и вставка выполняются в сериализуемой транзакции под блокировкой
// строки мастера. Если конкурентная запись все же успела занять интервал,
// проверка повторяется один раз на свежих данных.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: barber=%d, service=%d, start=%s, customer=%v",
		req.BarberID, req.ServiceID, req.StartTime.Format(domain.DateTimeFormat), customerLabel(req.CustomerID))

	result, err := uc.execute(ctx, req)
	uc.metrics.IncBookingOutcome(outcomeOf(err))
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%d", result.ID)

	if err := uc.notifier.Publish(ctx, domain.EventAppointmentBooked, result); err != nil {
		// Запись уже зафиксирована, событие не критично
		uc.logger.Warn("CreateBooking: failed to publish event for appointment id=%d: %v", result.ID, err)
	}

	return toResponse(result), nil
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*domain.Appointment, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	phone, err := normalizePhone(req.CustomerPhone)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid phone %q: %v", req.CustomerPhone, err)
		return nil, err
	}

	// 2. Получаем услугу (длительность и цена фиксируются в записи)
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Проверка и сохранение с одним повтором после проигранной гонки
	for attempt := 1; ; attempt++ {
		created, err := uc.book(ctx, req, phone, service)
		if err == nil {
			return created, nil
		}

		if !isRaceLost(err) {
			return nil, err
		}

		if attempt >= maxAttempts {
			uc.logger.Warn("CreateBooking: lost the race for barber=%d twice, reporting conflict", req.BarberID)
			return nil, uc.conflictAfterRace(ctx, req, service)
		}

		uc.logger.Warn("CreateBooking: concurrent booking for barber=%d, retrying: %v", req.BarberID, err)
	}
}

// book выполняет одну попытку: блокировка мастера, чтение дня, проверка правил, вставка.
// Проигранная гонка на любом шаге возвращается без обертки ErrInternal.
func (uc *UseCase) book(ctx context.Context, req *Request, phone string, service *domain.Service) (*domain.Appointment, error) {
	var result *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем строку мастера: записи к нему выполняются по очереди
		barber, err := uc.barberRepo.GetByID(txCtx, req.BarberID)
		if err != nil {
			if errors.Is(err, barberRepo.ErrBarberNotFound) {
				uc.logger.Warn("CreateBooking: barber id=%d not found", req.BarberID)
				return ErrBarberNotFound
			}
			if isRaceLost(err) {
				return err
			}
			uc.logger.Error("CreateBooking: failed to get barber id=%d: %v", req.BarberID, err)
			return fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
		}

		if !barber.IsAvailable {
			uc.logger.Warn("CreateBooking: barber id=%d is not accepting appointments", req.BarberID)
			return domain.ErrBarberUnavailable
		}

		// 3.2. Все записи мастера на этот день
		existing, err := uc.appointmentRepo.ListByBarberAndDate(txCtx, req.BarberID, req.StartTime)
		if err != nil {
			if isRaceLost(err) {
				return err
			}
			uc.logger.Error("CreateBooking: failed to list appointments: %v", err)
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}

		// 3.3. Сколько записей у клиента в этот день
		dailyCount := 0
		if req.CustomerID != nil {
			dailyCount, err = uc.appointmentRepo.CountByCustomerAndDate(txCtx, *req.CustomerID, req.StartTime)
			if err != nil {
				if isRaceLost(err) {
					return err
				}
				uc.logger.Error("CreateBooking: failed to count customer appointments: %v", err)
				return fmt.Errorf("%w: failed to count customer appointments: %v", ErrInternal, err)
			}
		}

		// 3.4. Правила расписания
		proposal := scheduling.Proposal{
			Start:           req.StartTime,
			DurationMinutes: service.DurationMinutes,
			CustomerID:      req.CustomerID,
		}
		if err := scheduling.CheckBooking(proposal, scheduling.Spans(existing), dailyCount); err != nil {
			uc.logger.Warn("CreateBooking: rejected: %v", err)
			return err
		}

		now := uc.timeProvider.Now()
		if req.StartTime.Before(now) {
			uc.logger.Warn("CreateBooking: start %s is in the past", req.StartTime.Format(domain.DateTimeFormat))
			return domain.ErrPastTime
		}

		// 3.5. Сохраняем запись с денормализацией данных услуги
		appointment := &domain.Appointment{
			CustomerName:    strings.TrimSpace(req.CustomerName),
			CustomerPhone:   phone,
			BarberID:        barber.ID,
			BarberName:      barber.FullName,
			ServiceID:       service.ID,
			CustomerID:      req.CustomerID,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			CreatedAt:       now,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			if isRaceLost(err) {
				return err
			}
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// conflictAfterRace возвращает StaffConflict; интервал победившей записи
// добавляется, если его удается прочитать
func (uc *UseCase) conflictAfterRace(ctx context.Context, req *Request, service *domain.Service) error {
	existing, err := uc.appointmentRepo.ListByBarberAndDate(ctx, req.BarberID, req.StartTime)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to load conflicting appointment: %v", err)
		return domain.ErrStaffConflict
	}

	span := domain.NewInterval(req.StartTime, service.DurationMinutes)
	for _, a := range existing {
		if span.Overlaps(a.Span()) {
			return &domain.StaffConflictError{Span: a.Span()}
		}
	}

	return domain.ErrStaffConflict
}

func isRaceLost(err error) bool {
	return errors.Is(err, domain.ErrConstraintViolation) || errors.Is(err, txmanager.ErrSerializationFailure)
}

func outcomeOf(err error) string {
	if err == nil {
		return outcomeBooked
	}
	if code := domain.RejectionCode(err); code != "" {
		return code
	}
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidPhone):
		return outcomeInvalid
	case errors.Is(err, ErrBarberNotFound), errors.Is(err, ErrServiceNotFound):
		return outcomeNotFound
	default:
		return outcomeError
	}
}

func customerLabel(id *int64) string {
	if id == nil {
		return "guest"
	}
	return fmt.Sprintf("%d", *id)
}

func toResponse(a *domain.Appointment) *Response {
	return &Response{
		ID:              a.ID,
		CustomerID:      a.CustomerID,
		CustomerName:    a.CustomerName,
		CustomerPhone:   a.CustomerPhone,
		BarberID:        a.BarberID,
		BarberName:      a.BarberName,
		ServiceID:       a.ServiceID,
		StartTime:       a.StartTime,
		EndTime:         a.End(),
		DurationMinutes: a.DurationMinutes,
		ServiceName:     a.ServiceName,
		ServicePrice:    a.ServicePrice,
		CreatedAt:       a.CreatedAt,
	}
}
