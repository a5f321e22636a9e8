package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	appointmentRepo "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/infra/storage/appointment"
	customerRepo "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/infra/storage/customer"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/service/appointments/models"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/clock"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	customerRepo    CustomerRepository
	txManager       TransactionManager
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	txManager TransactionManager,
	notifier Notifier,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	if timeProvider == nil {
		timeProvider = clock.NewSystem()
	}

	return &Service{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		txManager:       txManager,
		notifier:        notifier,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Cancel отменяет будущую запись клиента. Отмена удаляет запись и
// освобождает интервал мастера.
func (s *Service) Cancel(ctx context.Context, appointmentID int64, customerID int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by customer=%d", appointmentID, customerID)

	var cancelled *domain.Appointment

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appointment, err := s.appointmentRepo.GetByID(txCtx, appointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
				return domain.ErrNotFound
			}
			s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if !appointment.IsOwnedBy(customerID) {
			s.logger.Warn("Cancel: customer=%d does not own appointment id=%d", customerID, appointmentID)
			return domain.ErrNotOwner
		}

		if !appointment.IsUpcoming(s.timeProvider.Now()) {
			s.logger.Warn("Cancel: appointment id=%d has already started at %s",
				appointmentID, appointment.StartTime.Format(domain.DateTimeFormat))
			return domain.ErrPastAppointment
		}

		if err := s.appointmentRepo.Delete(txCtx, appointmentID); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				s.logger.Warn("Cancel: appointment id=%d not found during delete", appointmentID)
				return domain.ErrNotFound
			}
			s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		cancelled = appointment
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.notifier.Publish(ctx, domain.EventAppointmentCancelled, cancelled); err != nil {
		s.logger.Warn("Cancel: failed to publish event for appointment id=%d: %v", appointmentID, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return nil
}

// GetByID получает запись по ID.
// Запись видит ее владелец или администратор.
func (s *Service) GetByID(ctx context.Context, id int64, customerID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for customer=%d", id, customerID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, domain.ErrNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkAccess(ctx, appointment, customerID); err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appointment), nil
}

// GetCustomerAppointments получает записи клиента, новые первыми.
// Без IncludePast возвращаются только предстоящие.
func (s *Service) GetCustomerAppointments(ctx context.Context, req *models.GetCustomerAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetCustomerAppointments: customer=%d, includePast=%t", req.CustomerID, req.IncludePast)

	if req.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	var from *time.Time
	if !req.IncludePast {
		now := s.timeProvider.Now()
		from = &now
	}

	appointments, err := s.appointmentRepo.ListByCustomer(ctx, req.CustomerID, from)
	if err != nil {
		s.logger.Error("GetCustomerAppointments: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerAppointments: fetched %d appointments for customer=%d", len(appointments), req.CustomerID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetDayBoard получает записи за день для администратора, по времени начала
func (s *Service) GetDayBoard(ctx context.Context, req *models.GetDayBoardRequest) (*models.AppointmentListResponse, error) {
	filter := domain.AppointmentsFilter{
		Date:     domain.DayStart(s.timeProvider.Now()),
		BarberID: req.BarberID,
	}
	if req.Date != nil {
		filter.Date = domain.DayStart(*req.Date)
	}

	s.logger.Info("GetDayBoard: date=%s, barber=%v", filter.Date.Format(domain.DateFormat), req.BarberID)

	appointments, err := s.appointmentRepo.ListByDate(ctx, filter)
	if err != nil {
		s.logger.Error("GetDayBoard: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetDayBoard - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appointments), nil
}

// checkAccess проверяет, что клиент владелец записи или администратор
func (s *Service) checkAccess(ctx context.Context, appointment *domain.Appointment, customerID int64) error {
	if appointment.IsOwnedBy(customerID) {
		return nil
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("checkAccess: customer id=%d not found", customerID)
			return domain.ErrNotOwner
		}
		s.logger.Error("checkAccess: failed to get customer id=%d: %v", customerID, err)
		return fmt.Errorf("%w: checkAccess - failed to get customer: %v", ErrInternal, err)
	}

	if !customer.IsAdmin() {
		s.logger.Warn("checkAccess: customer=%d has no access to appointment id=%d", customerID, appointment.ID)
		return domain.ErrNotOwner
	}

	return nil
}
