package catalog

import (
	"context"
	"errors"
	"fmt"

	barberRepo "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/infra/storage/barber"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/service/catalog/models"
)

// Service сервис справочников: мастера и услуги
type Service struct {
	barberRepo  BarberRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(barberRepo BarberRepository, serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		barberRepo:  barberRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// ListBarbers возвращает мастеров, отсортированных по имени.
// Если onlyAvailable, только принимающих записи.
func (s *Service) ListBarbers(ctx context.Context, onlyAvailable bool) (*models.BarberListResponse, error) {
	barbers, err := s.barberRepo.List(ctx, onlyAvailable)
	if err != nil {
		s.logger.Error("ListBarbers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBarbers - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBarbers: fetched %d barbers (onlyAvailable=%t)", len(barbers), onlyAvailable)
	return models.FromDomainBarbers(barbers), nil
}

// ListServices возвращает услуги, отсортированные по названию
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServices(services), nil
}

// SetBarberAvailability включает или выключает прием записей к мастеру.
// Существующие записи не затрагиваются.
func (s *Service) SetBarberAvailability(ctx context.Context, barberID int64, req *models.SetAvailabilityRequest) error {
	if barberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}
	if req.IsAvailable == nil {
		return fmt.Errorf("%w: isAvailable is required", ErrInvalidInput)
	}

	s.logger.Info("SetBarberAvailability: barber=%d, isAvailable=%t", barberID, *req.IsAvailable)

	if err := s.barberRepo.SetAvailability(ctx, barberID, *req.IsAvailable); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("SetBarberAvailability: barber id=%d not found", barberID)
			return ErrBarberNotFound
		}
		s.logger.Error("SetBarberAvailability: repository error for barber id=%d: %v", barberID, err)
		return fmt.Errorf("%w: SetBarberAvailability - repository error: %v", ErrInternal, err)
	}

	return nil
}
