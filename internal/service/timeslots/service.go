package timeslots

import (
	"context"
	"errors"
	"fmt"

	timeslotRepo "github.com/mvlko/EventBookingService/internal/infra/storage/timeslot"
	"github.com/mvlko/EventBookingService/internal/integrations/authservice"
)

// Service сервис администрирования слотов
type Service struct {
	timeslotRepo TimeSlotRepository
	authClient   AuthServiceClient
	cache        SlotCache
	logger       Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	timeslotRepo TimeSlotRepository,
	authClient AuthServiceClient,
	cache SlotCache,
	logger Logger,
) *Service {
	return &Service{
		timeslotRepo: timeslotRepo,
		authClient:   authClient,
		cache:        cache,
		logger:       logger,
	}
}

// Delete удаляет слот
// Доступно только администраторам. Слот удаляется независимо от наличия
// бронирования: бронирование уходит каскадом без уведомления - держатель
// booking id при следующем обращении получит not found
func (s *Service) Delete(ctx context.Context, slotID int64, userID int64) error {
	s.logger.Info("Delete: deleting timeslot id=%d by user=%d", slotID, userID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return err
	}

	if err := s.timeslotRepo.Delete(ctx, slotID); err != nil {
		if errors.Is(err, timeslotRepo.ErrTimeSlotNotFound) {
			s.logger.Warn("Delete: timeslot id=%d not found", slotID)
			return ErrTimeSlotNotFound
		}
		s.logger.Error("Delete: repository error for timeslot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	// Каталог изменился - закэшированные окна устарели
	s.cache.Invalidate(ctx)

	s.logger.Info("Delete: successfully deleted timeslot id=%d", slotID)
	return nil
}

// checkAdminAccess проверяет через AuthService, что пользователь - администратор
func (s *Service) checkAdminAccess(ctx context.Context, userID int64) error {
	user, err := s.authClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			s.logger.Warn("checkAdminAccess: user=%d not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("checkAdminAccess: failed to get user=%d: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get user: %v", ErrInternal, err)
	}

	if !user.IsAdmin {
		s.logger.Warn("checkAdminAccess: user=%d is not an administrator", userID)
		return ErrAccessDenied
	}

	return nil
}
