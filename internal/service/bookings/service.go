package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/mvlko/EventBookingService/internal/infra/storage/booking"
	"github.com/mvlko/EventBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями пользователя
type Service struct {
	bookingRepo BookingRepository
	cache       SlotCache
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, cache SlotCache, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		cache:       cache,
		logger:      logger,
	}
}

// GetUserBookings возвращает бронирования пользователя вместе с данными слотов
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainUserBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Отменить бронирование может только его владелец: проверка - строгое
// сравнение user_id, роль администратора её не обходит
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d (owner=%d)",
			req.UserID, bookingID, booking.UserID)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Бронирование исчезло между чтением и удалением
			// (конкурентная отмена или удаление слота администратором)
			s.logger.Warn("Cancel: booking id=%d not found during deletion", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Слот снова доступен - закэшированные окна устарели
	s.cache.Invalidate(ctx)

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}
