package bookings

import (
	"context"

	"github.com/mvlko/EventBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.UserBooking, error)
	Delete(ctx context.Context, id int64) error
}

// SlotCache интерфейс кэша запросов к каталогу слотов
type SlotCache interface {
	Invalidate(ctx context.Context)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
