package timeslots

import (
	"context"

	"github.com/mvlko/EventBookingService/internal/integrations/authservice"
)

// TimeSlotRepository интерфейс репозитория слотов
type TimeSlotRepository interface {
	Delete(ctx context.Context, id int64) error
}

// AuthServiceClient интерфейс клиента для AuthService
type AuthServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*authservice.User, error)
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
