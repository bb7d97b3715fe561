package get_week_slots

import (
	"context"

	"github.com/mvlko/EventBookingService/internal/domain"
)

// TimeSlotRepository интерфейс репозитория слотов
type TimeSlotRepository interface {
	ListByWindow(ctx context.Context, filter domain.SlotFilter) ([]*domain.TimeSlot, error)
}

// PreferencesRepository интерфейс репозитория предпочтений
type PreferencesRepository interface {
	GetCategories(ctx context.Context, userID int64) ([]*domain.Category, error)
}

// SlotCache интерфейс кэша запросов к каталогу слотов
type SlotCache interface {
	Get(ctx context.Context, filter domain.SlotFilter) ([]*domain.TimeSlot, bool)
	Set(ctx context.Context, filter domain.SlotFilter, slots []*domain.TimeSlot)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
