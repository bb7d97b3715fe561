package update_preferences

import (
	"context"

	"github.com/mvlko/EventBookingService/internal/domain"
)

type PreferencesService interface {
	Save(ctx context.Context, userID int64, categoryIDs []int64) ([]*domain.Category, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
