package preferences

import (
	"context"

	"github.com/mvlko/EventBookingService/internal/domain"
)

// PreferencesRepository интерфейс репозитория предпочтений
type PreferencesRepository interface {
	GetCategories(ctx context.Context, userID int64) ([]*domain.Category, error)
	Replace(ctx context.Context, userID int64, categoryIDs []int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
