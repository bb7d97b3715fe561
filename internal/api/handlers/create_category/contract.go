package create_category

import (
	"context"

	"github.com/mvlko/EventBookingService/internal/domain"
)

type CategoryService interface {
	Create(ctx context.Context, userID int64, category *domain.Category) (*domain.Category, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
