package get_categories

import (
	"context"

	"github.com/mvlko/EventBookingService/internal/domain"
)

type CategoryService interface {
	List(ctx context.Context) ([]*domain.Category, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
