package categories

import (
	"context"

	"github.com/mvlko/EventBookingService/internal/domain"
	"github.com/mvlko/EventBookingService/internal/integrations/authservice"
)

// CategoryRepository интерфейс репозитория категорий
type CategoryRepository interface {
	List(ctx context.Context) ([]*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
}

// AuthServiceClient интерфейс клиента для AuthService
type AuthServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*authservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
