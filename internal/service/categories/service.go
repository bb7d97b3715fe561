package categories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mvlko/EventBookingService/internal/domain"
	categoryRepo "github.com/mvlko/EventBookingService/internal/infra/storage/category"
	"github.com/mvlko/EventBookingService/internal/integrations/authservice"
)

// Service сервис для работы с категориями
type Service struct {
	categoryRepo CategoryRepository
	authClient   AuthServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса категорий
func NewService(categoryRepo CategoryRepository, authClient AuthServiceClient, logger Logger) *Service {
	return &Service{
		categoryRepo: categoryRepo,
		authClient:   authClient,
		logger:       logger,
	}
}

// List возвращает все категории
func (s *Service) List(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return categories, nil
}

// Create создает новую категорию
// Доступно только администраторам
func (s *Service) Create(ctx context.Context, userID int64, category *domain.Category) (*domain.Category, error) {
	s.logger.Info("Create: creating category %q by user=%d", category.Name, userID)

	if strings.TrimSpace(category.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if category.Color == "" {
		category.Color = domain.DefaultCategoryColor
	}

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return nil, err
	}

	created, err := s.categoryRepo.Create(ctx, category)
	if err != nil {
		if errors.Is(err, categoryRepo.ErrCategoryExists) {
			s.logger.Warn("Create: category %q already exists", category.Name)
			return nil, ErrCategoryExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created category id=%d", created.ID)
	return created, nil
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
