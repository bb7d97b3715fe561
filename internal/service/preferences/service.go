package preferences

import (
	"context"
	"fmt"

	"github.com/mvlko/EventBookingService/internal/domain"
)

// Service сервис для работы с предпочтениями пользователей
type Service struct {
	prefsRepo PreferencesRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса предпочтений
func NewService(prefsRepo PreferencesRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		prefsRepo: prefsRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Get возвращает сохраненные категории пользователя
// Пустой список означает "предпочтения не заданы" (показывать все категории)
func (s *Service) Get(ctx context.Context, userID int64) ([]*domain.Category, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	categories, err := s.prefsRepo.GetCategories(ctx, userID)
	if err != nil {
		s.logger.Error("Get: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return categories, nil
}

// Save полностью заменяет набор категорий пользователя
// Замена выполняется в транзакции: delete + insert атомарны.
// Несуществующие категории молча отбрасываются.
// Сохранение не влияет на уже инициализированную сессию фильтра календаря
func (s *Service) Save(ctx context.Context, userID int64, categoryIDs []int64) ([]*domain.Category, error) {
	s.logger.Info("Save: saving %d preferred categories for user=%d", len(categoryIDs), userID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	for _, id := range categoryIDs {
		if id <= 0 {
			return nil, fmt.Errorf("%w: category ids must be positive", ErrInvalidInput)
		}
	}

	var saved []*domain.Category
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.prefsRepo.Replace(txCtx, userID, categoryIDs); err != nil {
			return fmt.Errorf("%w: Save - replace preferences: %v", ErrInternal, err)
		}

		categories, err := s.prefsRepo.GetCategories(txCtx, userID)
		if err != nil {
			return fmt.Errorf("%w: Save - read back preferences: %v", ErrInternal, err)
		}
		saved = categories
		return nil
	})
	if err != nil {
		s.logger.Error("Save: failed for user=%d: %v", userID, err)
		return nil, err
	}

	s.logger.Info("Save: successfully saved %d categories for user=%d", len(saved), userID)
	return saved, nil
}
