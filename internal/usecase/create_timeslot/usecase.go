package create_timeslot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mvlko/EventBookingService/internal/infra/storage/timeslot"
	"github.com/mvlko/EventBookingService/internal/integrations/authservice"
)

// UseCase use case создания слота расписания
type UseCase struct {
	timeslotRepo TimeSlotRepository
	categoryRepo CategoryRepository
	authClient   AuthServiceClient
	cache        SlotCache
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	timeslotRepo TimeSlotRepository,
	categoryRepo CategoryRepository,
	authClient AuthServiceClient,
	cache SlotCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		timeslotRepo: timeslotRepo,
		categoryRepo: categoryRepo,
		authClient:   authClient,
		cache:        cache,
		logger:       logger,
	}
}

// Execute создает новый слот расписания
//
// Доступно только администраторам. Категория должна существовать,
// интервал слота обязан быть непустым (end_time > start_time)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateTimeSlot: validation failed: %v", err)
		return nil, err
	}

	if err := uc.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	if _, err := uc.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		uc.logger.Warn("CreateTimeSlot: category %d lookup failed: %v", req.CategoryID, err)
		return nil, fmt.Errorf("%w: category %d", ErrCategoryNotFound, req.CategoryID)
	}

	draft := req.ToDraft()
	draft.Title = strings.TrimSpace(draft.Title)

	slot, err := uc.timeslotRepo.Create(ctx, draft)
	if err != nil {
		if errors.Is(err, timeslot.ErrCategoryNotFound) {
			return nil, fmt.Errorf("%w: category %d", ErrCategoryNotFound, req.CategoryID)
		}
		uc.logger.Error("CreateTimeSlot: failed to create slot: %v", err)
		return nil, fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
	}

	uc.cache.Invalidate(ctx)

	uc.logger.Info("CreateTimeSlot: slot %d created by user %d (category=%d, start=%s)",
		slot.ID, req.UserID, slot.CategoryID, slot.StartTime)

	return &Response{Slot: slot}, nil
}

func (uc *UseCase) checkAdminAccess(ctx context.Context, userID int64) error {
	user, err := uc.authClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			return fmt.Errorf("%w: user %d", ErrUserNotFound, userID)
		}
		uc.logger.Error("CreateTimeSlot: auth check failed for user %d: %v", userID, err)
		return fmt.Errorf("%w: auth check failed: %v", ErrInternal, err)
	}

	if !user.IsAdmin {
		uc.logger.Warn("CreateTimeSlot: user %d is not an admin", userID)
		return fmt.Errorf("%w: user %d is not an admin", ErrAccessDenied, userID)
	}

	return nil
}
