package create_timeslot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mvlko/EventBookingService/internal/domain"
)

// validateRequest валидирует черновик слота
// Нарушение end_time > start_time - ошибка валидации, слот не создается
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrValidation)
	}
	if req.CategoryID <= 0 {
		return fmt.Errorf("%w: categoryID must be positive", ErrValidation)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if len(title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrValidation, domain.MaxTitleLength)
	}
	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrValidation, domain.MaxDescriptionLength)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrValidation)
	}
	if err := req.ToDraft().Validate(); err != nil {
		if errors.Is(err, domain.ErrInvalidTimeRange) {
			return fmt.Errorf("%w: end time must be after start time", ErrValidation)
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return nil
}
