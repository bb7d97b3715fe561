package create_timeslot

import (
	"time"

	"github.com/mvlko/EventBookingService/internal/domain"
	createTimeslot "github.com/mvlko/EventBookingService/internal/usecase/create_timeslot"
)

// CreateTimeSlotRequest HTTP request model
type CreateTimeSlotRequest struct {
	CategoryID  int64   `json:"categoryId"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	StartTime   string  `json:"startTime"` // RFC3339, например "2024-06-10T14:00:00Z"
	EndTime     string  `json:"endTime"`   // RFC3339
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID          int64   `json:"id"`
	CategoryID  int64   `json:"categoryId"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	IsAvailable bool    `json:"isAvailable"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом времени)
func (r *CreateTimeSlotRequest) ToUseCaseRequest(userID int64) (*createTimeslot.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createTimeslot.Request{
		UserID:      userID,
		CategoryID:  r.CategoryID,
		Title:       r.Title,
		Description: r.Description,
		StartTime:   startTime,
		EndTime:     endTime,
	}, nil
}

// FromDomainSlot конвертирует domain слот в HTTP response
func FromDomainSlot(s *domain.TimeSlot) *SlotResponse {
	return &SlotResponse{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Title:       s.Title,
		Description: s.Description,
		StartTime:   s.StartTime.Format(time.RFC3339),
		EndTime:     s.EndTime.Format(time.RFC3339),
		IsAvailable: s.IsAvailable(),
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
}
