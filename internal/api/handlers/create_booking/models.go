package create_booking

import (
	"time"

	"github.com/mvlko/EventBookingService/internal/domain"
	createBooking "github.com/mvlko/EventBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TimeSlotID int64 `json:"timeslotId"`
}

// BookingInfoResponse HTTP response model вложенного бронирования
type BookingInfoResponse struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"userId"`
	UserName string `json:"userName"`
	BookedAt string `json:"bookedAt"`
}

// SlotResponse HTTP response model забронированного слота
type SlotResponse struct {
	ID          int64                `json:"id"`
	CategoryID  int64                `json:"categoryId"`
	Title       string               `json:"title"`
	Description *string              `json:"description,omitempty"`
	StartTime   string               `json:"startTime"`
	EndTime     string               `json:"endTime"`
	IsAvailable bool                 `json:"isAvailable"`
	Booking     *BookingInfoResponse `json:"booking,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		TimeSlotID: r.TimeSlotID,
		UserID:     userID,
	}
}

// FromDomainSlot конвертирует domain слот в HTTP response
func FromDomainSlot(s *domain.TimeSlot) *SlotResponse {
	resp := &SlotResponse{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Title:       s.Title,
		Description: s.Description,
		StartTime:   s.StartTime.Format(time.RFC3339),
		EndTime:     s.EndTime.Format(time.RFC3339),
		IsAvailable: s.IsAvailable(),
	}
	if s.Booking != nil {
		resp.Booking = &BookingInfoResponse{
			ID:       s.Booking.ID,
			UserID:   s.Booking.UserID,
			UserName: s.Booking.UserName,
			BookedAt: s.Booking.BookedAt.Format(time.RFC3339),
		}
	}
	return resp
}
