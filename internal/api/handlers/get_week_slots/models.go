package get_week_slots

import (
	"time"

	"github.com/mvlko/EventBookingService/internal/domain"
	getWeekSlots "github.com/mvlko/EventBookingService/internal/usecase/get_week_slots"
)

// BookingInfoResponse HTTP response model вложенного бронирования
type BookingInfoResponse struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"userId"`
	UserName string `json:"userName"`
	BookedAt string `json:"bookedAt"`
}

// CategoryResponse HTTP response model вложенной категории
type CategoryResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// SlotResponse HTTP response model слота
type SlotResponse struct {
	ID          int64                `json:"id"`
	CategoryID  int64                `json:"categoryId"`
	Title       string               `json:"title"`
	Description *string              `json:"description,omitempty"`
	StartTime   string               `json:"startTime"`
	EndTime     string               `json:"endTime"`
	IsAvailable bool                 `json:"isAvailable"`
	Category    *CategoryResponse    `json:"category,omitempty"`
	Booking     *BookingInfoResponse `json:"booking,omitempty"`
}

// DayResponse один день недели со слотами
type DayResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// WeekResponse HTTP response model недельного календаря
type WeekResponse struct {
	WeekStart         string        `json:"weekStart"`
	WeekEnd           string        `json:"weekEnd"`
	ActiveCategoryIDs []int64       `json:"activeCategoryIds"`
	Days              []DayResponse `json:"days"`
}

// FromDomainSlot конвертирует domain слот в HTTP response
func FromDomainSlot(s *domain.TimeSlot) SlotResponse {
	resp := SlotResponse{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Title:       s.Title,
		Description: s.Description,
		StartTime:   s.StartTime.Format(time.RFC3339),
		EndTime:     s.EndTime.Format(time.RFC3339),
		IsAvailable: s.IsAvailable(),
	}
	if s.Category != nil {
		resp.Category = &CategoryResponse{
			ID:    s.Category.ID,
			Name:  s.Category.Name,
			Color: s.Category.Color,
		}
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

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekSlots.Response) *WeekResponse {
	activeIDs := resp.ActiveCategoryIDs
	if activeIDs == nil {
		activeIDs = make([]int64, 0)
	}

	result := &WeekResponse{
		WeekStart:         resp.WeekStart.Format(domain.DateFormat),
		WeekEnd:           resp.WeekEnd.Format(domain.DateFormat),
		ActiveCategoryIDs: activeIDs,
		Days:              make([]DayResponse, 0, len(resp.Days)),
	}

	for _, day := range resp.Days {
		dayResp := DayResponse{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: make([]SlotResponse, 0, len(day.Slots)),
		}
		for _, slot := range day.Slots {
			dayResp.Slots = append(dayResp.Slots, FromDomainSlot(slot))
		}
		result.Days = append(result.Days, dayResp)
	}

	return result
}
