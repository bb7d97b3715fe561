package create_timeslot

import (
	"time"

	"github.com/mvlko/EventBookingService/internal/domain"
)

// Request модель запроса на создание слота
type Request struct {
	UserID      int64     // ID администратора, создающего слот
	CategoryID  int64     // ID категории
	Title       string    // Заголовок слота
	Description *string   // Описание (опционально)
	StartTime   time.Time // Начало интервала
	EndTime     time.Time // Конец интервала (строго позже начала)
}

// ToDraft конвертирует запрос в domain черновик слота
func (r *Request) ToDraft() *domain.TimeSlotDraft {
	return &domain.TimeSlotDraft{
		CategoryID:  r.CategoryID,
		Title:       r.Title,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		CreatedBy:   r.UserID,
	}
}

// Response модель ответа с созданным слотом
type Response struct {
	Slot *domain.TimeSlot
}
