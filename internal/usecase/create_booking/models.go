package create_booking

import (
	"github.com/mvlko/EventBookingService/internal/domain"
)

// Request модель запроса на бронирование слота
type Request struct {
	TimeSlotID int64 // ID слота
	UserID     int64 // ID пользователя
}

// Response модель ответа: слот с прикрепленным бронированием
type Response struct {
	Slot *domain.TimeSlot
}
