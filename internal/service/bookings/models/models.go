package models

import (
	"time"

	"github.com/mvlko/EventBookingService/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID int64 `json:"userId"`
}

// Response модели

// BookingResponse ответ с данными бронирования и слота
type BookingResponse struct {
	ID           int64     `json:"id"`
	TimeSlotID   int64     `json:"timeslotId"`
	UserID       int64     `json:"userId"`
	BookedAt     time.Time `json:"bookedAt"`
	SlotTitle    string    `json:"slotTitle"`
	SlotStart    time.Time `json:"slotStart"`
	SlotEnd      time.Time `json:"slotEnd"`
	CategoryID   int64     `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainUserBooking конвертирует domain модель в DTO
func FromDomainUserBooking(b *domain.UserBooking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		TimeSlotID:   b.TimeSlotID,
		UserID:       b.UserID,
		BookedAt:     b.BookedAt,
		SlotTitle:    b.SlotTitle,
		SlotStart:    b.SlotStart,
		SlotEnd:      b.SlotEnd,
		CategoryID:   b.CategoryID,
		CategoryName: b.CategoryName,
	}
}

// FromDomainUserBookingList конвертирует список domain моделей в DTO
func FromDomainUserBookingList(bookings []*domain.UserBooking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, FromDomainUserBooking(b))
	}
	return resp
}
