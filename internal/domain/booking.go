package domain

import "time"

// BookingInfo is the reservation attached to exactly one TimeSlot.
// A slot holds at most one BookingInfo at any instant; it is created when a
// booking succeeds and destroyed on cancel, never mutated in between.
// Booker name and email are denormalized at booking time.
type BookingInfo struct {
	ID        int64
	UserID    int64
	UserName  string
	UserEmail string
	BookedAt  time.Time
}

// Booking is the stored booking record together with its slot reference
type Booking struct {
	ID         int64
	TimeSlotID int64
	UserID     int64
	UserName   string
	UserEmail  string
	BookedAt   time.Time
}

// Info returns the slot-attachment view of the booking
func (b *Booking) Info() *BookingInfo {
	return &BookingInfo{
		ID:        b.ID,
		UserID:    b.UserID,
		UserName:  b.UserName,
		UserEmail: b.UserEmail,
		BookedAt:  b.BookedAt,
	}
}

// UserBooking is a booking joined with the slot it reserves,
// used for a user's booking history
type UserBooking struct {
	Booking
	SlotTitle    string
	SlotStart    time.Time
	SlotEnd      time.Time
	CategoryID   int64
	CategoryName string
}
