package domain

import "time"

// TimeSlot represents a single bookable time interval tied to one category
type TimeSlot struct {
	ID          int64
	CategoryID  int64
	Title       string
	Description *string
	StartTime   time.Time
	EndTime     time.Time
	CreatedBy   *int64
	CreatedAt   time.Time

	// Resolved relations
	Category *Category
	Booking  *BookingInfo
}

// IsAvailable returns true if the slot currently has no booking attached
func (s *TimeSlot) IsAvailable() bool {
	return s.Booking == nil
}

// IsBookedBy returns true if the slot is booked by the given user
func (s *TimeSlot) IsBookedBy(userID int64) bool {
	return s.Booking != nil && s.Booking.UserID == userID
}

// SlotFilter describes a Slot Catalog query: a time window over start_time
// (inclusive on both ends) plus an optional category restriction.
// An empty CategoryIDs set means "all categories".
type SlotFilter struct {
	Start       time.Time
	End         time.Time
	CategoryIDs []int64
}

// TimeSlotDraft carries the fields an administrator supplies when creating a slot
type TimeSlotDraft struct {
	CategoryID  int64
	Title       string
	Description *string
	StartTime   time.Time
	EndTime     time.Time
	CreatedBy   int64
}

// Validate checks the slot invariant end_time > start_time
func (d *TimeSlotDraft) Validate() error {
	if d.EndTime.Before(d.StartTime) || d.EndTime.Equal(d.StartTime) {
		return ErrInvalidTimeRange
	}
	return nil
}
