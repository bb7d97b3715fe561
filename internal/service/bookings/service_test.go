package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvlko/EventBookingService/internal/domain"
	bookingRepo "github.com/mvlko/EventBookingService/internal/infra/storage/booking"
	"github.com/mvlko/EventBookingService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	byUser   map[int64][]*domain.UserBooking
	deleted  []int64
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (r *fakeBookingRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.UserBooking, error) {
	return r.byUser[userID], nil
}

func (r *fakeBookingRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.bookings, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeCache struct {
	invalidated int
}

func (c *fakeCache) Invalidate(ctx context.Context) {
	c.invalidated++
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestCancel_Success(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		10: {ID: 10, TimeSlotID: 1, UserID: 42},
	}}
	cache := &fakeCache{}
	svc := NewService(repo, cache, noopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 42})

	require.NoError(t, err)
	assert.Equal(t, []int64{10}, repo.deleted)
	assert.Equal(t, 1, cache.invalidated)
}

func TestCancel_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	svc := NewService(repo, &fakeCache{}, noopLogger{})

	err := svc.Cancel(context.Background(), 99, &models.CancelBookingRequest{UserID: 42})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_NotOwner(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		10: {ID: 10, TimeSlotID: 1, UserID: 42},
	}}
	cache := &fakeCache{}
	svc := NewService(repo, cache, noopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 43})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)
	assert.Zero(t, cache.invalidated)
}

func TestGetUserBookings(t *testing.T) {
	start := time.Date(2024, time.June, 10, 14, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{byUser: map[int64][]*domain.UserBooking{
		42: {
			{
				Booking:      domain.Booking{ID: 10, TimeSlotID: 1, UserID: 42},
				SlotTitle:    "Консультация",
				SlotStart:    start,
				SlotEnd:      start.Add(time.Hour),
				CategoryID:   1,
				CategoryName: "Встречи",
			},
		},
	}}
	svc := NewService(repo, &fakeCache{}, noopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(10), resp.Bookings[0].ID)
	assert.Equal(t, "Консультация", resp.Bookings[0].SlotTitle)
}

func TestGetUserBookings_Empty(t *testing.T) {
	repo := &fakeBookingRepo{byUser: map[int64][]*domain.UserBooking{}}
	svc := NewService(repo, &fakeCache{}, noopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), 42)

	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
}

func TestGetUserBookings_InvalidUserID(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeCache{}, noopLogger{})

	_, err := svc.GetUserBookings(context.Background(), 0)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
