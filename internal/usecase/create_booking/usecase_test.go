package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvlko/EventBookingService/internal/domain"
	bookingRepo "github.com/mvlko/EventBookingService/internal/infra/storage/booking"
	timeslotRepo "github.com/mvlko/EventBookingService/internal/infra/storage/timeslot"
	"github.com/mvlko/EventBookingService/internal/integrations/authservice"
)

// fakeStorage эмулирует хранилище слотов и бронирований: уникальность
// бронирования на слот обеспечивается так же, как констрейнтом в БД
type fakeStorage struct {
	mu       sync.Mutex
	slots    map[int64]*domain.TimeSlot
	bookings map[int64]*domain.Booking // timeslot_id -> booking
	nextID   int64
}

func newFakeStorage(slots ...*domain.TimeSlot) *fakeStorage {
	s := &fakeStorage{
		slots:    make(map[int64]*domain.TimeSlot),
		bookings: make(map[int64]*domain.Booking),
		nextID:   1,
	}
	for _, slot := range slots {
		s.slots[slot.ID] = slot
	}
	return s
}

func (s *fakeStorage) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[id]
	if !ok {
		return nil, timeslotRepo.ErrTimeSlotNotFound
	}

	copied := *slot
	if b, ok := s.bookings[id]; ok {
		copied.Booking = b.Info()
	}
	return &copied, nil
}

func (s *fakeStorage) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.slots[booking.TimeSlotID]; !ok {
		return nil, bookingRepo.ErrTimeSlotNotFound
	}
	if _, ok := s.bookings[booking.TimeSlotID]; ok {
		return nil, bookingRepo.ErrSlotAlreadyBooked
	}

	created := *booking
	created.ID = s.nextID
	created.BookedAt = time.Now()
	s.nextID++
	s.bookings[booking.TimeSlotID] = &created
	return &created, nil
}

type fakeAuthClient struct {
	users map[int64]*authservice.User
}

func (c *fakeAuthClient) GetUser(ctx context.Context, userID int64) (*authservice.User, error) {
	user, ok := c.users[userID]
	if !ok {
		return nil, authservice.ErrUserNotFound
	}
	return user, nil
}

// fakeTxManager выполняет fn без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeCache struct {
	mu          sync.Mutex
	invalidated int
}

func (c *fakeCache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestSlot(id int64) *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:         id,
		CategoryID: 1,
		Title:      "Консультация",
		StartTime:  time.Date(2024, time.June, 10, 14, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, time.June, 10, 15, 0, 0, 0, time.UTC),
	}
}

func newTestUseCase(storage *fakeStorage, cache *fakeCache) *UseCase {
	auth := &fakeAuthClient{users: map[int64]*authservice.User{
		42: {ID: 42, Name: "Иван Петров", Email: "ivan@example.com"},
		43: {ID: 43, Name: "Анна Сидорова", Email: "anna@example.com"},
	}}
	return NewUseCase(storage, storage, auth, fakeTxManager{}, cache, noopLogger{})
}

func TestExecute_Success(t *testing.T) {
	storage := newFakeStorage(newTestSlot(1))
	cache := &fakeCache{}
	uc := newTestUseCase(storage, cache)

	resp, err := uc.Execute(context.Background(), &Request{TimeSlotID: 1, UserID: 42})

	require.NoError(t, err)
	require.NotNil(t, resp.Slot.Booking)
	assert.Equal(t, int64(42), resp.Slot.Booking.UserID)
	assert.Equal(t, "Иван Петров", resp.Slot.Booking.UserName)
	assert.False(t, resp.Slot.IsAvailable())
	assert.Equal(t, 1, cache.invalidated)
}

func TestExecute_SlotNotFound(t *testing.T) {
	storage := newFakeStorage()
	uc := newTestUseCase(storage, &fakeCache{})

	_, err := uc.Execute(context.Background(), &Request{TimeSlotID: 99, UserID: 42})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	storage := newFakeStorage(newTestSlot(1))
	cache := &fakeCache{}
	uc := newTestUseCase(storage, cache)

	_, err := uc.Execute(context.Background(), &Request{TimeSlotID: 1, UserID: 42})
	require.NoError(t, err)

	// Повторное бронирование того же слота, в том числе тем же пользователем
	_, err = uc.Execute(context.Background(), &Request{TimeSlotID: 1, UserID: 43})
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)

	_, err = uc.Execute(context.Background(), &Request{TimeSlotID: 1, UserID: 42})
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)

	// Кэш инвалидируется только успешным бронированием
	assert.Equal(t, 1, cache.invalidated)
}

func TestExecute_UserNotFound(t *testing.T) {
	storage := newFakeStorage(newTestSlot(1))
	uc := newTestUseCase(storage, &fakeCache{})

	_, err := uc.Execute(context.Background(), &Request{TimeSlotID: 1, UserID: 777})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(newFakeStorage(), &fakeCache{})

	_, err := uc.Execute(context.Background(), &Request{TimeSlotID: 0, UserID: 42})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{TimeSlotID: 1, UserID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ConcurrentBooking_ExactlyOneWins(t *testing.T) {
	storage := newFakeStorage(newTestSlot(1))
	uc := newTestUseCase(storage, &fakeCache{})

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := int64(42 + i%2)
			_, errs[i] = uc.Execute(context.Background(), &Request{TimeSlotID: 1, UserID: userID})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
		}
	}
	assert.Equal(t, 1, succeeded)
}
