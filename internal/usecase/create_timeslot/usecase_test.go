package create_timeslot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvlko/EventBookingService/internal/domain"
	categoryRepo "github.com/mvlko/EventBookingService/internal/infra/storage/category"
	"github.com/mvlko/EventBookingService/internal/integrations/authservice"
	"github.com/mvlko/EventBookingService/pkg/ptr"
)

type fakeTimeSlotRepo struct {
	created []*domain.TimeSlotDraft
	nextID  int64
}

func (r *fakeTimeSlotRepo) Create(ctx context.Context, draft *domain.TimeSlotDraft) (*domain.TimeSlot, error) {
	r.created = append(r.created, draft)
	r.nextID++
	createdBy := draft.CreatedBy
	return &domain.TimeSlot{
		ID:          r.nextID,
		CategoryID:  draft.CategoryID,
		Title:       draft.Title,
		Description: draft.Description,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		CreatedBy:   &createdBy,
		CreatedAt:   time.Now(),
	}, nil
}

type fakeCategoryRepo struct {
	categories map[int64]*domain.Category
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, categoryRepo.ErrCategoryNotFound
	}
	return category, nil
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

func validRequest() *Request {
	start := time.Date(2024, time.June, 10, 14, 0, 0, 0, time.UTC)
	return &Request{
		UserID:      1,
		CategoryID:  1,
		Title:       "Консультация",
		Description: ptr.Ptr("Индивидуальная встреча"),
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	}
}

func newTestUseCase(slots *fakeTimeSlotRepo, cache *fakeCache) *UseCase {
	categories := &fakeCategoryRepo{categories: map[int64]*domain.Category{
		1: {ID: 1, Name: "Встречи"},
	}}
	auth := &fakeAuthClient{users: map[int64]*authservice.User{
		1:  {ID: 1, Name: "Админ", IsAdmin: true},
		42: {ID: 42, Name: "Иван Петров"},
	}}
	return NewUseCase(slots, categories, auth, cache, noopLogger{})
}

func TestExecute_Success(t *testing.T) {
	slots := &fakeTimeSlotRepo{}
	cache := &fakeCache{}
	uc := newTestUseCase(slots, cache)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "Консультация", resp.Slot.Title)
	assert.True(t, resp.Slot.IsAvailable())
	require.Len(t, slots.created, 1)
	assert.Equal(t, int64(1), slots.created[0].CreatedBy)
	assert.Equal(t, 1, cache.invalidated)
}

func TestExecute_NotAdmin(t *testing.T) {
	slots := &fakeTimeSlotRepo{}
	uc := newTestUseCase(slots, &fakeCache{})

	req := validRequest()
	req.UserID = 42

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, slots.created)
}

func TestExecute_UserNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeTimeSlotRepo{}, &fakeCache{})

	req := validRequest()
	req.UserID = 777

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_CategoryNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeTimeSlotRepo{}, &fakeCache{})

	req := validRequest()
	req.CategoryID = 99

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Request)
	}{
		{
			name:   "empty title",
			modify: func(r *Request) { r.Title = "   " },
		},
		{
			name:   "end equals start",
			modify: func(r *Request) { r.EndTime = r.StartTime },
		},
		{
			name:   "end before start",
			modify: func(r *Request) { r.EndTime = r.StartTime.Add(-time.Minute) },
		},
		{
			name:   "zero category",
			modify: func(r *Request) { r.CategoryID = 0 },
		},
		{
			name:   "zero times",
			modify: func(r *Request) { r.StartTime = time.Time{}; r.EndTime = time.Time{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := &fakeTimeSlotRepo{}
			cache := &fakeCache{}
			uc := newTestUseCase(slots, cache)

			req := validRequest()
			tt.modify(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, slots.created)
			assert.Zero(t, cache.invalidated)
		})
	}
}
