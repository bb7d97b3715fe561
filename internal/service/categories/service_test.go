package categories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvlko/EventBookingService/internal/domain"
	categoryRepo "github.com/mvlko/EventBookingService/internal/infra/storage/category"
	"github.com/mvlko/EventBookingService/internal/integrations/authservice"
	"github.com/mvlko/EventBookingService/pkg/ptr"
)

type fakeCategoryRepo struct {
	categories []*domain.Category
	nextID     int64
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.Name == category.Name {
			return nil, categoryRepo.ErrCategoryExists
		}
	}

	created := *category
	r.nextID++
	created.ID = r.nextID
	r.categories = append(r.categories, &created)
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

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestService(repo *fakeCategoryRepo) *Service {
	auth := &fakeAuthClient{users: map[int64]*authservice.User{
		1:  {ID: 1, Name: "Админ", IsAdmin: true},
		42: {ID: 42, Name: "Иван Петров"},
	}}
	return NewService(repo, auth, noopLogger{})
}

func TestCreate_Success(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), 1, &domain.Category{
		Name:        "Встречи",
		Description: ptr.Ptr("Рабочие встречи"),
		Color:       "#ff5722",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "#ff5722", created.Color)
}

func TestCreate_DefaultColor(t *testing.T) {
	svc := newTestService(&fakeCategoryRepo{})

	created, err := svc.Create(context.Background(), 1, &domain.Category{Name: "Спорт"})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategoryColor, created.Color)
}

func TestCreate_EmptyName(t *testing.T) {
	svc := newTestService(&fakeCategoryRepo{})

	_, err := svc.Create(context.Background(), 1, &domain.Category{Name: "   "})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_DuplicateName(t *testing.T) {
	svc := newTestService(&fakeCategoryRepo{})

	_, err := svc.Create(context.Background(), 1, &domain.Category{Name: "Встречи"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), 1, &domain.Category{Name: "Встречи"})
	assert.ErrorIs(t, err, ErrCategoryExists)
}

func TestCreate_NotAdmin(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), 42, &domain.Category{Name: "Встречи"})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.categories)
}

func TestCreate_UserNotFound(t *testing.T) {
	svc := newTestService(&fakeCategoryRepo{})

	_, err := svc.Create(context.Background(), 777, &domain.Category{Name: "Встречи"})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestList(t *testing.T) {
	repo := &fakeCategoryRepo{categories: []*domain.Category{
		{ID: 1, Name: "Встречи"},
		{ID: 2, Name: "Спорт"},
	}}
	svc := newTestService(repo)

	categories, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, categories, 2)
}
