package get_week_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvlko/EventBookingService/internal/domain"
)

type fakeTimeSlotRepo struct {
	slots      []*domain.TimeSlot
	lastFilter domain.SlotFilter
	calls      int
}

func (r *fakeTimeSlotRepo) ListByWindow(ctx context.Context, filter domain.SlotFilter) ([]*domain.TimeSlot, error) {
	r.lastFilter = filter
	r.calls++

	// Отбираем по окну и категориям как реальный каталог
	result := make([]*domain.TimeSlot, 0)
	for _, slot := range r.slots {
		if slot.StartTime.Before(filter.Start) || slot.StartTime.After(filter.End) {
			continue
		}
		if len(filter.CategoryIDs) > 0 && !containsID(filter.CategoryIDs, slot.CategoryID) {
			continue
		}
		result = append(result, slot)
	}
	return result, nil
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type fakePrefsRepo struct {
	categories map[int64][]*domain.Category
	err        error
}

func (r *fakePrefsRepo) GetCategories(ctx context.Context, userID int64) ([]*domain.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.categories[userID], nil
}

// fakeSlotCache кэш с управляемым содержимым
type fakeSlotCache struct {
	slots []*domain.TimeSlot
	hit   bool
	sets  int
}

func (c *fakeSlotCache) Get(ctx context.Context, filter domain.SlotFilter) ([]*domain.TimeSlot, bool) {
	return c.slots, c.hit
}

func (c *fakeSlotCache) Set(ctx context.Context, filter domain.SlotFilter, slots []*domain.TimeSlot) {
	c.sets++
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func slotAt(id, categoryID int64, start time.Time) *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:         id,
		CategoryID: categoryID,
		Title:      "Слот",
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	}
}

func TestExecute_BucketsSlotsByDay(t *testing.T) {
	monday := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeTimeSlotRepo{slots: []*domain.TimeSlot{
		slotAt(1, 1, monday.Add(10*time.Hour)),               // Пн 10:00
		slotAt(2, 1, monday.Add(14*time.Hour)),               // Пн 14:00
		slotAt(3, 2, monday.AddDate(0, 0, 2).Add(9*time.Hour)), // Ср 09:00
		slotAt(4, 1, monday.AddDate(0, 0, 6).Add(20*time.Hour)), // Вс 20:00
		slotAt(5, 1, monday.AddDate(0, 0, 7)),                // следующий Пн - вне окна
	}}
	uc := NewUseCase(repo, &fakePrefsRepo{}, &fakeSlotCache{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 42,
		Date:   monday.AddDate(0, 0, 2), // среда
	})

	require.NoError(t, err)
	assert.Equal(t, monday, resp.WeekStart)
	require.Len(t, resp.Days, 7)

	assert.Len(t, resp.Days[0].Slots, 2) // понедельник
	assert.Len(t, resp.Days[2].Slots, 1) // среда
	assert.Len(t, resp.Days[6].Slots, 1) // воскресенье
	assert.Empty(t, resp.Days[1].Slots)
	assert.Empty(t, resp.Days[3].Slots)

	// Порядок внутри дня сохраняется
	assert.Equal(t, int64(1), resp.Days[0].Slots[0].ID)
	assert.Equal(t, int64(2), resp.Days[0].Slots[1].ID)
}

func TestExecute_ExplicitFilterSupersedesPreferences(t *testing.T) {
	monday := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeTimeSlotRepo{}
	prefs := &fakePrefsRepo{categories: map[int64][]*domain.Category{
		42: {{ID: 1}, {ID: 2}},
	}}
	uc := NewUseCase(repo, prefs, &fakeSlotCache{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:            42,
		Date:              monday,
		CategoryIDs:       []int64{3, 3, 5, 0, -1},
		HasCategoryFilter: true,
	})

	require.NoError(t, err)
	// Явный набор нормализуется и полностью замещает предпочтения
	assert.Equal(t, []int64{3, 5}, repo.lastFilter.CategoryIDs)
}

func TestExecute_EmptyExplicitFilterShowsAll(t *testing.T) {
	monday := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeTimeSlotRepo{}
	prefs := &fakePrefsRepo{categories: map[int64][]*domain.Category{
		42: {{ID: 1}},
	}}
	uc := NewUseCase(repo, prefs, &fakeSlotCache{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:            42,
		Date:              monday,
		CategoryIDs:       []int64{},
		HasCategoryFilter: true,
	})

	require.NoError(t, err)
	// Пустой явный набор означает "показать все", предпочтения игнорируются
	assert.Empty(t, repo.lastFilter.CategoryIDs)
	assert.Empty(t, resp.ActiveCategoryIDs)
}

func TestExecute_PreferencesUsedWhenNoSessionFilter(t *testing.T) {
	monday := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeTimeSlotRepo{}
	prefs := &fakePrefsRepo{categories: map[int64][]*domain.Category{
		42: {{ID: 2}, {ID: 1}},
	}}
	uc := NewUseCase(repo, prefs, &fakeSlotCache{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, Date: monday})

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, repo.lastFilter.CategoryIDs)
	assert.Equal(t, []int64{1, 2}, resp.ActiveCategoryIDs)
}

func TestExecute_PreferenceLoadFailureDegradesToShowAll(t *testing.T) {
	monday := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeTimeSlotRepo{slots: []*domain.TimeSlot{
		slotAt(1, 1, monday.Add(10*time.Hour)),
	}}
	prefs := &fakePrefsRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, prefs, &fakeSlotCache{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, Date: monday})

	// Недоступность предпочтений не блокирует календарь
	require.NoError(t, err)
	assert.Empty(t, repo.lastFilter.CategoryIDs)
	assert.Len(t, resp.Days[0].Slots, 1)
}

func TestExecute_CacheHitSkipsRepository(t *testing.T) {
	monday := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeTimeSlotRepo{}
	cache := &fakeSlotCache{
		slots: []*domain.TimeSlot{slotAt(1, 1, monday.Add(10*time.Hour))},
		hit:   true,
	}
	uc := NewUseCase(repo, &fakePrefsRepo{}, cache, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, Date: monday})

	require.NoError(t, err)
	assert.Zero(t, repo.calls)
	assert.Zero(t, cache.sets)
	assert.Len(t, resp.Days[0].Slots, 1)
}

func TestExecute_CacheMissStoresResult(t *testing.T) {
	monday := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeTimeSlotRepo{}
	cache := &fakeSlotCache{}
	uc := NewUseCase(repo, &fakePrefsRepo{}, cache, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42, Date: monday})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, 1, cache.sets)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(&fakeTimeSlotRepo{}, &fakePrefsRepo{}, &fakeSlotCache{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
