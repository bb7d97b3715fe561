package get_week_slots

import (
	"context"
	"fmt"

	"github.com/mvlko/EventBookingService/internal/domain"
)

// UseCase use case загрузки недельного календаря
type UseCase struct {
	timeslotRepo TimeSlotRepository
	prefsRepo    PreferencesRepository
	cache        SlotCache
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	timeslotRepo TimeSlotRepository,
	prefsRepo PreferencesRepository,
	cache SlotCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		timeslotRepo: timeslotRepo,
		prefsRepo:    prefsRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Execute загружает неделю календаря, содержащую опорную дату
//
// Порядок: вычисляем окно Пн-Вс -> определяем действующий набор категорий
// (явный фильтр сессии либо сохраненные предпочтения) -> запрашиваем каталог
// слотов, суженный на уровне запроса -> раскладываем слоты по 7 дням
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	window := domain.NewWeekWindow(req.Date)
	activeIDs := uc.effectiveCategoryIDs(ctx, req)

	uc.logger.Info("GetWeekSlots: user=%d, week=%s..%s, categories=%v",
		req.UserID, window.Start.Format(domain.DateFormat), window.End.Format(domain.DateFormat), activeIDs)

	filter := domain.SlotFilter{
		Start:       window.Start,
		End:         window.End,
		CategoryIDs: activeIDs,
	}

	slots, hit := uc.cache.Get(ctx, filter)
	if !hit {
		var err error
		slots, err = uc.timeslotRepo.ListByWindow(ctx, filter)
		if err != nil {
			uc.logger.Error("GetWeekSlots: failed to list slots: %v", err)
			return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
		}
		uc.cache.Set(ctx, filter, slots)
	}

	uc.logger.Info("GetWeekSlots: fetched %d slots (cache hit=%t)", len(slots), hit)

	return &Response{
		WeekStart:         window.Start,
		WeekEnd:           window.End,
		ActiveCategoryIDs: activeIDs,
		Days:              bucketByDay(window, slots),
	}, nil
}

// bucketByDay раскладывает слоты по 7 дням окна (Пн..Вс)
// Слоты приходят отсортированными по start_time - порядок внутри дня сохраняется
func bucketByDay(window domain.WeekWindow, slots []*domain.TimeSlot) []Day {
	days := window.Days()
	result := make([]Day, len(days))
	for i, date := range days {
		result[i] = Day{Date: date, Slots: make([]*domain.TimeSlot, 0)}
	}

	for _, slot := range slots {
		for i, date := range days {
			if domain.SameDay(slot.StartTime, date) {
				result[i].Slots = append(result[i].Slots, slot)
				break
			}
		}
	}

	return result
}
