package get_week_slots

import (
	"context"
	"sort"
)

// effectiveCategoryIDs вычисляет действующий набор категорий фильтра
//
// Правило: явный набор текущей сессии, если фильтр уже трогали, полностью
// замещает сохраненные предпочтения; иначе предпочтения служат начальным
// значением. Пустой результат означает "показать все категории".
// Ошибка загрузки предпочтений не блокирует календарь - деградируем
// до "показать все"
func (uc *UseCase) effectiveCategoryIDs(ctx context.Context, req *Request) []int64 {
	if req.HasCategoryFilter {
		return normalizeIDs(req.CategoryIDs)
	}

	if req.UserID <= 0 {
		return nil
	}

	preferred, err := uc.prefsRepo.GetCategories(ctx, req.UserID)
	if err != nil {
		uc.logger.Warn("GetWeekSlots: failed to load preferences for user=%d, showing all categories: %v",
			req.UserID, err)
		return nil
	}

	ids := make([]int64, 0, len(preferred))
	for _, c := range preferred {
		ids = append(ids, c.ID)
	}
	return normalizeIDs(ids)
}

// normalizeIDs убирает дубликаты и неположительные id, сортирует результат
// Стабильный порядок важен для ключей кэша
func normalizeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	normalized := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		normalized = append(normalized, id)
	}

	sort.Slice(normalized, func(i, j int) bool { return normalized[i] < normalized[j] })
	return normalized
}
