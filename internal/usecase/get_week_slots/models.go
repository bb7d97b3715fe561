package get_week_slots

import (
	"time"

	"github.com/mvlko/EventBookingService/internal/domain"
)

// Request модель запроса недельного календаря
type Request struct {
	// UserID пользователь, для которого загружается календарь
	// 0 - предпочтения не подтягиваются (показываются все категории)
	UserID int64

	// Date опорная дата; окно - неделя Пн-Вс, содержащая её
	Date time.Time

	// CategoryIDs явный набор фильтра, выбранный в текущей сессии
	// Учитывается только при HasCategoryFilter = true
	CategoryIDs []int64

	// HasCategoryFilter клиент уже трогал фильтр категорий в этой сессии.
	// Явный набор тогда полностью замещает сохраненные предпочтения
	// (в том числе пустой набор = "показать все")
	HasCategoryFilter bool
}

// Day один день недели с попавшими в него слотами
type Day struct {
	Date  time.Time
	Slots []*domain.TimeSlot
}

// Response модель ответа: окно недели и слоты, разложенные по дням
type Response struct {
	WeekStart         time.Time
	WeekEnd           time.Time
	ActiveCategoryIDs []int64
	Days              []Day
}
