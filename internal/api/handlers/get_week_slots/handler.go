package get_week_slots

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mvlko/EventBookingService/internal/api/handlers"
	"github.com/mvlko/EventBookingService/internal/api/middleware"
	"github.com/mvlko/EventBookingService/internal/domain"
	getWeekSlots "github.com/mvlko/EventBookingService/internal/usecase/get_week_slots"
)

const (
	msgMissingUserID   = "пользователь не авторизован"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidCategory = "некорректный список категорий"
	msgInvalidInput    = "некорректные параметры запроса"

	paramDate        = "date"
	paramCategoryIDs = "categoryIds"
)

type Handler struct {
	useCase GetWeekSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/timeslots/week?date=YYYY-MM-DD&categoryIds=1,2,3
//
// date - опорная дата, по умолчанию сегодня.
// categoryIds - явный фильтр сессии: само присутствие параметра (даже пустого)
// полностью замещает сохраненные предпочтения пользователя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /timeslots/week - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()

	refDate := time.Now()
	if dateStr := query.Get(paramDate); dateStr != "" {
		parsed, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /timeslots/week - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		refDate = parsed
	}

	categoryIDs, hasFilter, err := parseCategoryIDs(query)
	if err != nil {
		h.logger.Warn("GET /timeslots/week - Invalid category ids: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategory)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getWeekSlots.Request{
		UserID:            userID,
		Date:              refDate,
		CategoryIDs:       categoryIDs,
		HasCategoryFilter: hasFilter,
	})
	if err != nil {
		switch {
		case errors.Is(err, getWeekSlots.ErrInvalidInput):
			h.logger.Warn("GET /timeslots/week - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /timeslots/week - Failed to load week: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /timeslots/week - Week loaded successfully: user_id=%d, week=%s",
		userID, result.WeekStart.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// parseCategoryIDs разбирает categoryIds как CSV список ID.
// Второе возвращаемое значение - присутствовал ли параметр в запросе вообще:
// отсутствие и пустое значение различаются (пустое = "показать все")
func parseCategoryIDs(query map[string][]string) ([]int64, bool, error) {
	values, present := query[paramCategoryIDs]
	if !present {
		return nil, false, nil
	}

	ids := make([]int64, 0)
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, true, err
			}
			ids = append(ids, id)
		}
	}

	return ids, true, nil
}
