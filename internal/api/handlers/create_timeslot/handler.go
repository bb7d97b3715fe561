package create_timeslot

import (
	"errors"
	"net/http"

	"github.com/mvlko/EventBookingService/internal/api/handlers"
	"github.com/mvlko/EventBookingService/internal/api/middleware"
	createTimeslot "github.com/mvlko/EventBookingService/internal/usecase/create_timeslot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "пользователь не авторизован"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgValidationFailed   = "некорректные данные слота"
	msgCategoryNotFound   = "категория не найдена"
	msgForbidden          = "создавать слоты может только администратор"
	msgUserNotFound       = "пользователь не найден"
)

type Handler struct {
	useCase CreateTimeSlotUseCase
	logger  Logger
}

func NewHandler(useCase CreateTimeSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/timeslots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /timeslots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /timeslots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /timeslots - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createTimeslot.ErrValidation):
			h.logger.Warn("POST /timeslots - Validation failed: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, createTimeslot.ErrCategoryNotFound):
			h.logger.Warn("POST /timeslots - Category not found: category_id=%d", req.CategoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		case errors.Is(err, createTimeslot.ErrAccessDenied):
			h.logger.Warn("POST /timeslots - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createTimeslot.ErrUserNotFound):
			h.logger.Warn("POST /timeslots - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("POST /timeslots - Failed to create slot: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /timeslots - Slot created successfully: slot_id=%d, user_id=%d",
		result.Slot.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainSlot(result.Slot))
}
