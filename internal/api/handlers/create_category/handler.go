package create_category

import (
	"errors"
	"net/http"

	"github.com/mvlko/EventBookingService/internal/api/handlers"
	"github.com/mvlko/EventBookingService/internal/api/middleware"
	"github.com/mvlko/EventBookingService/internal/service/categories"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "пользователь не авторизован"
	msgInvalidInput       = "некорректные данные категории"
	msgCategoryExists     = "категория с таким именем уже существует"
	msgForbidden          = "создавать категории может только администратор"
	msgUserNotFound       = "пользователь не найден"
)

type Handler struct {
	service CategoryService
	logger  Logger
}

func NewHandler(service CategoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /categories - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /categories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), userID, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, categories.ErrInvalidInput):
			h.logger.Warn("POST /categories - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, categories.ErrCategoryExists):
			h.logger.Warn("POST /categories - Category already exists: name=%q", req.Name)
			handlers.RespondError(w, http.StatusConflict, msgCategoryExists)

		case errors.Is(err, categories.ErrAccessDenied):
			h.logger.Warn("POST /categories - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, categories.ErrUserNotFound):
			h.logger.Warn("POST /categories - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("POST /categories - Failed to create category: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /categories - Category created successfully: category_id=%d, user_id=%d",
		created.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainCategory(created))
}
