package update_preferences

import (
	"errors"
	"net/http"

	"github.com/mvlko/EventBookingService/internal/api/handlers"
	"github.com/mvlko/EventBookingService/internal/api/middleware"
	"github.com/mvlko/EventBookingService/internal/service/preferences"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "пользователь не авторизован"
	msgInvalidInput       = "некорректный список категорий"
)

type Handler struct {
	service PreferencesService
	logger  Logger
}

func NewHandler(service PreferencesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/me/preferences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /me/preferences - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdatePreferencesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /me/preferences - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	saved, err := h.service.Save(r.Context(), userID, req.CategoryIDs)
	if err != nil {
		switch {
		case errors.Is(err, preferences.ErrInvalidInput):
			h.logger.Warn("PUT /me/preferences - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /me/preferences - Failed to save preferences: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /me/preferences - Preferences saved successfully: user_id=%d, count=%d",
		userID, len(saved))
	handlers.RespondJSON(w, http.StatusOK, FromDomainCategories(saved))
}
