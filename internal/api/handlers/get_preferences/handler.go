package get_preferences

import (
	"net/http"

	"github.com/mvlko/EventBookingService/internal/api/handlers"
	"github.com/mvlko/EventBookingService/internal/api/middleware"
)

const (
	msgMissingUserID = "пользователь не авторизован"
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

// Handle GET /api/v1/me/preferences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /me/preferences - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	categories, err := h.service.Get(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /me/preferences - Failed to get preferences: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /me/preferences - Preferences retrieved successfully: user_id=%d, count=%d",
		userID, len(categories))
	handlers.RespondJSON(w, http.StatusOK, FromDomainCategories(categories))
}
