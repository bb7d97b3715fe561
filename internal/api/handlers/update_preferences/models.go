package update_preferences

import (
	"github.com/mvlko/EventBookingService/internal/domain"
)

// UpdatePreferencesRequest HTTP request model
// Набор категорий заменяется целиком, несуществующие ID молча отбрасываются
type UpdatePreferencesRequest struct {
	CategoryIDs []int64 `json:"categoryIds"`
}

// CategoryResponse HTTP response model
type CategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Color       string  `json:"color"`
}

// PreferencesResponse HTTP response model: итоговый сохраненный набор
type PreferencesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// FromDomainCategories конвертирует domain модели в HTTP response
func FromDomainCategories(categories []*domain.Category) *PreferencesResponse {
	resp := &PreferencesResponse{
		Categories: make([]CategoryResponse, 0, len(categories)),
	}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, CategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Color:       c.Color,
		})
	}
	return resp
}
