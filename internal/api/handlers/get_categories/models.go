package get_categories

import (
	"github.com/mvlko/EventBookingService/internal/domain"
)

// CategoryResponse HTTP response model
type CategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Color       string  `json:"color"`
}

// CategoryListResponse HTTP response model
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// FromDomainCategories конвертирует domain модели в HTTP response
func FromDomainCategories(categories []*domain.Category) *CategoryListResponse {
	resp := &CategoryListResponse{
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
