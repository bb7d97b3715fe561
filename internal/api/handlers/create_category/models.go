package create_category

import (
	"github.com/mvlko/EventBookingService/internal/domain"
)

// CreateCategoryRequest HTTP request model
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Color       string  `json:"color,omitempty"`
}

// CategoryResponse HTTP response model
type CategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Color       string  `json:"color"`
}

// ToDomain конвертирует HTTP запрос в domain модель
func (r *CreateCategoryRequest) ToDomain() *domain.Category {
	return &domain.Category{
		Name:        r.Name,
		Description: r.Description,
		Color:       r.Color,
	}
}

// FromDomainCategory конвертирует domain модель в HTTP response
func FromDomainCategory(c *domain.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
	}
}
