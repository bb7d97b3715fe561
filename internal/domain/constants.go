package domain

import "errors"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultCategoryColor is used when a category is created without a color
const DefaultCategoryColor = "#3f51b5"

// Business validation constants
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

// ErrInvalidTimeRange is returned when a slot draft violates end_time > start_time
var ErrInvalidTimeRange = errors.New("domain: end time must be after start time")
