package domain

// Category represents a bookable event category (e.g. "Yoga", "Meeting Room")
// Categories are externally seeded and immutable once referenced by a slot
type Category struct {
	ID          int64
	Name        string
	Description *string
	Color       string
}
