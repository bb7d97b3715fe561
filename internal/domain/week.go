package domain

import "time"

// WeekWindow is the Monday-to-Sunday range a calendar view displays.
// Start is Monday 00:00:00.000, End is Sunday 23:59:59.999 in the reference
// location. The window is inclusive on both ends when querying the catalog.
type WeekWindow struct {
	Start time.Time
	End   time.Time
}

// NewWeekWindow computes the week window containing the reference instant
func NewWeekWindow(ref time.Time) WeekWindow {
	// Sunday = 0; offset to the Monday of the same calendar week
	dow := int(ref.Weekday())
	offset := 1 - dow
	if dow == 0 {
		offset = -6
	}

	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	start := day.AddDate(0, 0, offset)
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)

	return WeekWindow{Start: start, End: end}
}

// Days returns the 7 calendar days of the window, Monday through Sunday,
// each at local midnight
func (w WeekWindow) Days() []time.Time {
	days := make([]time.Time, 7)
	for i := 0; i < 7; i++ {
		days[i] = w.Start.AddDate(0, 0, i)
	}
	return days
}

// Next returns the window translated forward by exactly 7 days.
// Navigation is a pure translation of the current bounds, not a
// recomputation from the current instant.
func (w WeekWindow) Next() WeekWindow {
	return WeekWindow{
		Start: w.Start.AddDate(0, 0, 7),
		End:   w.End.AddDate(0, 0, 7),
	}
}

// Prev returns the window translated back by exactly 7 days
func (w WeekWindow) Prev() WeekWindow {
	return WeekWindow{
		Start: w.Start.AddDate(0, 0, -7),
		End:   w.End.AddDate(0, 0, -7),
	}
}

// Contains reports whether t falls inside the window (inclusive bounds)
func (w WeekWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// SameDay reports whether two instants fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
