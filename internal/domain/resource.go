package domain

import "time"

type Resource struct {
	ID   string
	Name string

	// Capacity is the hours of effort the resource can absorb per 7-day week.
	// Informational for display and the task-capacity estimate; the
	// availability calculation derives capacity from working days instead.
	Capacity float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
