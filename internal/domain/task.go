package domain

import "time"

type Task struct {
	ID    string
	Name  string
	Owner string
	Size  Size

	// Schedule
	StartDate time.Time
	DueDate   *time.Time

	// Effort and cost, backfilled from the size when not set explicitly.
	Hours int
	Cost  float64

	// Dependencies holds the ids of tasks that must complete before this
	// task's nominal start takes effect, in insertion order.
	Dependencies []string

	// ResourceID references the assigned resource; nil means unassigned.
	// A dangling reference is treated as unassigned by all aggregations.
	ResourceID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndDate returns the due date when set, otherwise the start date. Tasks
// without a due date are treated as single-day tasks everywhere.
func (t *Task) EndDate() time.Time {
	if t.DueDate != nil {
		return *t.DueDate
	}
	return t.StartDate
}

// DependsOn reports whether id is in the task's dependency set.
func (t *Task) DependsOn(id string) bool {
	for _, dep := range t.Dependencies {
		if dep == id {
			return true
		}
	}
	return false
}
