package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/tbecker/resplan/internal/domain"
)

// Task options
type TaskOption func(*domain.Task)

func WithSize(s domain.Size) TaskOption {
	return func(t *domain.Task) {
		t.Size = s
		t.Hours = s.Hours()
		t.Cost = s.DefaultCost()
	}
}

func WithOwner(owner string) TaskOption {
	return func(t *domain.Task) {
		t.Owner = owner
	}
}

func WithStartDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.StartDate = d
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithDependencies(ids ...string) TaskOption {
	return func(t *domain.Task) {
		t.Dependencies = ids
	}
}

func WithResource(id string) TaskOption {
	return func(t *domain.Task) {
		t.ResourceID = &id
	}
}

func WithHours(hours int) TaskOption {
	return func(t *domain.Task) {
		t.Hours = hours
	}
}

func WithCost(cost float64) TaskOption {
	return func(t *domain.Task) {
		t.Cost = cost
	}
}

// NewTestTask builds a medium task starting today with sensible defaults.
func NewTestTask(name string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	task := &domain.Task{
		ID:        uuid.New().String(),
		Name:      name,
		Owner:     "Unassigned",
		Size:      domain.SizeM,
		StartDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Hours:     domain.SizeM.Hours(),
		Cost:      domain.SizeM.DefaultCost(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(task)
	}
	return task
}

// Resource options
type ResourceOption func(*domain.Resource)

func WithCapacity(c float64) ResourceOption {
	return func(r *domain.Resource) {
		r.Capacity = c
	}
}

// NewTestResource builds a resource with a standard 40-hour week.
func NewTestResource(name string, opts ...ResourceOption) *domain.Resource {
	now := time.Now().UTC()
	res := &domain.Resource{
		ID:        uuid.New().String(),
		Name:      name,
		Capacity:  40,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}
