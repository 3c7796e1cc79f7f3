package repository

import (
	"context"
	"errors"
	"time"

	"github.com/tbecker/resplan/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error

	// ListDependents returns the tasks whose dependency set contains id.
	ListDependents(ctx context.Context, id string) ([]*domain.Task, error)

	// ListByResource returns the tasks assigned to the given resource.
	ListByResource(ctx context.Context, resourceID string) ([]*domain.Task, error)
}

type ResourceRepo interface {
	Create(ctx context.Context, r *domain.Resource) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context) ([]*domain.Resource, error)
	Update(ctx context.Context, r *domain.Resource) error
	Delete(ctx context.Context, id string) error
}

type CostConfigRepo interface {
	// Costs returns the per-size cost table.
	Costs(ctx context.Context) (map[domain.Size]float64, error)
	SetCost(ctx context.Context, size domain.Size, cost float64) error
}

type HolidayRepo interface {
	List(ctx context.Context) ([]domain.Holiday, error)
	Add(ctx context.Context, h domain.Holiday) error
	Remove(ctx context.Context, day time.Time) error
}
