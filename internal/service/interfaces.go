package service

import (
	"context"
	"time"

	"github.com/tbecker/resplan/internal/domain"
	"github.com/tbecker/resplan/internal/schedule"
	"github.com/tbecker/resplan/internal/snapshot"
)

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string, force bool) error
	Assign(ctx context.Context, taskID string, resourceID *string) error
}

type ResourceService interface {
	Create(ctx context.Context, r *domain.Resource) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context) ([]*domain.Resource, error)
	Update(ctx context.Context, r *domain.Resource) error
	Delete(ctx context.Context, id string, force bool) error
}

type ReportService interface {
	Forecast(ctx context.Context) ([]schedule.ForecastBucket, error)
	TaskCapacity(ctx context.Context) (map[domain.Size]int, error)
	Availability(ctx context.Context, now time.Time) (map[string]schedule.ResourceAvailability, error)
}

type CostConfigService interface {
	Costs(ctx context.Context) (map[domain.Size]float64, error)
	SetCost(ctx context.Context, size domain.Size, cost float64) error
}

type HolidayService interface {
	List(ctx context.Context) ([]domain.Holiday, error)
	Add(ctx context.Context, h domain.Holiday) error
	Remove(ctx context.Context, day time.Time) error
}

// SnapshotResult holds counts from a snapshot import.
type SnapshotResult struct {
	TaskCount     int
	ResourceCount int
	HolidayCount  int
}

type SnapshotService interface {
	Export(ctx context.Context) (*snapshot.Snapshot, error)
	ExportToFile(ctx context.Context, path string) error
	Import(ctx context.Context, snap *snapshot.Snapshot) (*SnapshotResult, error)
	ImportFromFile(ctx context.Context, path string) (*SnapshotResult, error)
}
