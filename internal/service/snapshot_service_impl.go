package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tbecker/resplan/internal/db"
	"github.com/tbecker/resplan/internal/repository"
	"github.com/tbecker/resplan/internal/snapshot"
)

type snapshotService struct {
	uow       db.UnitOfWork
	tasks     repository.TaskRepo
	resources repository.ResourceRepo
	costs     repository.CostConfigRepo
	holidays  repository.HolidayRepo
	observer  UseCaseObserver
}

func NewSnapshotService(
	uow db.UnitOfWork,
	tasks repository.TaskRepo,
	resources repository.ResourceRepo,
	costs repository.CostConfigRepo,
	holidays repository.HolidayRepo,
	observers ...UseCaseObserver,
) SnapshotService {
	return &snapshotService{
		uow:       uow,
		tasks:     tasks,
		resources: resources,
		costs:     costs,
		holidays:  holidays,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *snapshotService) Export(ctx context.Context) (*snapshot.Snapshot, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	resources, err := s.resources.List(ctx)
	if err != nil {
		return nil, err
	}
	holidays, err := s.holidays.List(ctx)
	if err != nil {
		return nil, err
	}
	costs, err := s.costs.Costs(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Build(tasks, resources, holidays, costs, time.Now().UTC()), nil
}

func (s *snapshotService) ExportToFile(ctx context.Context, path string) error {
	snap, err := s.Export(ctx)
	if err != nil {
		return err
	}
	return snapshot.Save(snap, path)
}

func (s *snapshotService) ImportFromFile(ctx context.Context, path string) (*SnapshotResult, error) {
	snap, err := snapshot.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot file: %w", err)
	}
	return s.Import(ctx, snap)
}

// Import loads a full plan inside a single transaction. Either every record
// lands or none do.
func (s *snapshotService) Import(ctx context.Context, snap *snapshot.Snapshot) (result *SnapshotResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields := map[string]any{}
		if result != nil {
			fields["task_count"] = result.TaskCount
			fields["resource_count"] = result.ResourceCount
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-snapshot",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if errs := snapshot.Validate(snap); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	plan, err := snapshot.Convert(snap)
	if err != nil {
		return nil, fmt.Errorf("converting snapshot: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		taskRepo := repository.NewSQLiteTaskRepo(tx)
		resourceRepo := repository.NewSQLiteResourceRepo(tx)
		costRepo := repository.NewSQLiteCostConfigRepo(tx)
		holidayRepo := repository.NewSQLiteHolidayRepo(tx)

		for _, r := range plan.Resources {
			if err := resourceRepo.Create(ctx, r); err != nil {
				return fmt.Errorf("creating resource %q: %w", r.Name, err)
			}
		}

		// Tasks land first without edges so forward references do not trip
		// the foreign key; a second pass writes the dependency rows.
		type pending struct {
			id   string
			deps []string
		}
		var edges []pending
		for _, t := range plan.Tasks {
			deps := t.Dependencies
			t.Dependencies = nil
			if err := taskRepo.Create(ctx, t); err != nil {
				return fmt.Errorf("creating task %q: %w", t.Name, err)
			}
			t.Dependencies = deps
			if len(deps) > 0 {
				edges = append(edges, pending{id: t.ID, deps: deps})
			}
		}
		for _, p := range edges {
			t, err := taskRepo.GetByID(ctx, p.id)
			if err != nil {
				return err
			}
			t.Dependencies = p.deps
			if err := taskRepo.Update(ctx, t); err != nil {
				return fmt.Errorf("linking dependencies for task %q: %w", t.Name, err)
			}
		}

		for _, h := range plan.Holidays {
			if err := holidayRepo.Add(ctx, h); err != nil {
				return err
			}
		}
		for size, cost := range plan.SizeCosts {
			if err := costRepo.SetCost(ctx, size, cost); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SnapshotResult{
		TaskCount:     len(plan.Tasks),
		ResourceCount: len(plan.Resources),
		HolidayCount:  len(plan.Holidays),
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("snapshot validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
