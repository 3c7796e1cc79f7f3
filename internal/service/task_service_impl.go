package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tbecker/resplan/internal/domain"
	"github.com/tbecker/resplan/internal/repository"
	"github.com/tbecker/resplan/internal/schedule"
)

type taskService struct {
	tasks     repository.TaskRepo
	resources repository.ResourceRepo
	costs     repository.CostConfigRepo
	holidays  repository.HolidayRepo
	observer  UseCaseObserver
}

func NewTaskService(
	tasks repository.TaskRepo,
	resources repository.ResourceRepo,
	costs repository.CostConfigRepo,
	holidays repository.HolidayRepo,
	observers ...UseCaseObserver,
) TaskService {
	return &taskService{
		tasks:     tasks,
		resources: resources,
		costs:     costs,
		holidays:  holidays,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "create-task",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"task": t.Name, "size": string(t.Size)},
		})
	}()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if err = s.normalize(ctx, t, true); err != nil {
		return err
	}

	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if _, err := s.tasks.GetByID(ctx, t.ID); err != nil {
		return err
	}
	if err := s.normalize(ctx, t, false); err != nil {
		return err
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, id string, force bool) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "delete-task",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"task_id": id, "force": force},
		})
	}()

	if _, err = s.tasks.GetByID(ctx, id); err != nil {
		return err
	}
	dependents, err := s.tasks.ListDependents(ctx, id)
	if err != nil {
		return err
	}
	if len(dependents) > 0 && !force {
		return &InUseError{Kind: "task", Names: taskNames(dependents)}
	}
	return s.tasks.Delete(ctx, id)
}

func (s *taskService) Assign(ctx context.Context, taskID string, resourceID *string) error {
	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if resourceID != nil {
		if _, err := s.resources.GetByID(ctx, *resourceID); err != nil {
			return err
		}
	}
	t.ResourceID = resourceID
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

// normalize validates the task and fills derived fields: owner and size
// defaults, effort hours and cost from the size, a computed due date when
// none is given, and a dependency list reduced to known task IDs.
func (s *taskService) normalize(ctx context.Context, t *domain.Task, isNew bool) error {
	name, err := normalizedName(t.Name)
	if err != nil {
		return err
	}
	t.Name = name

	if t.Owner == "" {
		t.Owner = "Unassigned"
	}
	if t.Size == "" {
		t.Size = domain.SizeM
	}
	if !t.Size.Valid() {
		return &ValidationError{Code: ErrCodeInvalidSize, Message: "unknown size " + string(t.Size)}
	}
	if t.Cost < 0 {
		return &ValidationError{Code: ErrCodeNegativeCost, Message: "cost must not be negative"}
	}
	if t.StartDate.IsZero() {
		t.StartDate = schedule.DateOnly(time.Now().UTC())
	}

	all, err := s.tasks.List(ctx)
	if err != nil {
		return err
	}
	if isNew {
		all = append(all, t)
	}

	if err := schedule.ValidateDependencies(t.ID, t.Dependencies, all); err != nil {
		code := ErrCodeCycle
		if errors.Is(err, schedule.ErrSelfDependency) {
			code = ErrCodeSelfDependency
		}
		return &ValidationError{Code: code, Message: err.Error()}
	}
	t.Dependencies = knownDependencies(t.Dependencies, all)

	effort, err := loadEffortModel(ctx, s.costs)
	if err != nil {
		return err
	}
	if t.Hours == 0 {
		t.Hours = effort.Hours(t.Size)
	}
	if t.Cost == 0 {
		t.Cost = effort.Cost(t.Size)
	}

	if t.DueDate == nil {
		holidayDays, err := loadHolidayDays(ctx, s.holidays)
		if err != nil {
			return err
		}
		due := schedule.DueDate(t.StartDate, t.Size, holidayDays, all, t.Dependencies)
		t.DueDate = &due
	}
	return nil
}
