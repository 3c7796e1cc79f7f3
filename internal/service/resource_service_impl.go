package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tbecker/resplan/internal/domain"
	"github.com/tbecker/resplan/internal/repository"
)

type resourceService struct {
	resources repository.ResourceRepo
	tasks     repository.TaskRepo
}

func NewResourceService(resources repository.ResourceRepo, tasks repository.TaskRepo) ResourceService {
	return &resourceService{resources: resources, tasks: tasks}
}

func (s *resourceService) Create(ctx context.Context, r *domain.Resource) error {
	name, err := normalizedName(r.Name)
	if err != nil {
		return err
	}
	r.Name = name

	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Capacity <= 0 {
		return &ValidationError{Code: ErrCodeBadCapacity, Message: "capacity must be positive"}
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	return s.resources.Create(ctx, r)
}

func (s *resourceService) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	return s.resources.GetByID(ctx, id)
}

func (s *resourceService) List(ctx context.Context) ([]*domain.Resource, error) {
	return s.resources.List(ctx)
}

func (s *resourceService) Update(ctx context.Context, r *domain.Resource) error {
	name, err := normalizedName(r.Name)
	if err != nil {
		return err
	}
	r.Name = name

	if r.Capacity <= 0 {
		return &ValidationError{Code: ErrCodeBadCapacity, Message: "capacity must be positive"}
	}
	if _, err := s.resources.GetByID(ctx, r.ID); err != nil {
		return err
	}
	r.UpdatedAt = time.Now().UTC()
	return s.resources.Update(ctx, r)
}

// Delete removes a resource. Without force it refuses while tasks are still
// assigned; with force the tasks are left in place and become unassigned.
func (s *resourceService) Delete(ctx context.Context, id string, force bool) error {
	if _, err := s.resources.GetByID(ctx, id); err != nil {
		return err
	}
	assigned, err := s.tasks.ListByResource(ctx, id)
	if err != nil {
		return err
	}
	if len(assigned) > 0 && !force {
		return &InUseError{Kind: "resource", Names: taskNames(assigned)}
	}
	return s.resources.Delete(ctx, id)
}
