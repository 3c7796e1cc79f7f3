package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tbecker/resplan/internal/domain"
	"github.com/tbecker/resplan/internal/repository"
	"github.com/tbecker/resplan/internal/schedule"
)

type reportService struct {
	tasks     repository.TaskRepo
	resources repository.ResourceRepo
	holidays  repository.HolidayRepo
	observer  UseCaseObserver
}

func NewReportService(
	tasks repository.TaskRepo,
	resources repository.ResourceRepo,
	holidays repository.HolidayRepo,
	observers ...UseCaseObserver,
) ReportService {
	return &reportService{
		tasks:     tasks,
		resources: resources,
		holidays:  holidays,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) Forecast(ctx context.Context) ([]schedule.ForecastBucket, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.Forecast(tasks), nil
}

func (s *reportService) TaskCapacity(ctx context.Context) (map[domain.Size]int, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.TaskCapacity(tasks), nil
}

// Availability never fails on malformed plan data: a panic anywhere in the
// horizon walk is reported to the observer and degrades to an empty report.
func (s *reportService) Availability(ctx context.Context, now time.Time) (result map[string]schedule.ResourceAvailability, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		if r := recover(); r != nil {
			s.observer.ObserveUseCase(ctx, UseCaseEvent{
				Name:      "resource-availability",
				StartedAt: startedAt,
				Duration:  time.Since(startedAt),
				Success:   false,
				Err:       fmt.Errorf("availability computation failed: %v", r),
			})
			result = map[string]schedule.ResourceAvailability{}
			err = nil
		}
	}()

	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	resources, err := s.resources.List(ctx)
	if err != nil {
		return nil, err
	}
	holidayDays, err := loadHolidayDays(ctx, s.holidays)
	if err != nil {
		return nil, err
	}
	return schedule.Availability(tasks, resources, holidayDays, now), nil
}
