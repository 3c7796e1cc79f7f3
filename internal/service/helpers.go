package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tbecker/resplan/internal/domain"
	"github.com/tbecker/resplan/internal/repository"
	"github.com/tbecker/resplan/internal/schedule"
)

// loadEffortModel builds the sizing model from the stored cost table.
func loadEffortModel(ctx context.Context, costs repository.CostConfigRepo) (schedule.EffortModel, error) {
	stored, err := costs.Costs(ctx)
	if err != nil {
		return schedule.EffortModel{}, fmt.Errorf("loading size costs: %w", err)
	}
	return schedule.NewEffortModel(stored), nil
}

// loadHolidayDays returns the stored non-working days as a date slice.
func loadHolidayDays(ctx context.Context, holidays repository.HolidayRepo) ([]time.Time, error) {
	stored, err := holidays.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading holidays: %w", err)
	}
	return domain.Days(stored), nil
}

// knownDependencies keeps only dependency IDs that name an existing task,
// dropping duplicates while preserving order. The task's own ID is rejected
// earlier by dependency validation, so it is not special-cased here.
func knownDependencies(deps []string, all []*domain.Task) []string {
	if len(deps) == 0 {
		return nil
	}
	exists := make(map[string]bool, len(all))
	for _, t := range all {
		exists[t.ID] = true
	}
	seen := make(map[string]bool, len(deps))
	var kept []string
	for _, dep := range deps {
		if exists[dep] && !seen[dep] {
			seen[dep] = true
			kept = append(kept, dep)
		}
	}
	return kept
}

func taskNames(tasks []*domain.Task) []string {
	names := make([]string, len(tasks))
	for i, t := range tasks {
		names[i] = t.Name
	}
	return names
}

func normalizedName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", &ValidationError{Code: ErrCodeEmptyName, Message: "name must not be empty"}
	}
	return trimmed, nil
}
