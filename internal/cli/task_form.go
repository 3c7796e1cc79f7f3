package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/tbecker/resplan/internal/domain"
)

// runTaskForm walks through task creation interactively. Every field except
// the name can be left blank to accept the service defaults.
func runTaskForm(ctx context.Context, app *App) error {
	var (
		name    string
		owner   string
		sizeStr = string(domain.SizeM)
		start   string
		due     string
		costStr string
	)

	sizeOptions := make([]huh.Option[string], 0, len(domain.Sizes))
	for _, size := range domain.Sizes {
		label := fmt.Sprintf("%-2s  %dh / $%.0f", size, size.Hours(), size.DefaultCost())
		sizeOptions = append(sizeOptions, huh.NewOption(label, string(size)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task name").
				Placeholder("Design review").
				Value(&name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Owner (blank for Unassigned)").
				Value(&owner),
			huh.NewSelect[string]().
				Title("Size").
				Options(sizeOptions...).
				Value(&sizeStr),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Start date (YYYY-MM-DD, blank for today)").
				Placeholder("2025-06-30").
				Value(&start).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Due date (YYYY-MM-DD, blank to derive from effort)").
				Value(&due).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Cost override (blank for size default)").
				Value(&costStr).
				Validate(validateOptionalNonNegativeNumber),
		),
	).WithTheme(resplanHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	task := &domain.Task{
		Name:  name,
		Owner: owner,
		Size:  domain.Size(sizeStr),
	}
	if start != "" {
		startDate, err := time.Parse("2006-01-02", start)
		if err != nil {
			return fmt.Errorf("invalid start date %q: %w", start, err)
		}
		task.StartDate = startDate
	}
	if due != "" {
		dueDate, err := time.Parse("2006-01-02", due)
		if err != nil {
			return fmt.Errorf("invalid due date %q: %w", due, err)
		}
		task.DueDate = &dueDate
	}
	if costStr != "" {
		cost, err := strconv.ParseFloat(costStr, 64)
		if err != nil {
			return fmt.Errorf("invalid cost %q: %w", costStr, err)
		}
		task.Cost = cost
	}

	if err := app.Tasks.Create(ctx, task); err != nil {
		return err
	}
	printTaskCreated(task)
	return nil
}
