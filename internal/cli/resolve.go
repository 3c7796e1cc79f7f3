package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/tbecker/resplan/internal/domain"
)

func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks, err := app.Tasks.List(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact ID match
	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}

	// 2. Exact name match (case-insensitive)
	var nameMatches []string
	for _, t := range tasks {
		if strings.EqualFold(t.Name, input) {
			nameMatches = append(nameMatches, t.ID)
		}
	}
	if len(nameMatches) == 1 {
		return nameMatches[0], nil
	}
	if len(nameMatches) > 1 {
		return "", fmt.Errorf("task name %q is ambiguous (%d matches)", input, len(nameMatches))
	}

	// 3. ID prefix match
	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func resolveResourceID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("resource ID is required")
	}

	resources, err := app.Resources.List(ctx)
	if err != nil {
		return "", err
	}

	for _, r := range resources {
		if r.ID == input {
			return r.ID, nil
		}
	}

	var nameMatches []string
	for _, r := range resources {
		if strings.EqualFold(r.Name, input) {
			nameMatches = append(nameMatches, r.ID)
		}
	}
	if len(nameMatches) == 1 {
		return nameMatches[0], nil
	}
	if len(nameMatches) > 1 {
		return "", fmt.Errorf("resource name %q is ambiguous (%d matches)", input, len(nameMatches))
	}

	var matches []string
	for _, r := range resources {
		if strings.HasPrefix(r.ID, input) {
			matches = append(matches, r.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("resource not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("resource ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveDependencyList resolves each comma-separated entry to a task ID.
func resolveDependencyList(ctx context.Context, app *App, spec string) ([]string, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	var ids []string
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := resolveTaskID(ctx, app, part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseSizeFlag(s string) (domain.Size, error) {
	if s == "" {
		return domain.SizeM, nil
	}
	return domain.ParseSize(strings.ToUpper(s))
}
