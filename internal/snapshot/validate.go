package snapshot

import (
	"fmt"
	"time"

	"github.com/tbecker/resplan/internal/domain"
)

// Validate checks the snapshot for errors before conversion.
// Returns a slice of all validation errors found.
func Validate(snap *Snapshot) []error {
	var errs []error

	if snap.Version != 0 && snap.Version > CurrentVersion {
		errs = append(errs, fmt.Errorf("unsupported snapshot version %d", snap.Version))
	}

	resourceRefs := make(map[string]bool)
	errs = append(errs, validateResources(snap.Resources, resourceRefs)...)

	taskRefs := make(map[string]bool)
	errs = append(errs, validateTasks(snap.Tasks, taskRefs, resourceRefs)...)

	errs = append(errs, validateHolidays(snap.Holidays)...)
	errs = append(errs, validateSizeCosts(snap.SizeCosts)...)

	if cycle := findRefCycle(snap.Tasks); len(cycle) > 0 {
		errs = append(errs, fmt.Errorf("tasks %q and %q form a dependency cycle", cycle[0], cycle[1]))
	}

	return errs
}

func validateResources(resources []ResourceRecord, refs map[string]bool) []error {
	var errs []error
	for i, r := range resources {
		if r.Ref == "" {
			errs = append(errs, fmt.Errorf("resources[%d].ref is required", i))
		} else if refs[r.Ref] {
			errs = append(errs, fmt.Errorf("resources[%d].ref %q is duplicated", i, r.Ref))
		} else {
			refs[r.Ref] = true
		}
		if r.Name == "" {
			errs = append(errs, fmt.Errorf("resources[%d].name is required", i))
		}
		if r.Capacity != nil && *r.Capacity <= 0 {
			errs = append(errs, fmt.Errorf("resources[%d].capacity must be positive", i))
		}
	}
	return errs
}

func validateTasks(tasks []TaskRecord, refs, resourceRefs map[string]bool) []error {
	var errs []error
	for i, t := range tasks {
		if t.Ref == "" {
			errs = append(errs, fmt.Errorf("tasks[%d].ref is required", i))
		} else if refs[t.Ref] {
			errs = append(errs, fmt.Errorf("tasks[%d].ref %q is duplicated", i, t.Ref))
		} else {
			refs[t.Ref] = true
		}
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("tasks[%d].name is required", i))
		}
		if t.Size != "" {
			if _, err := domain.ParseSize(t.Size); err != nil {
				errs = append(errs, fmt.Errorf("tasks[%d].size: %v", i, err))
			}
		}
		if t.StartDate == "" {
			errs = append(errs, fmt.Errorf("tasks[%d].start_date is required", i))
		} else if _, err := time.Parse("2006-01-02", t.StartDate); err != nil {
			errs = append(errs, fmt.Errorf("tasks[%d].start_date: invalid date %q (expected YYYY-MM-DD)", i, t.StartDate))
		}
		if t.DueDate != nil {
			if _, err := time.Parse("2006-01-02", *t.DueDate); err != nil {
				errs = append(errs, fmt.Errorf("tasks[%d].due_date: invalid date %q (expected YYYY-MM-DD)", i, *t.DueDate))
			}
		}
		if t.Hours != nil && *t.Hours < 0 {
			errs = append(errs, fmt.Errorf("tasks[%d].hours must not be negative", i))
		}
		if t.Cost != nil && *t.Cost < 0 {
			errs = append(errs, fmt.Errorf("tasks[%d].cost must not be negative", i))
		}
		for _, dep := range t.Dependencies {
			if dep == t.Ref {
				errs = append(errs, fmt.Errorf("tasks[%d] depends on itself", i))
			}
		}
		if t.ResourceRef != nil && !resourceRefs[*t.ResourceRef] {
			errs = append(errs, fmt.Errorf("tasks[%d].resource_ref %q not found", i, *t.ResourceRef))
		}
	}
	return errs
}

func validateHolidays(holidays []HolidayRecord) []error {
	var errs []error
	for i, h := range holidays {
		if _, err := time.Parse("2006-01-02", h.Day); err != nil {
			errs = append(errs, fmt.Errorf("holidays[%d].day: invalid date %q (expected YYYY-MM-DD)", i, h.Day))
		}
		if h.Name == "" {
			errs = append(errs, fmt.Errorf("holidays[%d].name is required", i))
		}
	}
	return errs
}

func validateSizeCosts(costs map[string]float64) []error {
	var errs []error
	for size, cost := range costs {
		if _, err := domain.ParseSize(size); err != nil {
			errs = append(errs, fmt.Errorf("size_costs: %v", err))
		}
		if cost < 0 {
			errs = append(errs, fmt.Errorf("size_costs[%s] must not be negative", size))
		}
	}
	return errs
}

// findRefCycle runs DFS with white/gray/black coloring over the task refs and
// returns the first back edge found as a two-element slice, or nil. Unknown
// dependency refs have no outgoing edges and cannot close a cycle.
func findRefCycle(tasks []TaskRecord) []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	graph := make(map[string][]string, len(tasks))
	for _, t := range tasks {
		graph[t.Ref] = t.Dependencies
	}

	color := make(map[string]int, len(graph))
	var cycle []string

	var visit func(node string) bool
	visit = func(node string) bool {
		color[node] = gray
		for _, next := range graph[node] {
			if color[next] == gray {
				cycle = []string{node, next}
				return true
			}
			if color[next] == white && visit(next) {
				return true
			}
		}
		color[node] = black
		return false
	}

	for node := range graph {
		if color[node] == white {
			if visit(node) {
				return cycle
			}
		}
	}
	return nil
}
