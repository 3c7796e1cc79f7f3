package schedule

import (
	"errors"
	"fmt"

	"github.com/tbecker/resplan/internal/domain"
)

// ErrSelfDependency marks a dependency set that contains the task itself.
var ErrSelfDependency = errors.New("task cannot depend on itself")

// ValidateDependencies checks a proposed dependency set for taskID against the
// rest of the task collection. It rejects a direct self-dependency and any
// edit that would make the dependency relation cyclic. The returned error is
// a validation message for the caller, not a system failure.
func ValidateDependencies(taskID string, depIDs []string, all []*domain.Task) error {
	for _, dep := range depIDs {
		if dep == taskID {
			return ErrSelfDependency
		}
	}

	// Build the dependency graph as it would look after the edit: every
	// task's current edges, with taskID's set replaced by depIDs.
	graph := make(map[string][]string, len(all)+1)
	for _, task := range all {
		if task.ID == taskID {
			continue
		}
		graph[task.ID] = append(graph[task.ID], task.Dependencies...)
	}
	graph[taskID] = append([]string(nil), depIDs...)

	if cycle := findCycle(graph); len(cycle) > 0 {
		return fmt.Errorf("dependency would create a cycle involving %q and %q", cycle[0], cycle[1])
	}
	return nil
}

// findCycle runs DFS with white/gray/black coloring over the dependency graph
// and returns the first back edge found as a two-element slice, or nil.
func findCycle(graph map[string][]string) []string {
	const (
		white = 0 // unvisited
		gray  = 1 // in current path
		black = 2 // fully processed
	)

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
