package schedule

import (
	"time"

	"github.com/tbecker/resplan/internal/domain"
)

// DueDate projects a due date for a task: ceil(hours/8) working days forward
// from the effective start, skipping weekends and holidays.
//
// The effective start is the task's nominal start unless a dependency finishes
// later: among the tasks in all whose id appears in depIDs, the maximum of
// (due date if set, else start date) overrides the nominal start when it is
// later. Dependency ids not found in all are ignored.
//
// The walk advances one calendar day at a time and counts working days; the
// date of the last counted working day is the result. A size with zero effort
// consumes no working days, so the effective start is returned unchanged.
func DueDate(start time.Time, size domain.Size, holidays []time.Time, all []*domain.Task, depIDs []string) time.Time {
	workingDays := (size.Hours() + HoursPerDay - 1) / HoursPerDay

	effectiveStart := DateOnly(start)
	if latest, ok := latestDependencyEnd(all, depIDs); ok && latest.After(effectiveStart) {
		effectiveStart = latest
	}

	current := effectiveStart
	for counted := 0; counted < workingDays; {
		current = current.AddDate(0, 0, 1)
		if IsWorkingDay(current, holidays) {
			counted++
		}
	}
	return current
}

// latestDependencyEnd finds the maximum end date (due date, else start date)
// among the dependency tasks present in all.
func latestDependencyEnd(all []*domain.Task, depIDs []string) (time.Time, bool) {
	if len(depIDs) == 0 {
		return time.Time{}, false
	}
	wanted := make(map[string]bool, len(depIDs))
	for _, id := range depIDs {
		wanted[id] = true
	}

	var latest time.Time
	found := false
	for _, task := range all {
		if !wanted[task.ID] {
			continue
		}
		end := DateOnly(task.EndDate())
		if !found || end.After(latest) {
			latest = end
			found = true
		}
	}
	return latest, found
}
