package schedule

import "github.com/tbecker/resplan/internal/domain"

// capacityWeeks is the look-ahead window for the task-capacity estimate.
const capacityWeeks = 4

// TaskCapacity estimates how many more tasks of each size fit the remaining
// reference capacity: one resource at 40 hours per week over a 4-week window,
// minus the canonical hours of every existing task.
func TaskCapacity(tasks []*domain.Task) map[domain.Size]int {
	allocated := 0
	for _, task := range tasks {
		allocated += task.Size.Hours()
	}

	remaining := ReferenceWeeklyHours*capacityWeeks - allocated
	if remaining < 0 {
		remaining = 0
	}

	capacity := make(map[domain.Size]int, len(domain.Sizes))
	for _, size := range domain.Sizes {
		capacity[size] = remaining / size.Hours()
	}
	return capacity
}
