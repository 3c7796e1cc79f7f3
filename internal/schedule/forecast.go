package schedule

import (
	"math"
	"sort"
	"time"

	"github.com/tbecker/resplan/internal/domain"
)

// ForecastBucket is one calendar week's aggregated effort across all tasks
// and the headcount needed to absorb it at the reference weekly capacity.
type ForecastBucket struct {
	WeekStart         time.Time
	TotalEffort       int
	RequiredResources int
}

// Forecast buckets total effort into calendar weeks. Each task's canonical
// hours are spread evenly over the calendar days from start to due date
// (a task without a due date is a single-day task); each non-weekend day's
// share is attributed to the Monday-aligned week it falls in. Buckets are
// returned in calendar order.
func Forecast(tasks []*domain.Task) []ForecastBucket {
	weekHours := make(map[time.Time]float64)

	for _, task := range tasks {
		hours := task.Size.Hours()
		start := DateOnly(task.StartDate)
		end := DateOnly(task.EndDate())

		duration := daysBetween(start, end)
		if duration < 1 {
			duration = 1
		}
		hoursPerDay := float64(hours) / float64(duration)

		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			if IsWeekend(day) {
				continue
			}
			weekHours[WeekStart(day)] += hoursPerDay
		}
	}

	buckets := make([]ForecastBucket, 0, len(weekHours))
	for week, hours := range weekHours {
		buckets = append(buckets, ForecastBucket{
			WeekStart:         week,
			TotalEffort:       int(math.Round(hours)),
			RequiredResources: int(math.Ceil(hours / ReferenceWeeklyHours)),
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].WeekStart.Before(buckets[j].WeekStart)
	})
	return buckets
}
