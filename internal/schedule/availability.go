package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/tbecker/resplan/internal/domain"
)

// HorizonDays is the rolling availability window: today through today+21.
const HorizonDays = 21

// WeekAvailability is one week of a resource's availability breakdown.
type WeekAvailability struct {
	Label       string
	Capacity    int
	Allocated   float64
	Available   float64
	Utilization int
}

// ResourceAvailability describes one resource's load over the horizon.
// Capacity is derived from working days at 8 hours each; the resource's own
// declared weekly capacity is not the ceiling here. Utilization is clamped to
// [0, 100]; overallocation stays visible through AllocatedHours.
type ResourceAvailability struct {
	TotalCapacity   int
	AllocatedHours  int
	AvailableHours  int
	UtilizationPct  int
	TaskCount       int
	WeeklyBreakdown []WeekAvailability
}

// Availability computes per-resource allocation over the fixed horizon
// starting at now. Tasks whose resource id matches no known resource are
// ignored, as are tasks whose span does not overlap the horizon. An
// overlapping task contributes its full canonical hours to AllocatedHours,
// and distributes them evenly per day across the working days of the clamped
// overlap into the weekly buckets.
func Availability(tasks []*domain.Task, resources []*domain.Resource, holidays []time.Time, now time.Time) map[string]ResourceAvailability {
	horizonStart := DateOnly(now)
	horizonEnd := horizonStart.AddDate(0, 0, HorizonDays)

	result := make(map[string]ResourceAvailability, len(resources))
	for _, res := range resources {
		result[res.ID] = newHorizonAvailability(horizonStart, horizonEnd, holidays)
	}

	for _, task := range tasks {
		if task.ResourceID == nil {
			continue
		}
		avail, ok := result[*task.ResourceID]
		if !ok {
			// Dangling resource reference: treated as unassigned.
			continue
		}

		taskStart := DateOnly(task.StartDate)
		taskEnd := DateOnly(task.EndDate())
		if taskStart.After(horizonEnd) || taskEnd.Before(horizonStart) {
			continue
		}

		hours := task.Size.Hours()
		avail.AllocatedHours += hours
		avail.TaskCount++

		duration := daysBetween(taskStart, taskEnd) + 1
		if duration < 1 {
			duration = 1
		}
		hoursPerDay := float64(hours) / float64(duration)

		from := maxDate(taskStart, horizonStart)
		to := minDate(taskEnd, horizonEnd)
		for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
			if !IsWorkingDay(day, holidays) {
				continue
			}
			week := daysBetween(horizonStart, day) / 7
			if week >= 0 && week < len(avail.WeeklyBreakdown) {
				avail.WeeklyBreakdown[week].Allocated += hoursPerDay
			}
		}

		result[*task.ResourceID] = avail
	}

	for id, avail := range result {
		avail.AvailableHours = avail.TotalCapacity - avail.AllocatedHours
		if avail.AvailableHours < 0 {
			avail.AvailableHours = 0
		}
		avail.UtilizationPct = utilization(float64(avail.AllocatedHours), float64(avail.TotalCapacity))

		for i, week := range avail.WeeklyBreakdown {
			week.Available = math.Max(0, float64(week.Capacity)-week.Allocated)
			week.Utilization = utilization(week.Allocated, float64(week.Capacity))
			avail.WeeklyBreakdown[i] = week
		}
		result[id] = avail
	}

	return result
}

// newHorizonAvailability walks the horizon once, accumulating working-day
// capacity and closing out a weekly bucket every 7 calendar days or at the
// horizon end.
func newHorizonAvailability(start, end time.Time, holidays []time.Time) ResourceAvailability {
	avail := ResourceAvailability{}

	weekStart := start
	weekCapacity := 0
	weekNumber := 1
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if IsWorkingDay(day, holidays) {
			avail.TotalCapacity += HoursPerDay
			weekCapacity += HoursPerDay
		}
		if daysBetween(weekStart, day) == 6 || day.Equal(end) {
			avail.WeeklyBreakdown = append(avail.WeeklyBreakdown, WeekAvailability{
				Label:     fmt.Sprintf("Week %d", weekNumber),
				Capacity:  weekCapacity,
				Available: float64(weekCapacity),
			})
			weekStart = day.AddDate(0, 0, 1)
			weekCapacity = 0
			weekNumber++
		}
	}

	avail.AvailableHours = avail.TotalCapacity
	return avail
}

func utilization(allocated, capacity float64) int {
	if capacity <= 0 {
		return 0
	}
	pct := int(math.Round(allocated / capacity * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
