package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tbecker/resplan/internal/domain"
	"github.com/tbecker/resplan/internal/schedule"
)

// ForecastTable renders weekly effort buckets with headcount requirements.
func ForecastTable(buckets []schedule.ForecastBucket) string {
	if len(buckets) == 0 {
		return Dim("No scheduled effort to forecast.")
	}

	headers := []string{"WEEK OF", "EFFORT", "RESOURCES NEEDED"}
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{
			ShortDate(b.WeekStart),
			HoursLabel(b.TotalEffort),
			fmt.Sprintf("%d", b.RequiredResources),
		})
	}
	return RenderTable(headers, rows)
}

// CapacityTable renders how many tasks of each size still fit in the
// planning window.
func CapacityTable(capacity map[domain.Size]int) string {
	headers := []string{"SIZE", "HOURS", "TASKS THAT FIT"}
	rows := make([][]string, 0, len(domain.Sizes))
	for _, size := range domain.Sizes {
		rows = append(rows, []string{
			SizeBadge(size),
			HoursLabel(size.Hours()),
			fmt.Sprintf("%d", capacity[size]),
		})
	}
	return RenderTable(headers, rows)
}

// AvailabilityReport renders per-resource availability with a weekly
// utilization breakdown. Resources print in name order.
func AvailabilityReport(report map[string]schedule.ResourceAvailability, resources []*domain.Resource) string {
	if len(report) == 0 {
		return Dim("No resources to report on.")
	}

	ordered := make([]*domain.Resource, 0, len(resources))
	for _, r := range resources {
		if _, ok := report[r.ID]; ok {
			ordered = append(ordered, r)
		}
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })

	var b strings.Builder
	for i, r := range ordered {
		if i > 0 {
			b.WriteString("\n")
		}
		avail := report[r.ID]
		b.WriteString(Header(r.Name))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s  allocated %s of %s, %s free, %d task(s)\n",
			UtilizationBadge(avail.UtilizationPct),
			HoursLabel(avail.AllocatedHours),
			HoursLabel(avail.TotalCapacity),
			HoursLabel(avail.AvailableHours),
			avail.TaskCount,
		)

		headers := []string{"WEEK", "CAPACITY", "ALLOCATED", "FREE", "UTILIZATION"}
		rows := make([][]string, 0, len(avail.WeeklyBreakdown))
		for _, week := range avail.WeeklyBreakdown {
			rows = append(rows, []string{
				week.Label,
				HoursLabel(week.Capacity),
				fmt.Sprintf("%.1fh", week.Allocated),
				fmt.Sprintf("%.1fh", week.Available),
				UtilizationBadge(week.Utilization),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}
	return b.String()
}

// CostTable renders the per-size cost configuration.
func CostTable(costs map[domain.Size]float64) string {
	headers := []string{"SIZE", "HOURS", "COST"}
	rows := make([][]string, 0, len(domain.Sizes))
	for _, size := range domain.Sizes {
		rows = append(rows, []string{
			SizeBadge(size),
			HoursLabel(size.Hours()),
			Money(costs[size]),
		})
	}
	return RenderTable(headers, rows)
}

// HolidayTable renders the configured non-working days.
func HolidayTable(holidays []domain.Holiday) string {
	if len(holidays) == 0 {
		return Dim("No holidays configured.")
	}

	headers := []string{"DATE", "NAME"}
	rows := make([][]string, 0, len(holidays))
	for _, h := range holidays {
		rows = append(rows, []string{ShortDate(h.Day), h.Name})
	}
	return RenderTable(headers, rows)
}
