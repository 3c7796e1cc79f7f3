package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tbecker/resplan/internal/domain"
	"github.com/tbecker/resplan/internal/schedule"
)

func TestForecastTable_Empty(t *testing.T) {
	out := ForecastTable(nil)
	assert.Contains(t, out, "No scheduled effort")
}

func TestForecastTable_RendersBuckets(t *testing.T) {
	buckets := []schedule.ForecastBucket{
		{WeekStart: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), TotalEffort: 40, RequiredResources: 1},
		{WeekStart: time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), TotalEffort: 96, RequiredResources: 3},
	}

	out := ForecastTable(buckets)
	assert.Contains(t, out, "2025-03-10")
	assert.Contains(t, out, "40h")
	assert.Contains(t, out, "3")
}

func TestCapacityTable_CoversAllSizes(t *testing.T) {
	capacity := map[domain.Size]int{
		domain.SizeXS: 40,
		domain.SizeXL: 5,
	}

	out := CapacityTable(capacity)
	assert.Contains(t, out, "XS")
	assert.Contains(t, out, "XL")
	assert.Contains(t, out, "40")
	// Sizes with no entry render a zero row.
	assert.Contains(t, out, "0")
}

func TestAvailabilityReport_OrderedByName(t *testing.T) {
	resources := []*domain.Resource{
		{ID: "r-zoe", Name: "Zoe"},
		{ID: "r-avery", Name: "Avery"},
	}
	report := map[string]schedule.ResourceAvailability{
		"r-zoe":   {TotalCapacity: 128, AllocatedHours: 120, AvailableHours: 8, UtilizationPct: 94},
		"r-avery": {TotalCapacity: 128, AllocatedHours: 16, AvailableHours: 112, UtilizationPct: 13},
	}

	out := AvailabilityReport(report, resources)
	avery := strings.Index(out, "AVERY")
	zoe := strings.Index(out, "ZOE")
	assert.True(t, avery >= 0 && zoe >= 0)
	assert.Less(t, avery, zoe)
}

func TestTaskTable_Empty(t *testing.T) {
	out := TaskTable(nil, nil)
	assert.Contains(t, out, "No tasks yet")
}

func TestTaskTable_ShowsResourceName(t *testing.T) {
	resID := "res-1"
	tasks := []*domain.Task{
		{
			ID:         "11111111-aaaa",
			Name:       "Design review",
			Owner:      "dana",
			Size:       domain.SizeL,
			StartDate:  time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
			Hours:      24,
			Cost:       600,
			ResourceID: &resID,
		},
	}

	out := TaskTable(tasks, map[string]string{resID: "Avery"})
	assert.Contains(t, out, "Design review")
	assert.Contains(t, out, "Avery")
	assert.Contains(t, out, "$600")
	assert.NotContains(t, out, "res-1")
}
