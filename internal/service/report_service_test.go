package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbecker/resplan/internal/domain"
	"github.com/tbecker/resplan/internal/testutil"
)

func TestReportService_Forecast(t *testing.T) {
	repos := setupRepos(t)
	svc := NewReportService(repos.tasks, repos.resources, repos.holidays)
	ctx := context.Background()

	due := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	task := testutil.NewTestTask("sprint work",
		testutil.WithSize(domain.SizeXL),
		testutil.WithStartDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)),
		testutil.WithDueDate(due),
	)
	require.NoError(t, repos.tasks.Create(ctx, task))

	buckets, err := svc.Forecast(ctx)
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), buckets[0].WeekStart)
	// 32 hours over a four-day span spread across five working days.
	assert.Equal(t, 40, buckets[0].TotalEffort)
	assert.Equal(t, 1, buckets[0].RequiredResources)
}

func TestReportService_TaskCapacity(t *testing.T) {
	repos := setupRepos(t)
	svc := NewReportService(repos.tasks, repos.resources, repos.holidays)
	ctx := context.Background()

	require.NoError(t, repos.tasks.Create(ctx, testutil.NewTestTask("a", testutil.WithSize(domain.SizeXL))))

	capacity, err := svc.TaskCapacity(ctx)
	require.NoError(t, err)
	// 160 - 32 = 128 hours remaining over four weeks.
	assert.Equal(t, 32, capacity[domain.SizeXS])
	assert.Equal(t, 4, capacity[domain.SizeXL])
}

func TestReportService_Availability(t *testing.T) {
	repos := setupRepos(t)
	svc := NewReportService(repos.tasks, repos.resources, repos.holidays)
	ctx := context.Background()

	res := testutil.NewTestResource("Avery")
	require.NoError(t, repos.resources.Create(ctx, res))

	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	task := testutil.NewTestTask("assigned",
		testutil.WithSize(domain.SizeXL),
		testutil.WithStartDate(now),
		testutil.WithDueDate(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)),
		testutil.WithResource(res.ID),
	)
	require.NoError(t, repos.tasks.Create(ctx, task))

	report, err := svc.Availability(ctx, now)
	require.NoError(t, err)
	require.Contains(t, report, res.ID)

	avail := report[res.ID]
	assert.Equal(t, 128, avail.TotalCapacity)
	assert.Equal(t, 32, avail.AllocatedHours)
	assert.Equal(t, 96, avail.AvailableHours)
	assert.Equal(t, 25, avail.UtilizationPct)
	assert.Equal(t, 1, avail.TaskCount)
	require.Len(t, avail.WeeklyBreakdown, 4)
	assert.Equal(t, 80, avail.WeeklyBreakdown[0].Utilization)
}

func TestReportService_Availability_EmptyPlan(t *testing.T) {
	repos := setupRepos(t)
	svc := NewReportService(repos.tasks, repos.resources, repos.holidays)

	report, err := svc.Availability(context.Background(), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, report)
}
