package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbecker/resplan/internal/domain"
	"github.com/tbecker/resplan/internal/snapshot"
	"github.com/tbecker/resplan/internal/testutil"
)

func validSnapshot() *snapshot.Snapshot {
	capacity := 40.0
	return &snapshot.Snapshot{
		Version: 1,
		Resources: []snapshot.ResourceRecord{
			{Ref: "r1", Name: "Avery", Capacity: &capacity},
		},
		Tasks: []snapshot.TaskRecord{
			{Ref: "t1", Name: "Design", Size: "L", StartDate: "2025-02-03"},
			{Ref: "t2", Name: "Build", Size: "XL", StartDate: "2025-02-10", Dependencies: []string{"t1"}},
		},
		Holidays: []snapshot.HolidayRecord{
			{Day: "2025-12-24", Name: "Christmas Eve"},
		},
		SizeCosts: map[string]float64{"M": 450},
	}
}

func newSnapshotService(r testRepos) SnapshotService {
	return NewSnapshotService(testutil.NewTestUoW(r.db), r.tasks, r.resources, r.costs, r.holidays)
}

func TestSnapshotService_Import(t *testing.T) {
	repos := setupRepos(t)
	svc := newSnapshotService(repos)
	ctx := context.Background()

	result, err := svc.Import(ctx, validSnapshot())
	require.NoError(t, err)
	assert.Equal(t, 2, result.TaskCount)
	assert.Equal(t, 1, result.ResourceCount)
	assert.Equal(t, 1, result.HolidayCount)

	tasks, err := repos.tasks.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Design", tasks[0].Name)
	assert.Equal(t, []string{tasks[0].ID}, tasks[1].Dependencies)

	costs, err := repos.costs.Costs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 450.0, costs[domain.SizeM])
}

func TestSnapshotService_Import_ValidationFailure(t *testing.T) {
	repos := setupRepos(t)
	svc := newSnapshotService(repos)

	snap := validSnapshot()
	snap.Tasks[0].Size = "XXL"
	snap.Tasks[1].Name = ""

	_, err := svc.Import(context.Background(), snap)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed (2 errors)")

	tasks, listErr := repos.tasks.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, tasks, "nothing should be written on validation failure")
}

func TestSnapshotService_Import_RollbackOnWriteFailure(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	// ExecContext calls within the transaction: #1 resource, #2 and #3 task
	// inserts. Failing on #3 leaves earlier writes pending in the same tx.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     repos.db,
		FailOn: 3,
		Err:    fmt.Errorf("injected task create failure"),
	}
	svc := NewSnapshotService(failUoW, repos.tasks, repos.resources, repos.costs, repos.holidays)

	_, err := svc.Import(ctx, validSnapshot())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected task create failure")

	tasks, listErr := repos.tasks.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, tasks, "transaction should have rolled back")

	resources, listErr := repos.resources.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, resources, "transaction should have rolled back")
}

func TestSnapshotService_ExportImportRoundTrip(t *testing.T) {
	source := setupRepos(t)
	sourceSvc := newSnapshotService(source)
	taskSvc := newTaskService(source)
	resourceSvc := NewResourceService(source.resources, source.tasks)
	ctx := context.Background()

	res := &domain.Resource{Name: "Avery", Capacity: 20}
	require.NoError(t, resourceSvc.Create(ctx, res))

	a := &domain.Task{Name: "Design", Size: domain.SizeL, ResourceID: &res.ID}
	require.NoError(t, taskSvc.Create(ctx, a))
	b := &domain.Task{Name: "Build", Size: domain.SizeXL, Dependencies: []string{a.ID}}
	require.NoError(t, taskSvc.Create(ctx, b))

	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, sourceSvc.ExportToFile(ctx, path))

	target := setupRepos(t)
	targetSvc := newSnapshotService(target)

	result, err := targetSvc.ImportFromFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.TaskCount)
	assert.Equal(t, 1, result.ResourceCount)

	tasks, err := target.tasks.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	byName := map[string]*domain.Task{tasks[0].Name: tasks[0], tasks[1].Name: tasks[1]}
	require.Contains(t, byName, "Design")
	require.Contains(t, byName, "Build")
	assert.Equal(t, []string{byName["Design"].ID}, byName["Build"].Dependencies)
	require.NotNil(t, byName["Design"].ResourceID)

	resources, err := target.resources.List(ctx)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, 20.0, resources[0].Capacity)
	assert.Equal(t, resources[0].ID, *byName["Design"].ResourceID)
}
