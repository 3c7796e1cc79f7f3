package service

import (
	"database/sql"
	"testing"

	"github.com/tbecker/resplan/internal/repository"
	"github.com/tbecker/resplan/internal/testutil"
)

type testRepos struct {
	db        *sql.DB
	tasks     *repository.SQLiteTaskRepo
	resources *repository.SQLiteResourceRepo
	costs     *repository.SQLiteCostConfigRepo
	holidays  *repository.SQLiteHolidayRepo
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		db:        database,
		tasks:     repository.NewSQLiteTaskRepo(database),
		resources: repository.NewSQLiteResourceRepo(database),
		costs:     repository.NewSQLiteCostConfigRepo(database),
		holidays:  repository.NewSQLiteHolidayRepo(database),
	}
}

func newTaskService(r testRepos) TaskService {
	return NewTaskService(r.tasks, r.resources, r.costs, r.holidays)
}
