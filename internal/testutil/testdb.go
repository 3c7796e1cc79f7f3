package testutil

import (
	"database/sql"
	"testing"

	"github.com/tbecker/resplan/internal/db"
)

// NewTestDB opens a fully migrated in-memory database for one test. Each test
// gets its own handle; migrations seed the size-cost and holiday tables, and
// tests mutate those rows freely.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		if err := database.Close(); err != nil {
			t.Errorf("closing test database: %v", err)
		}
	})
	return database
}

// NewTestUoW wraps a test database in a transactional unit of work.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
