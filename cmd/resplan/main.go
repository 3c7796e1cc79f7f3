package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/tbecker/resplan/internal/cli"
	"github.com/tbecker/resplan/internal/db"
	"github.com/tbecker/resplan/internal/repository"
	"github.com/tbecker/resplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.resplan/resplan.db
	dbPath := os.Getenv("RESPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".resplan", "resplan.db")
	}
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Use-case telemetry goes to stderr when RESPLAN_LOG=1.
	var logWriter io.Writer
	if os.Getenv("RESPLAN_LOG") == "1" {
		logWriter = os.Stderr
	}
	observer := service.NewLogUseCaseObserver(logWriter)

	taskRepo := repository.NewSQLiteTaskRepo(database)
	resourceRepo := repository.NewSQLiteResourceRepo(database)
	costRepo := repository.NewSQLiteCostConfigRepo(database)
	holidayRepo := repository.NewSQLiteHolidayRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Tasks:     service.NewTaskService(taskRepo, resourceRepo, costRepo, holidayRepo, observer),
		Resources: service.NewResourceService(resourceRepo, taskRepo),
		Reports:   service.NewReportService(taskRepo, resourceRepo, holidayRepo, observer),
		Costs:     service.NewCostConfigService(costRepo),
		Holidays:  service.NewHolidayService(holidayRepo),
		Snapshots: service.NewSnapshotService(uow, taskRepo, resourceRepo, costRepo, holidayRepo, observer),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
