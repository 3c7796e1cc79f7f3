package cli

import (
	"github.com/spf13/cobra"

	"github.com/tbecker/resplan/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks     service.TaskService
	Resources service.ResourceService
	Reports   service.ReportService
	Costs     service.CostConfigService
	Holidays  service.HolidayService
	Snapshots service.SnapshotService

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// are only offered when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "resplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "resplan",
		Short: "Task sizing, scheduling, and resource planning",
	}

	root.AddCommand(
		newTaskCmd(app),
		newResourceCmd(app),
		newForecastCmd(app),
		newCapacityCmd(app),
		newAvailabilityCmd(app),
		newCostCmd(app),
		newHolidayCmd(app),
		newSnapshotCmd(app),
	)

	return root
}
