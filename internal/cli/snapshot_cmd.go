package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSnapshotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Export and import the whole plan as JSON",
	}

	cmd.AddCommand(
		newSnapshotExportCmd(app),
		newSnapshotImportCmd(app),
	)

	return cmd
}

func newSnapshotExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the plan to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Snapshots.ExportToFile(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Exported plan to %s\n", args[0])
			return nil
		},
	}
}

func newSnapshotImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Load a plan from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Snapshots.ImportFromFile(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d task(s), %d resource(s), %d holiday(s)\n",
				result.TaskCount, result.ResourceCount, result.HolidayCount)
			return nil
		},
	}
}
