package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tbecker/resplan/internal/cli/formatter"
)

func newForecastCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "forecast",
		Short: "Weekly effort forecast across all tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			buckets, err := app.Reports.Forecast(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.Header("Effort Forecast"))
			fmt.Println(formatter.ForecastTable(buckets))
			return nil
		},
	}
}

func newCapacityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "capacity",
		Short: "How many tasks of each size still fit in the planning window",
		RunE: func(cmd *cobra.Command, args []string) error {
			capacity, err := app.Reports.TaskCapacity(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.Header("Remaining Capacity"))
			fmt.Println(formatter.CapacityTable(capacity))
			return nil
		},
	}
}

func newAvailabilityCmd(app *App) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Per-resource allocation over the next three weeks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			now := time.Now().UTC()
			if asOf != "" {
				parsed, err := time.Parse("2006-01-02", asOf)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", asOf, err)
				}
				now = parsed
			}

			report, err := app.Reports.Availability(ctx, now)
			if err != nil {
				return err
			}
			resources, err := app.Resources.List(ctx)
			if err != nil {
				return err
			}
			fmt.Println(formatter.AvailabilityReport(report, resources))
			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "Report date (YYYY-MM-DD, defaults to today)")
	return cmd
}
