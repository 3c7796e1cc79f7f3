package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tbecker/resplan/internal/cli/formatter"
	"github.com/tbecker/resplan/internal/domain"
)

func newCostCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Manage per-size costs",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Show the cost for each size",
			RunE: func(cmd *cobra.Command, args []string) error {
				costs, err := app.Costs.Costs(context.Background())
				if err != nil {
					return err
				}
				fmt.Println(formatter.CostTable(costs))
				return nil
			},
		},
		newCostSetCmd(app),
	)

	return cmd
}

func newCostSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <size> <cost>",
		Short: "Set the cost for a size",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := domain.ParseSize(strings.ToUpper(args[0]))
			if err != nil {
				return err
			}
			cost, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid cost %q: %w", args[1], err)
			}
			if err := app.Costs.SetCost(context.Background(), size, cost); err != nil {
				return err
			}
			fmt.Printf("Set %s cost to %s\n", size, formatter.Money(cost))
			return nil
		},
	}
}

func newHolidayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holiday",
		Short: "Manage non-working days",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List configured holidays",
			RunE: func(cmd *cobra.Command, args []string) error {
				holidays, err := app.Holidays.List(context.Background())
				if err != nil {
					return err
				}
				fmt.Println(formatter.HolidayTable(holidays))
				return nil
			},
		},
		newHolidayAddCmd(app),
		newHolidayRemoveCmd(app),
	)

	return cmd
}

func newHolidayAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <date> <name>",
		Short: "Add a holiday",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", args[0], err)
			}
			name := strings.Join(args[1:], " ")
			if err := app.Holidays.Add(context.Background(), domain.Holiday{Day: day, Name: name}); err != nil {
				return err
			}
			fmt.Printf("Added holiday %s (%s)\n", name, args[0])
			return nil
		},
	}
}

func newHolidayRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <date>",
		Short: "Remove a holiday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", args[0], err)
			}
			if err := app.Holidays.Remove(context.Background(), day); err != nil {
				return err
			}
			fmt.Println("Holiday removed.")
			return nil
		},
	}
}
