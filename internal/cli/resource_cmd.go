package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbecker/resplan/internal/cli/formatter"
	"github.com/tbecker/resplan/internal/domain"
)

func newResourceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Manage resources",
	}

	cmd.AddCommand(
		newResourceAddCmd(app),
		newResourceListCmd(app),
		newResourceUpdateCmd(app),
		newResourceRemoveCmd(app),
	)

	return cmd
}

func newResourceAddCmd(app *App) *cobra.Command {
	var name string
	var capacity float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new resource",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := &domain.Resource{Name: name, Capacity: capacity}
			if err := app.Resources.Create(context.Background(), res); err != nil {
				return err
			}
			fmt.Printf("Created resource %s (%gh/week)\n", res.Name, res.Capacity)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Resource name")
	cmd.Flags().Float64Var(&capacity, "capacity", 40, "Capacity in hours per week")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newResourceListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			resources, err := app.Resources.List(ctx)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.List(ctx)
			if err != nil {
				return err
			}
			counts := make(map[string]int)
			for _, t := range tasks {
				if t.ResourceID != nil {
					counts[*t.ResourceID]++
				}
			}
			fmt.Println(formatter.ResourceTable(resources, counts))
			return nil
		},
	}
}

func newResourceUpdateCmd(app *App) *cobra.Command {
	var name string
	var capacity float64

	cmd := &cobra.Command{
		Use:   "update <resource>",
		Short: "Update resource fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveResourceID(ctx, app, args[0])
			if err != nil {
				return err
			}
			res, err := app.Resources.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				res.Name = name
			}
			if cmd.Flags().Changed("capacity") {
				res.Capacity = capacity
			}

			if err := app.Resources.Update(ctx, res); err != nil {
				return err
			}
			fmt.Printf("Updated resource %s\n", res.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Resource name")
	cmd.Flags().Float64Var(&capacity, "capacity", 40, "Capacity in hours per week")

	return cmd
}

func newResourceRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <resource>",
		Short: "Delete a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveResourceID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Resources.Delete(ctx, id, force); err != nil {
				return err
			}
			fmt.Println("Resource removed.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete even if tasks are assigned (they become unassigned)")
	return cmd
}
