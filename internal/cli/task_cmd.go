package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tbecker/resplan/internal/cli/formatter"
	"github.com/tbecker/resplan/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskInspectCmd(app),
		newTaskUpdateCmd(app),
		newTaskRemoveCmd(app),
		newTaskAssignCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var name, owner, sizeStr, start, due, deps, resource string
	var hours int
	var cost float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// With no flags on a terminal, fall back to the guided form.
			if name == "" && app.IsInteractive != nil && app.IsInteractive() {
				return runTaskForm(ctx, app)
			}

			size, err := parseSizeFlag(sizeStr)
			if err != nil {
				return err
			}

			task := &domain.Task{
				Name:  name,
				Owner: owner,
				Size:  size,
				Hours: hours,
				Cost:  cost,
			}

			if start != "" {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				task.StartDate = startDate
			}
			if due != "" {
				dueDate, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				task.DueDate = &dueDate
			}
			if deps != "" {
				ids, err := resolveDependencyList(ctx, app, deps)
				if err != nil {
					return err
				}
				task.Dependencies = ids
			}
			if resource != "" {
				id, err := resolveResourceID(ctx, app, resource)
				if err != nil {
					return err
				}
				task.ResourceID = &id
			}

			if err := app.Tasks.Create(ctx, task); err != nil {
				return err
			}

			printTaskCreated(task)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&owner, "owner", "", "Owner (defaults to Unassigned)")
	cmd.Flags().StringVar(&sizeStr, "size", "", "T-shirt size: XS, S, M, L, XL (defaults to M)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD, derived from effort when omitted)")
	cmd.Flags().StringVar(&deps, "after", "", "Comma-separated tasks this one depends on")
	cmd.Flags().StringVar(&resource, "resource", "", "Resource to assign")
	cmd.Flags().IntVar(&hours, "hours", 0, "Override effort hours")
	cmd.Flags().Float64Var(&cost, "cost", 0, "Override cost")

	return cmd
}

func printTaskCreated(task *domain.Task) {
	due := "none"
	if task.DueDate != nil {
		due = task.DueDate.Format("2006-01-02")
	}
	fmt.Printf("Created task %s [%s, %dh, due %s]\n", task.Name, task.Size, task.Hours, due)
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tasks, err := app.Tasks.List(ctx)
			if err != nil {
				return err
			}
			resources, err := app.Resources.List(ctx)
			if err != nil {
				return err
			}
			names := make(map[string]string, len(resources))
			for _, r := range resources {
				names[r.ID] = r.Name
			}
			fmt.Println(formatter.TaskTable(tasks, names))
			return nil
		},
	}
}

func newTaskInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <task>",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}

			resourceName := ""
			if task.ResourceID != nil {
				if r, err := app.Resources.GetByID(ctx, *task.ResourceID); err == nil {
					resourceName = r.Name
				}
			}

			var depNames []string
			for _, depID := range task.Dependencies {
				if dep, err := app.Tasks.GetByID(ctx, depID); err == nil {
					depNames = append(depNames, dep.Name)
				}
			}

			fmt.Println(formatter.TaskDetail(task, resourceName, depNames))
			return nil
		},
	}
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var name, owner, sizeStr, start, due, deps string
	var hours int
	var cost float64

	cmd := &cobra.Command{
		Use:   "update <task>",
		Short: "Update task fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				task.Name = name
			}
			if cmd.Flags().Changed("owner") {
				task.Owner = owner
			}
			if cmd.Flags().Changed("size") {
				size, err := parseSizeFlag(sizeStr)
				if err != nil {
					return err
				}
				task.Size = size
				// A size change re-derives effort, cost, and due date.
				task.Hours = 0
				task.Cost = 0
				task.DueDate = nil
			}
			if cmd.Flags().Changed("start") {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				task.StartDate = startDate
			}
			if cmd.Flags().Changed("due") {
				if due == "" {
					task.DueDate = nil
				} else {
					dueDate, err := time.Parse("2006-01-02", due)
					if err != nil {
						return fmt.Errorf("invalid due date %q: %w", due, err)
					}
					task.DueDate = &dueDate
				}
			}
			if cmd.Flags().Changed("after") {
				ids, err := resolveDependencyList(ctx, app, deps)
				if err != nil {
					return err
				}
				task.Dependencies = ids
			}
			if cmd.Flags().Changed("hours") {
				task.Hours = hours
			}
			if cmd.Flags().Changed("cost") {
				task.Cost = cost
			}

			if err := app.Tasks.Update(ctx, task); err != nil {
				return err
			}
			fmt.Printf("Updated task %s\n", task.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&owner, "owner", "", "Owner")
	cmd.Flags().StringVar(&sizeStr, "size", "", "T-shirt size: XS, S, M, L, XL")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD, empty to re-derive)")
	cmd.Flags().StringVar(&deps, "after", "", "Comma-separated tasks this one depends on")
	cmd.Flags().IntVar(&hours, "hours", 0, "Override effort hours")
	cmd.Flags().Float64Var(&cost, "cost", 0, "Override cost")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <task>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, id, force); err != nil {
				return err
			}
			fmt.Println("Task removed.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete even if other tasks depend on it")
	return cmd
}

func newTaskAssignCmd(app *App) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "assign <task> [resource]",
		Short: "Assign a task to a resource",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if clear || len(args) == 1 {
				if err := app.Tasks.Assign(ctx, taskID, nil); err != nil {
					return err
				}
				fmt.Println("Task unassigned.")
				return nil
			}

			resourceID, err := resolveResourceID(ctx, app, args[1])
			if err != nil {
				return err
			}
			if err := app.Tasks.Assign(ctx, taskID, &resourceID); err != nil {
				return err
			}
			fmt.Println("Task assigned.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the current assignment")
	return cmd
}
