package cli

import (
	"context"
	"fmt"

	"github.com/EzequielOmarArraygada/backoffice/internal/cli/formatter"
	"github.com/EzequielOmarArraygada/backoffice/internal/domain"
	"github.com/EzequielOmarArraygada/backoffice/internal/tasks"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage agent task sessions",
	}

	cmd.AddCommand(
		newTaskStartCmd(app),
		newTaskPauseCmd(app),
		newTaskResumeCmd(app),
		newTaskFinishCmd(app),
		newTaskStatusCmd(app),
	)

	return cmd
}

func newTaskStartCmd(app *App) *cobra.Command {
	var ownerID, ownerName, taskLabel, notes string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new task session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if (ownerID == "" || taskLabel == "") && app.interactive() {
				if err := runStartForm(&ownerID, &ownerName, &taskLabel, &notes); err != nil {
					return err
				}
			}

			taskID, err := app.Tasks.Start(ctx, tasks.StartParams{
				OwnerID:   ownerID,
				OwnerName: ownerName,
				TaskLabel: taskLabel,
				Notes:     notes,
				StartedAt: app.Clock.Now(),
			})
			if err != nil {
				return err
			}

			fmt.Printf("Started task %s for %s\n", taskID, ownerName)
			return nil
		},
	}

	cmd.Flags().StringVar(&ownerID, "owner", "", "Owner user ID")
	cmd.Flags().StringVar(&ownerName, "name", "", "Owner display name")
	cmd.Flags().StringVar(&taskLabel, "type", "", "Task type")
	cmd.Flags().StringVar(&notes, "notes", "", "Optional notes")

	return cmd
}

func newTaskPauseCmd(app *App) *cobra.Command {
	var owner, actor string

	cmd := &cobra.Command{
		Use:   "pause [TASK_ID]",
		Short: "Pause an in-progress task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args, owner)
			if err != nil {
				return err
			}
			if err := app.Tasks.Pause(ctx, taskID, actor, app.Clock.Now()); err != nil {
				return err
			}
			fmt.Printf("Paused task %s\n", taskID)
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Resolve the owner's current task instead of passing an ID")
	cmd.Flags().StringVar(&actor, "actor", "", "Who is pausing the task")

	return cmd
}

func newTaskResumeCmd(app *App) *cobra.Command {
	var owner, actor string

	cmd := &cobra.Command{
		Use:   "resume [TASK_ID]",
		Short: "Resume a paused task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args, owner)
			if err != nil {
				return err
			}
			if err := app.Tasks.Resume(ctx, taskID, actor, app.Clock.Now()); err != nil {
				return err
			}
			fmt.Printf("Resumed task %s\n", taskID)
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Resolve the owner's current task instead of passing an ID")
	cmd.Flags().StringVar(&actor, "actor", "", "Who is resuming the task")

	return cmd
}

func newTaskFinishCmd(app *App) *cobra.Command {
	var owner, actor string
	var cases int

	cmd := &cobra.Command{
		Use:   "finish [TASK_ID]",
		Short: "Finish an active task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args, owner)
			if err != nil {
				return err
			}

			var caseCount *int
			if cmd.Flags().Changed("cases") {
				caseCount = &cases
			}
			if err := app.Tasks.Finish(ctx, taskID, actor, app.Clock.Now(), caseCount); err != nil {
				return err
			}
			if caseCount != nil {
				fmt.Printf("Finished task %s (%d cases)\n", taskID, *caseCount)
			} else {
				fmt.Printf("Finished task %s\n", taskID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Resolve the owner's current task instead of passing an ID")
	cmd.Flags().StringVar(&actor, "actor", "", "Who is finishing the task")
	cmd.Flags().IntVar(&cases, "cases", 0, "Number of cases handled during the session")

	return cmd
}

func newTaskStatusCmd(app *App) *cobra.Command {
	var owner, taskID string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show a task's current state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var rec *domain.TaskRecord
			var err error
			switch {
			case taskID != "":
				rec, err = app.Tasks.FindByTaskID(ctx, taskID)
			case owner != "":
				rec, err = app.Tasks.FindActiveByOwner(ctx, owner)
			default:
				return fmt.Errorf("pass --task or --owner")
			}
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatTask(rec))
			return nil
		},
	}

	cmd.Flags().StringVar(&taskID, "task", "", "Task ID")
	cmd.Flags().StringVar(&owner, "owner", "", "Owner user ID")

	return cmd
}

// resolveTaskID picks the task to act on: an explicit ID argument, or the
// owner's current active task.
func resolveTaskID(ctx context.Context, app *App, args []string, owner string) (string, error) {
	if len(args) == 1 && args[0] != "" {
		return args[0], nil
	}
	if owner == "" {
		return "", fmt.Errorf("pass a task ID or --owner")
	}
	rec, err := app.Tasks.FindActiveByOwner(ctx, owner)
	if err != nil {
		return "", err
	}
	return rec.TaskID, nil
}
