package tasks

import (
	"fmt"

	"github.com/julianstephens/zenfocus/internal/cli"
	"github.com/julianstephens/zenfocus/internal/logger"
	"github.com/julianstephens/zenfocus/internal/notifier"
)

type TaskCompleteCmd struct {
	Task string `arg:"" help:"Task id, id prefix, or exact title."`
	Undo bool   `help:"Re-open a completed task instead."`
}

func (c *TaskCompleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Bootstrap(); err != nil {
		return err
	}

	if c.Undo {
		// Completed tasks are absent from both partitions, so resolve
		// against the store's history instead.
		completed, err := ctx.Store.GetCompletedTasks()
		if err != nil {
			return err
		}
		for _, t := range completed {
			if t.ID == c.Task || t.Title == c.Task {
				ctx.Coordinator.Track(t)
				ctx.Coordinator.ToggleTaskCompletion(t.ID)
				ctx.Coordinator.Flush()
				fmt.Printf("Re-opened %q.\n", t.Title)
				return nil
			}
		}
		return fmt.Errorf("no completed task matches %q", c.Task)
	}

	task, err := ctx.ResolveTask(c.Task)
	if err != nil {
		return err
	}

	ctx.Coordinator.CompleteTask(task.ID)
	ctx.Coordinator.Flush()
	fmt.Printf("Completed %q.\n", task.Title)

	if err := notifier.New().Notify(fmt.Sprintf("Completed: %s", task.Title)); err != nil {
		logger.Debug("Tray notification skipped", "error", err)
	}
	return nil
}
