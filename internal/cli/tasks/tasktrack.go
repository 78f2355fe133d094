package tasks

import (
	"fmt"
	"time"

	"github.com/julianstephens/zenfocus/internal/cli"
)

type TaskTrackCmd struct {
	Task    string `arg:"" help:"Task id, id prefix, or exact title."`
	Minutes int    `arg:"" help:"Focused minutes to record."`
}

func (c *TaskTrackCmd) Run(ctx *cli.Context) error {
	if err := ctx.Bootstrap(); err != nil {
		return err
	}
	if c.Minutes <= 0 {
		return fmt.Errorf("minutes must be greater than zero")
	}

	task, err := ctx.ResolveTask(c.Task)
	if err != nil {
		return err
	}

	ctx.Coordinator.AddFocusTime(task.ID, time.Duration(c.Minutes)*time.Minute)
	ctx.Coordinator.Flush()

	updated, _ := ctx.Coordinator.Task(task.ID)
	fmt.Printf("Recorded %dm on %q (total %s).\n", c.Minutes, task.Title, cli.FormatFocusedDuration(updated.FocusedDuration))
	return nil
}
