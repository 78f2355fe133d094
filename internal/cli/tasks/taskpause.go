package tasks

import (
	"fmt"

	"github.com/julianstephens/zenfocus/internal/cli"
)

type TaskPauseCmd struct {
	Task   string `arg:"" help:"Task id, id prefix, or exact title."`
	Resume bool   `short:"r" help:"Resume a paused task instead."`
}

func (c *TaskPauseCmd) Run(ctx *cli.Context) error {
	if err := ctx.Bootstrap(); err != nil {
		return err
	}

	task, err := ctx.ResolveTask(c.Task)
	if err != nil {
		return err
	}

	ctx.Coordinator.PauseTask(task.ID, !c.Resume)
	ctx.Coordinator.Flush()

	if c.Resume {
		fmt.Printf("Resumed %q.\n", task.Title)
	} else {
		fmt.Printf("Paused %q.\n", task.Title)
	}
	return nil
}
