package tasks

import (
	"fmt"

	"github.com/julianstephens/zenfocus/internal/cli"
)

type TaskDeleteCmd struct {
	Task string `arg:"" help:"Task id, id prefix, or exact title."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Bootstrap(); err != nil {
		return err
	}

	task, err := ctx.ResolveTask(c.Task)
	if err != nil {
		return err
	}

	ctx.Coordinator.DeleteTask(task.ID)
	ctx.Coordinator.Flush()
	fmt.Printf("Deleted %q.\n", task.Title)
	return nil
}
