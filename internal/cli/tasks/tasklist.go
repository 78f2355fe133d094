package tasks

import (
	"fmt"

	"github.com/julianstephens/zenfocus/internal/cli"
	"github.com/julianstephens/zenfocus/internal/models"
)

type TaskListCmd struct {
	All bool `short:"a" help:"Include the someday backlog."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Bootstrap(); err != nil {
		return err
	}

	today := ctx.Coordinator.Today()
	fmt.Printf("Today (%d)\n", len(today))
	if len(today) == 0 {
		fmt.Println("  nothing planned - add tasks with 'zenfocus focus add'")
	}
	for i, t := range today {
		c.printTask(ctx, i, t)
	}

	if !c.All {
		return nil
	}

	someday := ctx.Coordinator.Someday()
	fmt.Printf("\nSomeday (%d)\n", len(someday))
	for i, t := range someday {
		c.printTask(ctx, i, t)
	}

	return nil
}

func (c *TaskListCmd) printTask(ctx *cli.Context, i int, t models.Task) {
	marker := " "
	if t.Paused {
		marker = "⏸"
	}

	line := fmt.Sprintf("  %2d. %s %s", i+1, marker, t.Title)
	if cat, ok := ctx.Tree.Get(t.CategoryID); ok {
		line += fmt.Sprintf(" @%s", cat.Name)
	}
	if t.FocusedDuration > 0 {
		line += fmt.Sprintf(" (%s focused)", cli.FormatFocusedDuration(t.FocusedDuration))
	}
	line += fmt.Sprintf("  [%.8s]", t.ID)
	fmt.Println(line)
}
