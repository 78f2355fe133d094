package focuscmd

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/zenfocus/internal/cli"
)

type FocusShowCmd struct{}

func (c *FocusShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.Bootstrap(); err != nil {
		return err
	}

	today := ctx.Coordinator.Today()
	if len(today) == 0 {
		fmt.Println("Today's focus is empty.")
		return nil
	}

	fmt.Printf("Today's focus (%d)\n", len(today))
	for i, t := range today {
		line := fmt.Sprintf("  %2d. %s", i+1, t.Title)
		if cat, ok := ctx.Tree.Get(t.CategoryID); ok {
			line += fmt.Sprintf(" @%s", cat.Name)
		}
		fmt.Println(line)
	}
	return nil
}

type FocusAddCmd struct {
	Task string `arg:"" help:"Task id, id prefix, or exact title."`
	At   *int   `help:"Insert position (1-based); appended when omitted."`
}

func (c *FocusAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Bootstrap(); err != nil {
		return err
	}

	task, err := ctx.ResolveTask(c.Task)
	if err != nil {
		return err
	}

	var index *int
	if c.At != nil {
		i := *c.At - 1
		index = &i
	}

	ctx.Coordinator.AddTaskToFocus(task.ID, index)
	ctx.Coordinator.Flush()
	fmt.Printf("Focused %q.\n", task.Title)
	return nil
}

type FocusRemoveCmd struct {
	Task string `arg:"" help:"Task id, id prefix, or exact title."`
}

func (c *FocusRemoveCmd) Run(ctx *cli.Context) error {
	if err := ctx.Bootstrap(); err != nil {
		return err
	}

	task, err := ctx.ResolveTask(c.Task)
	if err != nil {
		return err
	}

	ctx.Coordinator.RemoveTaskFromFocus(task.ID)
	ctx.Coordinator.Flush()
	fmt.Printf("Moved %q back to someday.\n", task.Title)
	return nil
}

type FocusReorderCmd struct {
	From int `arg:"" help:"Current position (1-based)."`
	To   int `arg:"" help:"New position (1-based)."`
}

func (c *FocusReorderCmd) Run(ctx *cli.Context) error {
	if err := ctx.Bootstrap(); err != nil {
		return err
	}

	ctx.Coordinator.ReorderToday(c.From-1, c.To-1)
	ctx.Coordinator.Flush()
	fmt.Println("Reordered today's focus.")
	return nil
}

type FocusResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *FocusResetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Bootstrap(); err != nil {
		return err
	}

	if !c.Yes {
		var confirmed bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Reset today's focus?").
				Description("Every task in today's list moves back to someday.").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	ctx.Coordinator.ResetDailyFocus()
	ctx.Coordinator.Flush()
	fmt.Println("Today's focus has been reset.")
	return nil
}
