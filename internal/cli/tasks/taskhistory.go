package tasks

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/zenfocus/internal/cli"
)

type HistoryCmd struct {
	Clear bool `help:"Delete all completed tasks."`
	Yes   bool `short:"y" help:"Skip the confirmation prompt when clearing."`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	if c.Clear {
		return c.clear(ctx)
	}

	completed, err := ctx.Store.GetCompletedTasks()
	if err != nil {
		return fmt.Errorf("failed to load completed tasks: %w", err)
	}

	if len(completed) == 0 {
		fmt.Println("No completed tasks yet.")
		return nil
	}

	fmt.Printf("Completed (%d):\n", len(completed))
	for _, t := range completed {
		when := ""
		if t.CompletedAt != nil {
			when = t.CompletedAt.Local().Format("2006-01-02 15:04")
		}
		line := fmt.Sprintf("  ✓ %s", t.Title)
		if when != "" {
			line += fmt.Sprintf("  (%s)", when)
		}
		if t.FocusedDuration > 0 {
			line += fmt.Sprintf("  [%s focused]", cli.FormatFocusedDuration(t.FocusedDuration))
		}
		fmt.Println(line)
	}
	return nil
}

func (c *HistoryCmd) clear(ctx *cli.Context) error {
	if !c.Yes {
		var confirmed bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Delete all completed tasks?").
				Description("This cannot be undone.").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	count, err := ctx.Store.DeleteCompletedTasks()
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	fmt.Printf("Deleted %d completed task(s).\n", count)
	return nil
}
