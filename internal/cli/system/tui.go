package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/zenfocus/internal/cli"
	"github.com/julianstephens/zenfocus/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Bootstrap(); err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Coordinator, ctx.Tree, ctx.Store, ctx.Bus), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
