package categories

import (
	"fmt"
	"strings"

	"github.com/julianstephens/zenfocus/internal/cli"
)

type CategoryAddCmd struct {
	Name   string `arg:"" help:"Category name."`
	Parent string `help:"Parent category name; top-level when omitted."`
	Color  string `help:"Display color (hex); assigned from the palette when omitted."`
}

func (c *CategoryAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Bootstrap(); err != nil {
		return err
	}

	parentID := ""
	if c.Parent != "" {
		parent, ok := ctx.Tree.FindByName(c.Parent)
		if !ok {
			return fmt.Errorf("no category named %q", c.Parent)
		}
		parentID = parent.ID
	}

	cat, err := ctx.Tree.Add(c.Name, c.Color, parentID)
	if err != nil {
		return err
	}
	ctx.SaveCategory(cat)

	fmt.Printf("Added category %q.\n", cat.Name)
	return nil
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Bootstrap(); err != nil {
		return err
	}

	if ctx.Tree.Len() == 0 {
		fmt.Println("No categories yet.")
		return nil
	}

	var print func(parentID string, depth int)
	print = func(parentID string, depth int) {
		for _, cat := range ctx.Tree.Children(parentID) {
			fmt.Printf("%s%s\n", strings.Repeat("  ", depth), cat.Name)
			print(cat.ID, depth+1)
		}
	}
	print("", 0)
	return nil
}

type CategoryDeleteCmd struct {
	Name string `arg:"" help:"Category name."`
}

func (c *CategoryDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Bootstrap(); err != nil {
		return err
	}

	cat, ok := ctx.Tree.FindByName(c.Name)
	if !ok {
		return fmt.Errorf("no category named %q", c.Name)
	}

	// Children are promoted in the tree; persist their new parent
	promoted := ctx.Tree.Children(cat.ID)
	ctx.Tree.Delete(cat.ID)
	for _, child := range promoted {
		if updated, ok := ctx.Tree.Get(child.ID); ok {
			ctx.SaveCategory(updated)
		}
	}
	if err := ctx.Store.DeleteCategory(cat.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted category %q.\n", cat.Name)
	return nil
}

type SuggestCmd struct {
	Query string `arg:"" optional:"" help:"Partial category name."`
}

func (c *SuggestCmd) Run(ctx *cli.Context) error {
	if err := ctx.Bootstrap(); err != nil {
		return err
	}

	engine := ctx.SuggestionEngine()
	result := engine.Suggest(c.Query)

	if result.CreateNew != "" {
		fmt.Printf("No matches. Create new category %q with 'zenfocus category add'.\n", result.CreateNew)
		return nil
	}

	for _, cat := range result.Categories {
		line := cat.Name
		if parent, ok := ctx.Tree.Get(cat.ParentID); ok {
			line += fmt.Sprintf(" (under %s)", parent.Name)
		}
		fmt.Println(line)
	}
	return nil
}
