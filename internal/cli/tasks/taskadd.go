package tasks

import (
	"fmt"

	"github.com/julianstephens/zenfocus/internal/cli"
	"github.com/julianstephens/zenfocus/internal/logger"
	"github.com/julianstephens/zenfocus/internal/models"
)

type TaskAddCmd struct {
	Title string `arg:"" help:"Task title, optionally ending in @category."`
	Focus bool   `short:"f" help:"Add directly to today's focus list."`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Bootstrap(); err != nil {
		return err
	}

	title, categoryName := cli.SplitCategoryToken(c.Title)

	task := models.Task{Title: title}
	if categoryName != "" {
		cat, created, err := ctx.Tree.EnsureChild(categoryName)
		if err != nil {
			return err
		}
		if created {
			// EnsureChild may have created the root bucket too
			if root, ok := ctx.Tree.Get(cat.ParentID); ok {
				ctx.SaveCategory(root)
			}
			ctx.SaveCategory(cat)
			logger.Info("Created category", "name", cat.Name)
		}
		task.CategoryID = cat.ID
	}

	if err := ctx.Coordinator.AddNewTask(task, c.Focus); err != nil {
		return err
	}

	if c.Focus {
		fmt.Printf("Added %q to today's focus.\n", title)
	} else {
		fmt.Printf("Added %q.\n", title)
	}
	return nil
}
