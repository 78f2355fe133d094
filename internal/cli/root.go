package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/zenfocus/internal/category"
	"github.com/julianstephens/zenfocus/internal/events"
	"github.com/julianstephens/zenfocus/internal/focus"
	"github.com/julianstephens/zenfocus/internal/logger"
	"github.com/julianstephens/zenfocus/internal/models"
	"github.com/julianstephens/zenfocus/internal/storage"
)

type Context struct {
	Store       storage.Provider
	Bus         *events.Bus
	Coordinator *focus.Coordinator
	Tree        *category.Tree
}

// Bootstrap populates the coordinator and category tree from the store and
// runs the daily rollover check. Commands that read or mutate the board call
// this first.
func (c *Context) Bootstrap() error {
	if err := c.Coordinator.Load(); err != nil {
		return err
	}

	cats, err := c.Store.GetAllCategories()
	if err != nil {
		return err
	}
	c.Tree.Load(cats)

	if c.Coordinator.CheckAndResetDailyFocus(time.Now()) {
		logger.Info("Daily focus reset performed")
	}
	return nil
}

// SuggestionEngine returns a ranking engine over the loaded category tree.
func (c *Context) SuggestionEngine() *category.SuggestionEngine {
	return category.NewSuggestionEngine(c.Tree)
}

// SaveCategory persists a category mutation, logging rather than failing the
// command when the save itself goes wrong.
func (c *Context) SaveCategory(cat models.Category) {
	if err := c.Store.UpsertCategory(cat); err != nil {
		logger.Error("Failed to save category", "category", cat.Name, "error", err)
		fmt.Printf("Warning: category %q was not saved: %v\n", cat.Name, err)
	}
}

// ResolveTask finds a task by exact id, unique id prefix, or exact title
// (case-insensitive) across both partitions.
func (c *Context) ResolveTask(ref string) (models.Task, error) {
	all := append(c.Coordinator.Today(), c.Coordinator.Someday()...)

	for _, t := range all {
		if t.ID == ref {
			return t, nil
		}
	}

	var prefixMatches []models.Task
	for _, t := range all {
		if strings.HasPrefix(t.ID, ref) {
			prefixMatches = append(prefixMatches, t)
		}
	}
	if len(prefixMatches) == 1 {
		return prefixMatches[0], nil
	}
	if len(prefixMatches) > 1 {
		return models.Task{}, fmt.Errorf("task reference %q is ambiguous (%d matches)", ref, len(prefixMatches))
	}

	for _, t := range all {
		if strings.EqualFold(t.Title, ref) {
			return t, nil
		}
	}

	return models.Task{}, fmt.Errorf("no task matches %q", ref)
}

// FormatFocusedDuration renders accumulated focus seconds as "1h 05m" style text.
func FormatFocusedDuration(seconds int) string {
	if seconds <= 0 {
		return "0m"
	}
	d := time.Duration(seconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// SplitCategoryToken splits a task title of the form "do the thing @home"
// into the title proper and the trailing category name. The token must be
// the last word; titles without one come back unchanged.
func SplitCategoryToken(input string) (title, categoryName string) {
	at := strings.LastIndex(input, "@")
	if at < 0 {
		return strings.TrimSpace(input), ""
	}

	name := strings.TrimSpace(input[at+1:])
	if name == "" || strings.ContainsAny(name, " \t") {
		return strings.TrimSpace(input), ""
	}
	return strings.TrimSpace(input[:at]), name
}
