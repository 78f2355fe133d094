package category

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/zenfocus/internal/constants"
	"github.com/julianstephens/zenfocus/internal/errors"
	"github.com/julianstephens/zenfocus/internal/models"
	"github.com/julianstephens/zenfocus/internal/validation"
)

// Tree is the in-memory category hierarchy. Every category has at most one
// parent; root categories have an empty parent id. Nodes hold an id
// back-reference to their parent, and a separate index maps parent id to its
// ordered child ids, so there are no reference cycles to manage.
type Tree struct {
	nodes    map[string]models.Category
	children map[string][]string // parent id ("" for roots) -> ordered child ids
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{
		nodes:    make(map[string]models.Category),
		children: make(map[string][]string),
	}
}

// Load replaces the tree's contents with the given categories. Parents are
// linked by id; a category referencing a missing parent becomes a root.
func (t *Tree) Load(cats []models.Category) {
	t.nodes = make(map[string]models.Category)
	t.children = make(map[string][]string)

	for _, c := range cats {
		t.nodes[c.ID] = c
	}
	for _, c := range cats {
		parent := c.ParentID
		if _, ok := t.nodes[parent]; !ok {
			parent = ""
		}
		t.children[parent] = append(t.children[parent], c.ID)
	}
}

// Get returns the category with the given id.
func (t *Tree) Get(id string) (models.Category, bool) {
	c, ok := t.nodes[id]
	return c, ok
}

// Len returns the number of categories in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Children returns the ordered children of the given parent id ("" for roots).
func (t *Tree) Children(parentID string) []models.Category {
	ids := t.children[parentID]
	out := make([]models.Category, 0, len(ids))
	for _, id := range ids {
		if c, ok := t.nodes[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

// NonRoot returns every category that has a parent, sorted case-insensitively
// by name. This is the candidate set for suggestions.
func (t *Tree) NonRoot() []models.Category {
	var out []models.Category
	for _, c := range t.nodes {
		if c.ParentID != "" {
			out = append(out, c)
		}
	}
	sortByName(out)
	return out
}

// FindByName returns the first category whose name matches case-insensitively.
func (t *Tree) FindByName(name string) (models.Category, bool) {
	var matches []models.Category
	for _, c := range t.nodes {
		if strings.EqualFold(c.Name, name) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return models.Category{}, false
	}
	sortByName(matches)
	return matches[0], true
}

// Add creates a category under parentID ("" for a root). Sibling names must
// be unique case-insensitively; color falls back to the rotating palette.
func (t *Tree) Add(name, color, parentID string) (models.Category, error) {
	if err := validation.CategoryName(name); err != nil {
		return models.Category{}, err
	}
	if parentID != "" {
		if _, ok := t.nodes[parentID]; !ok {
			return models.Category{}, errors.Validation("parent category", "does not exist")
		}
	}
	for _, sibling := range t.Children(parentID) {
		if strings.EqualFold(sibling.Name, name) {
			return models.Category{}, errors.Validation("category name", "already exists among siblings")
		}
	}

	if color == "" {
		color = t.nextColor()
	}

	c := models.Category{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     color,
		ParentID:  parentID,
		CreatedAt: time.Now(),
	}
	t.nodes[c.ID] = c
	t.children[parentID] = append(t.children[parentID], c.ID)
	return c, nil
}

// Rename changes a category's name, enforcing sibling uniqueness.
func (t *Tree) Rename(id, newName string) error {
	c, ok := t.nodes[id]
	if !ok {
		return errors.Validation("category", "does not exist")
	}
	if err := validation.CategoryName(newName); err != nil {
		return err
	}
	for _, sibling := range t.Children(c.ParentID) {
		if sibling.ID != id && strings.EqualFold(sibling.Name, newName) {
			return errors.Validation("category name", "already exists among siblings")
		}
	}

	c.Name = newName
	t.nodes[id] = c
	return nil
}

// Delete removes a category, promoting its children to the deleted node's
// parent. Deleting an absent id is a no-op.
func (t *Tree) Delete(id string) {
	c, ok := t.nodes[id]
	if !ok {
		return
	}

	orphans := t.children[id]
	delete(t.children, id)
	for _, childID := range orphans {
		child := t.nodes[childID]
		child.ParentID = c.ParentID
		t.nodes[childID] = child
	}

	siblings := t.children[c.ParentID]
	for i, sid := range siblings {
		if sid == id {
			siblings = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	t.children[c.ParentID] = append(siblings, orphans...)

	delete(t.nodes, id)
}

// EnsureRoot returns the root category with the given name, creating it if
// missing.
func (t *Tree) EnsureRoot(name string) (models.Category, error) {
	for _, c := range t.Children("") {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return t.Add(name, "", "")
}

// EnsureChild resolves name to an existing category anywhere in the tree, or
// creates it under the default root when missing. This backs the inline
// "@category" flow: a name the user typed should never fail, only fall back
// to creation.
func (t *Tree) EnsureChild(name string) (models.Category, bool, error) {
	if c, ok := t.FindByName(name); ok {
		return c, false, nil
	}

	root, err := t.EnsureRoot(constants.RootCategoryName)
	if err != nil {
		return models.Category{}, false, err
	}
	c, err := t.Add(name, "", root.ID)
	if err != nil {
		return models.Category{}, false, err
	}
	return c, true, nil
}

// All returns every category in the tree, roots first, each level in order.
func (t *Tree) All() []models.Category {
	var out []models.Category
	var walk func(parentID string)
	walk = func(parentID string) {
		for _, c := range t.Children(parentID) {
			out = append(out, c)
			walk(c.ID)
		}
	}
	walk("")
	return out
}

// sortByName orders case-insensitively by name. Folded-equal names (legal
// under different parents) tie-break on exact name, then id, so the order is
// stable across calls even though the candidates come out of a map.
func sortByName(cats []models.Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		a, b := strings.ToLower(cats[i].Name), strings.ToLower(cats[j].Name)
		if a != b {
			return a < b
		}
		if cats[i].Name != cats[j].Name {
			return cats[i].Name < cats[j].Name
		}
		return cats[i].ID < cats[j].ID
	})
}
