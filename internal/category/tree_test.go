package category

import (
	"testing"
	"time"

	"github.com/julianstephens/zenfocus/internal/errors"
	"github.com/julianstephens/zenfocus/internal/models"
)

func mustAdd(t *testing.T, tree *Tree, name, parentID string) models.Category {
	t.Helper()
	c, err := tree.Add(name, "", parentID)
	if err != nil {
		t.Fatalf("Add(%q) error: %v", name, err)
	}
	return c
}

func TestTreeAdd(t *testing.T) {
	t.Run("roots and children", func(t *testing.T) {
		tree := NewTree()
		root := mustAdd(t, tree, "Work", "")
		child := mustAdd(t, tree, "Meetings", root.ID)

		if child.ParentID != root.ID {
			t.Errorf("child.ParentID = %q, want %q", child.ParentID, root.ID)
		}
		if got := tree.Children(root.ID); len(got) != 1 || got[0].Name != "Meetings" {
			t.Errorf("Children(root) = %v, want [Meetings]", got)
		}
	})

	t.Run("sibling names are unique case-insensitively", func(t *testing.T) {
		tree := NewTree()
		root := mustAdd(t, tree, "Work", "")
		mustAdd(t, tree, "Meetings", root.ID)

		_, err := tree.Add("MEETINGS", "", root.ID)
		if !errors.IsValidation(err) {
			t.Errorf("Add(MEETINGS) error = %v, want validation error", err)
		}
	})

	t.Run("same name under different parents is allowed", func(t *testing.T) {
		tree := NewTree()
		work := mustAdd(t, tree, "Work", "")
		home := mustAdd(t, tree, "Home", "")
		mustAdd(t, tree, "Errands", work.ID)
		if _, err := tree.Add("Errands", "", home.ID); err != nil {
			t.Errorf("Add(Errands) under second parent error: %v", err)
		}
	})

	t.Run("missing parent is rejected", func(t *testing.T) {
		tree := NewTree()
		_, err := tree.Add("Orphan", "", "no-such-id")
		if !errors.IsValidation(err) {
			t.Errorf("Add with missing parent error = %v, want validation error", err)
		}
	})

	t.Run("invalid names are rejected", func(t *testing.T) {
		tree := NewTree()
		for _, name := range []string{"", "  padded  "} {
			if _, err := tree.Add(name, "", ""); !errors.IsValidation(err) {
				t.Errorf("Add(%q) error = %v, want validation error", name, err)
			}
		}
	})

	t.Run("blank color falls back to the palette", func(t *testing.T) {
		tree := NewTree()
		c := mustAdd(t, tree, "Work", "")
		if c.Color == "" {
			t.Error("Add left color empty")
		}
	})
}

func TestTreeRename(t *testing.T) {
	tree := NewTree()
	root := mustAdd(t, tree, "Work", "")
	a := mustAdd(t, tree, "Alpha", root.ID)
	mustAdd(t, tree, "Beta", root.ID)

	t.Run("renames", func(t *testing.T) {
		if err := tree.Rename(a.ID, "Gamma"); err != nil {
			t.Fatalf("Rename error: %v", err)
		}
		got, _ := tree.Get(a.ID)
		if got.Name != "Gamma" {
			t.Errorf("name = %q, want Gamma", got.Name)
		}
	})

	t.Run("collision with a sibling is rejected", func(t *testing.T) {
		if err := tree.Rename(a.ID, "beta"); !errors.IsValidation(err) {
			t.Errorf("Rename(beta) error = %v, want validation error", err)
		}
	})

	t.Run("renaming to its own name is allowed", func(t *testing.T) {
		if err := tree.Rename(a.ID, "Gamma"); err != nil {
			t.Errorf("Rename to own name error: %v", err)
		}
	})
}

func TestTreeDelete(t *testing.T) {
	t.Run("children are promoted to the grandparent", func(t *testing.T) {
		tree := NewTree()
		root := mustAdd(t, tree, "Work", "")
		mid := mustAdd(t, tree, "Projects", root.ID)
		leaf := mustAdd(t, tree, "Q3", mid.ID)

		tree.Delete(mid.ID)

		got, ok := tree.Get(leaf.ID)
		if !ok {
			t.Fatal("promoted child disappeared")
		}
		if got.ParentID != root.ID {
			t.Errorf("promoted ParentID = %q, want %q", got.ParentID, root.ID)
		}
		if _, ok := tree.Get(mid.ID); ok {
			t.Error("deleted category still present")
		}
	})

	t.Run("deleting a root promotes children to roots", func(t *testing.T) {
		tree := NewTree()
		root := mustAdd(t, tree, "Work", "")
		child := mustAdd(t, tree, "Meetings", root.ID)

		tree.Delete(root.ID)

		got, _ := tree.Get(child.ID)
		if got.ParentID != "" {
			t.Errorf("promoted ParentID = %q, want root", got.ParentID)
		}
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		tree := NewTree()
		mustAdd(t, tree, "Work", "")
		tree.Delete("ghost")
		if tree.Len() != 1 {
			t.Errorf("Len() = %d, want 1", tree.Len())
		}
	})
}

func TestTreeLoad(t *testing.T) {
	t.Run("missing parent becomes a root", func(t *testing.T) {
		tree := NewTree()
		tree.Load([]models.Category{
			{ID: "a", Name: "Adrift", ParentID: "vanished", CreatedAt: time.Now()},
		})

		roots := tree.Children("")
		if len(roots) != 1 || roots[0].ID != "a" {
			t.Errorf("Children(\"\") = %v, want the orphan as root", roots)
		}
	})

	t.Run("round trips through All", func(t *testing.T) {
		tree := NewTree()
		root := mustAdd(t, tree, "Work", "")
		mustAdd(t, tree, "Meetings", root.ID)
		mustAdd(t, tree, "Home", "")

		reloaded := NewTree()
		reloaded.Load(tree.All())

		if reloaded.Len() != 3 {
			t.Errorf("Len() = %d, want 3", reloaded.Len())
		}
		if got := reloaded.Children(root.ID); len(got) != 1 {
			t.Errorf("Children(root) = %v, want 1 child", got)
		}
	})
}

func TestEnsureChild(t *testing.T) {
	t.Run("resolves an existing category anywhere", func(t *testing.T) {
		tree := NewTree()
		work := mustAdd(t, tree, "Work", "")
		meetings := mustAdd(t, tree, "Meetings", work.ID)

		got, created, err := tree.EnsureChild("meetings")
		if err != nil {
			t.Fatalf("EnsureChild error: %v", err)
		}
		if created {
			t.Error("EnsureChild created a duplicate")
		}
		if got.ID != meetings.ID {
			t.Errorf("resolved %q, want %q", got.ID, meetings.ID)
		}
	})

	t.Run("creates under the default root when missing", func(t *testing.T) {
		tree := NewTree()

		got, created, err := tree.EnsureChild("Fitness")
		if err != nil {
			t.Fatalf("EnsureChild error: %v", err)
		}
		if !created {
			t.Error("EnsureChild did not report creation")
		}

		parent, ok := tree.Get(got.ParentID)
		if !ok || parent.Name != "Uncategorized" {
			t.Errorf("parent = %+v, want the Uncategorized root", parent)
		}
	})
}

func TestFindByNameStableAcrossCalls(t *testing.T) {
	tree := NewTree()
	home := mustAdd(t, tree, "Home", "")
	office := mustAdd(t, tree, "Office", "")
	upper := mustAdd(t, tree, "Work", home.ID)
	mustAdd(t, tree, "wORK", office.ID)

	for i := 0; i < 500; i++ {
		got, ok := tree.FindByName("work")
		if !ok {
			t.Fatal("FindByName(work) found nothing")
		}
		if got.ID != upper.ID {
			t.Fatalf("run %d resolved %q (%s), want %q (%s)", i, got.Name, got.ID, upper.Name, upper.ID)
		}
	}
}

func TestNextColorRotates(t *testing.T) {
	tree := NewTree()
	a := mustAdd(t, tree, "A", "")
	b := mustAdd(t, tree, "B", "")

	if a.Color == b.Color {
		t.Errorf("consecutive categories share color %q", a.Color)
	}
}
