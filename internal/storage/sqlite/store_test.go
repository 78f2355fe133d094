package sqlite

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/zenfocus/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInitAndLoad(t *testing.T) {
	t.Run("init then load succeeds", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		store := NewStore(dbPath)
		if err := store.Init(); err != nil {
			t.Fatalf("Init() error: %v", err)
		}
		store.Close()

		reopened := NewStore(dbPath)
		if err := reopened.Load(); err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		reopened.Close()
	})

	t.Run("load without init fails", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
		if err := store.Load(); err == nil {
			t.Error("Load() on missing database succeeded, want error")
		}
	})

	t.Run("init is idempotent", func(t *testing.T) {
		store := setupTestStore(t)
		if err := store.runMigrations(); err != nil {
			t.Errorf("second migration run error: %v", err)
		}
	})
}

func TestTaskRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	created := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	completed := created.Add(3 * time.Hour)
	task := models.Task{
		ID:              "t1",
		Title:           "ship the release",
		CreatedAt:       created,
		CompletedAt:     &completed,
		FocusedDuration: 1500,
		Paused:          true,
		InDailyFocus:    false,
		FocusOrder:      0,
	}

	if err := store.UpsertTask(task); err != nil {
		t.Fatalf("UpsertTask() error: %v", err)
	}

	got, err := store.GetTask("t1")
	if err != nil {
		t.Fatalf("GetTask() error: %v", err)
	}
	if got.Title != task.Title || got.FocusedDuration != 1500 || !got.Paused {
		t.Errorf("GetTask() = %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(completed) {
		t.Errorf("CompletedAt = %v, want %v", got.CompletedAt, completed)
	}
}

func TestTaskUpsertOverwrites(t *testing.T) {
	store := setupTestStore(t)
	base := models.Task{ID: "t1", Title: "draft", CreatedAt: time.Now().UTC()}

	if err := store.UpsertTask(base); err != nil {
		t.Fatalf("UpsertTask() error: %v", err)
	}
	base.Title = "final"
	base.FocusedDuration = 600
	if err := store.UpsertTask(base); err != nil {
		t.Fatalf("second UpsertTask() error: %v", err)
	}

	got, err := store.GetTask("t1")
	if err != nil {
		t.Fatalf("GetTask() error: %v", err)
	}
	if got.Title != "final" || got.FocusedDuration != 600 {
		t.Errorf("GetTask() = %+v, want updated fields", got)
	}
}

func TestTaskPartitionQueries(t *testing.T) {
	store := setupTestStore(t)
	now := time.Now().UTC()
	done := now.Add(-time.Hour)

	tasks := []models.Task{
		{ID: "f2", Title: "second focus", CreatedAt: now, InDailyFocus: true, FocusOrder: 1},
		{ID: "f1", Title: "first focus", CreatedAt: now, InDailyFocus: true, FocusOrder: 0},
		{ID: "s1", Title: "older someday", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "s2", Title: "newer someday", CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "c1", Title: "already done", CreatedAt: now, CompletedAt: &done},
	}
	if err := store.UpsertTasks(tasks); err != nil {
		t.Fatalf("UpsertTasks() error: %v", err)
	}

	t.Run("focus tasks ordered by focus order", func(t *testing.T) {
		got, err := store.GetFocusTasks()
		if err != nil {
			t.Fatalf("GetFocusTasks() error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "f1" || got[1].ID != "f2" {
			t.Errorf("GetFocusTasks() = %+v, want f1 then f2", got)
		}
	})

	t.Run("available tasks ordered by creation", func(t *testing.T) {
		got, err := store.GetAvailableTasks()
		if err != nil {
			t.Fatalf("GetAvailableTasks() error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "s1" || got[1].ID != "s2" {
			t.Errorf("GetAvailableTasks() = %+v, want s1 then s2", got)
		}
	})

	t.Run("completed tasks excluded from both", func(t *testing.T) {
		got, err := store.GetCompletedTasks()
		if err != nil {
			t.Fatalf("GetCompletedTasks() error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "c1" {
			t.Errorf("GetCompletedTasks() = %+v, want only c1", got)
		}
	})
}

func TestDeleteCompletedTasks(t *testing.T) {
	store := setupTestStore(t)
	now := time.Now().UTC()
	done := now.Add(-time.Hour)

	err := store.UpsertTasks([]models.Task{
		{ID: "open", Title: "keep", CreatedAt: now},
		{ID: "d1", Title: "done one", CreatedAt: now, CompletedAt: &done},
		{ID: "d2", Title: "done two", CreatedAt: now, CompletedAt: &done},
	})
	if err != nil {
		t.Fatalf("UpsertTasks() error: %v", err)
	}

	n, err := store.DeleteCompletedTasks()
	if err != nil {
		t.Fatalf("DeleteCompletedTasks() error: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d tasks, want 2", n)
	}
	if _, err := store.GetTask("open"); err != nil {
		t.Errorf("open task was deleted: %v", err)
	}
}

func TestCorruptTimestampSurfacesError(t *testing.T) {
	store := setupTestStore(t)

	t.Run("invalid created_at", func(t *testing.T) {
		_, err := store.GetDB().Exec(`
			INSERT INTO tasks (id, title, created_at, focused_duration, paused, in_daily_focus, focus_order)
			VALUES ('bad-created', 'corrupt row', 'not-a-timestamp', 0, 0, 0, 0)`)
		if err != nil {
			t.Fatalf("raw insert error: %v", err)
		}

		if _, err := store.GetTask("bad-created"); err == nil {
			t.Error("GetTask() on a corrupt created_at succeeded, want error")
		} else if !strings.Contains(err.Error(), "created_at") {
			t.Errorf("error = %v, want mention of created_at", err)
		}
	})

	t.Run("invalid completed_at", func(t *testing.T) {
		_, err := store.GetDB().Exec(`
			INSERT INTO tasks (id, title, created_at, completed_at, focused_duration, paused, in_daily_focus, focus_order)
			VALUES ('bad-completed', 'corrupt row', ?, 'garbage', 0, 0, 0, 0)`,
			time.Now().UTC().Format(time.RFC3339))
		if err != nil {
			t.Fatalf("raw insert error: %v", err)
		}

		if _, err := store.GetTask("bad-completed"); err == nil {
			t.Error("GetTask() on a corrupt completed_at succeeded, want error")
		} else if !strings.Contains(err.Error(), "completed_at") {
			t.Errorf("error = %v, want mention of completed_at", err)
		}
	})
}

func TestCategoryRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	cat := models.Category{
		ID:        "c1",
		Name:      "Work",
		Color:     "#FF6B6B",
		CreatedAt: time.Now().UTC(),
	}

	if err := store.UpsertCategory(cat); err != nil {
		t.Fatalf("UpsertCategory() error: %v", err)
	}

	got, err := store.GetCategory("c1")
	if err != nil {
		t.Fatalf("GetCategory() error: %v", err)
	}
	if got.Name != "Work" || got.Color != "#FF6B6B" || got.ParentID != "" {
		t.Errorf("GetCategory() = %+v", got)
	}

	all, err := store.GetAllCategories()
	if err != nil {
		t.Fatalf("GetAllCategories() error: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("GetAllCategories() returned %d categories, want 1", len(all))
	}
}

func TestDeleteCategoryClearsTaskReferences(t *testing.T) {
	store := setupTestStore(t)
	now := time.Now().UTC()

	if err := store.UpsertCategory(models.Category{ID: "c1", Name: "Work", CreatedAt: now}); err != nil {
		t.Fatalf("UpsertCategory() error: %v", err)
	}
	if err := store.UpsertTask(models.Task{ID: "t1", Title: "tied", CreatedAt: now, CategoryID: "c1"}); err != nil {
		t.Fatalf("UpsertTask() error: %v", err)
	}

	if err := store.DeleteCategory("c1"); err != nil {
		t.Fatalf("DeleteCategory() error: %v", err)
	}

	got, err := store.GetTask("t1")
	if err != nil {
		t.Fatalf("GetTask() error: %v", err)
	}
	if got.CategoryID != "" {
		t.Errorf("task CategoryID = %q, want cleared", got.CategoryID)
	}
	if _, err := store.GetCategory("c1"); err == nil {
		t.Error("deleted category still readable")
	}
}

func TestConfigValues(t *testing.T) {
	store := setupTestStore(t)

	t.Run("unset key reads as empty", func(t *testing.T) {
		got, err := store.GetConfigValue("nope")
		if err != nil {
			t.Fatalf("GetConfigValue() error: %v", err)
		}
		if got != "" {
			t.Errorf("GetConfigValue() = %q, want empty", got)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := store.SetConfigValue("last_daily_focus_reset_date", "2026-05-01T09:00:00Z"); err != nil {
			t.Fatalf("SetConfigValue() error: %v", err)
		}
		got, err := store.GetConfigValue("last_daily_focus_reset_date")
		if err != nil {
			t.Fatalf("GetConfigValue() error: %v", err)
		}
		if got != "2026-05-01T09:00:00Z" {
			t.Errorf("GetConfigValue() = %q", got)
		}
	})

	t.Run("set overwrites", func(t *testing.T) {
		if err := store.SetConfigValue("k", "one"); err != nil {
			t.Fatalf("SetConfigValue() error: %v", err)
		}
		if err := store.SetConfigValue("k", "two"); err != nil {
			t.Fatalf("second SetConfigValue() error: %v", err)
		}
		got, _ := store.GetConfigValue("k")
		if got != "two" {
			t.Errorf("GetConfigValue() = %q, want two", got)
		}
	})
}
