package system

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/zenfocus/internal/cli"
	"github.com/julianstephens/zenfocus/internal/constants"
	"github.com/julianstephens/zenfocus/internal/keyring"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	// Check 1: DB reachable
	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	// Check 2: Schema version valid (only if DB is reachable)
	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (database not reachable)\n")
	}

	// Check 3: Task integrity (only if DB is reachable)
	if dbReachable {
		if err := checkTaskIntegrity(ctx); err != nil {
			fmt.Printf("❌ Task integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Task integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Task integrity: SKIPPED (database not reachable)\n")
	}

	// Check 4: Focus order (only if DB is reachable)
	if dbReachable {
		if err := checkFocusOrder(ctx); err != nil {
			fmt.Printf("❌ Focus order: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Focus order: OK\n")
		}
	} else {
		fmt.Printf("⊘ Focus order: SKIPPED (database not reachable)\n")
	}

	// Check 5: Category integrity (only if DB is reachable)
	if dbReachable {
		if err := checkCategoryIntegrity(ctx); err != nil {
			fmt.Printf("❌ Category integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Category integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Category integrity: SKIPPED (database not reachable)\n")
	}

	// Check 6: Reset timestamp (only if DB is reachable)
	if dbReachable {
		if err := checkResetTimestamp(ctx); err != nil {
			fmt.Printf("❌ Reset timestamp: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Reset timestamp: OK\n")
		}
	} else {
		fmt.Printf("⊘ Reset timestamp: SKIPPED (database not reachable)\n")
	}

	// Check 7: Clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 8: Keyring availability (warning only)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   Keyring unavailable - PostgreSQL credentials cannot be stored securely\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	store, ok := ctx.Store.(migratable)
	if !ok {
		return nil
	}

	db := store.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	var result int
	if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	store, ok := ctx.Store.(migratable)
	if !ok {
		return nil
	}

	runner, err := store.MigrationRunner()
	if err != nil {
		return err
	}
	return runner.ValidateVersion()
}

func checkTaskIntegrity(ctx *cli.Context) error {
	focus, err := ctx.Store.GetFocusTasks()
	if err != nil {
		return fmt.Errorf("failed to get focus tasks: %w", err)
	}
	available, err := ctx.Store.GetAvailableTasks()
	if err != nil {
		return fmt.Errorf("failed to get available tasks: %w", err)
	}

	seen := make(map[string]bool)
	for _, task := range append(focus, available...) {
		if seen[task.ID] {
			return fmt.Errorf("duplicate task ID found: %s", task.ID)
		}
		seen[task.ID] = true
	}

	for _, task := range focus {
		if task.Completed() {
			return fmt.Errorf("completed task %q is still in the daily focus", task.Title)
		}
	}
	return nil
}

func checkFocusOrder(ctx *cli.Context) error {
	focus, err := ctx.Store.GetFocusTasks()
	if err != nil {
		return fmt.Errorf("failed to get focus tasks: %w", err)
	}

	for i, task := range focus {
		if task.FocusOrder != i {
			return fmt.Errorf("focus order gap: task %q has order %d, expected %d (run any reorder to repair)", task.Title, task.FocusOrder, i)
		}
	}
	return nil
}

func checkCategoryIntegrity(ctx *cli.Context) error {
	cats, err := ctx.Store.GetAllCategories()
	if err != nil {
		return fmt.Errorf("failed to get categories: %w", err)
	}

	byID := make(map[string]bool, len(cats))
	for _, cat := range cats {
		byID[cat.ID] = true
	}

	siblings := make(map[string]map[string]string)
	for _, cat := range cats {
		if cat.ParentID != "" && !byID[cat.ParentID] {
			return fmt.Errorf("category %q references missing parent %s", cat.Name, cat.ParentID)
		}
		lower := strings.ToLower(cat.Name)
		if siblings[cat.ParentID] == nil {
			siblings[cat.ParentID] = make(map[string]string)
		}
		if other, exists := siblings[cat.ParentID][lower]; exists {
			return fmt.Errorf("duplicate sibling category names: %q and %q", other, cat.Name)
		}
		siblings[cat.ParentID][lower] = cat.Name
	}
	return nil
}

func checkResetTimestamp(ctx *cli.Context) error {
	for _, key := range []string{constants.ConfigLastDailyFocusResetDate, constants.ConfigLastPlanDate} {
		raw, err := ctx.Store.GetConfigValue(key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		if raw == "" {
			continue
		}
		if _, err := time.Parse(time.RFC3339, raw); err != nil {
			return fmt.Errorf("%s value %q is not a valid timestamp", key, raw)
		}
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
