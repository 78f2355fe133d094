package migration

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func migrationFS(files map[string]string) fstest.MapFS {
	out := fstest.MapFS{}
	for name, content := range files {
		out[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return out
}

func TestReadMigrationFiles(t *testing.T) {
	t.Run("sorted by version", func(t *testing.T) {
		runner := NewRunner(nil, migrationFS(map[string]string{
			"002_second.sql": "SELECT 2;",
			"001_first.sql":  "SELECT 1;",
			"010_tenth.sql":  "SELECT 10;",
		}), DialectSQLite)

		migrations, err := runner.ReadMigrationFiles()
		if err != nil {
			t.Fatalf("ReadMigrationFiles() error: %v", err)
		}
		if len(migrations) != 3 {
			t.Fatalf("got %d migrations, want 3", len(migrations))
		}
		for i, want := range []int{1, 2, 10} {
			if migrations[i].Version != want {
				t.Errorf("migrations[%d].Version = %d, want %d", i, migrations[i].Version, want)
			}
		}
		if migrations[0].Name != "first" {
			t.Errorf("migrations[0].Name = %q, want first", migrations[0].Name)
		}
	})

	t.Run("non-sql files are skipped", func(t *testing.T) {
		runner := NewRunner(nil, migrationFS(map[string]string{
			"001_init.sql": "SELECT 1;",
			"README.md":    "not a migration",
		}), DialectSQLite)

		migrations, err := runner.ReadMigrationFiles()
		if err != nil {
			t.Fatalf("ReadMigrationFiles() error: %v", err)
		}
		if len(migrations) != 1 {
			t.Errorf("got %d migrations, want 1", len(migrations))
		}
	})

	t.Run("malformed filename fails", func(t *testing.T) {
		runner := NewRunner(nil, migrationFS(map[string]string{
			"init.sql": "SELECT 1;",
		}), DialectSQLite)

		if _, err := runner.ReadMigrationFiles(); err == nil {
			t.Error("ReadMigrationFiles() succeeded on malformed name, want error")
		}
	})

	t.Run("duplicate versions fail", func(t *testing.T) {
		runner := NewRunner(nil, migrationFS(map[string]string{
			"001_a.sql": "SELECT 1;",
			"001_b.sql": "SELECT 1;",
		}), DialectSQLite)

		if _, err := runner.ReadMigrationFiles(); err == nil {
			t.Error("ReadMigrationFiles() succeeded on duplicate versions, want error")
		}
	})
}

func TestApplyMigrations(t *testing.T) {
	fsys := migrationFS(map[string]string{
		"001_create.sql": "CREATE TABLE things (id TEXT PRIMARY KEY);",
		"002_extend.sql": "ALTER TABLE things ADD COLUMN label TEXT;",
	})

	t.Run("applies pending and records version", func(t *testing.T) {
		db := openTestDB(t)
		runner := NewRunner(db, fsys, DialectSQLite)

		count, err := runner.ApplyMigrations(nil)
		if err != nil {
			t.Fatalf("ApplyMigrations() error: %v", err)
		}
		if count != 2 {
			t.Errorf("applied %d migrations, want 2", count)
		}

		version, err := runner.GetCurrentVersion()
		if err != nil {
			t.Fatalf("GetCurrentVersion() error: %v", err)
		}
		if version != 2 {
			t.Errorf("version = %d, want 2", version)
		}

		if _, err := db.Exec("INSERT INTO things (id, label) VALUES ('x', 'y')"); err != nil {
			t.Errorf("migrated schema unusable: %v", err)
		}
	})

	t.Run("second run applies nothing", func(t *testing.T) {
		db := openTestDB(t)
		runner := NewRunner(db, fsys, DialectSQLite)

		if _, err := runner.ApplyMigrations(nil); err != nil {
			t.Fatalf("first ApplyMigrations() error: %v", err)
		}
		count, err := runner.ApplyMigrations(nil)
		if err != nil {
			t.Fatalf("second ApplyMigrations() error: %v", err)
		}
		if count != 0 {
			t.Errorf("second run applied %d migrations, want 0", count)
		}
	})

	t.Run("failed migration rolls back its version bump", func(t *testing.T) {
		db := openTestDB(t)
		runner := NewRunner(db, migrationFS(map[string]string{
			"001_good.sql": "CREATE TABLE ok (id TEXT);",
			"002_bad.sql":  "THIS IS NOT SQL;",
		}), DialectSQLite)

		count, err := runner.ApplyMigrations(nil)
		if err == nil {
			t.Fatal("ApplyMigrations() succeeded on broken SQL, want error")
		}
		if count != 1 {
			t.Errorf("applied %d migrations before failing, want 1", count)
		}

		version, _ := runner.GetCurrentVersion()
		if version != 1 {
			t.Errorf("version after failure = %d, want 1", version)
		}
	})

	t.Run("newer database than binary fails", func(t *testing.T) {
		db := openTestDB(t)
		runner := NewRunner(db, fsys, DialectSQLite)
		if err := runner.SetVersion(99); err != nil {
			t.Fatalf("SetVersion() error: %v", err)
		}

		if _, err := runner.ApplyMigrations(nil); err == nil {
			t.Error("ApplyMigrations() succeeded with future schema version, want error")
		}
	})
}

func TestValidateVersion(t *testing.T) {
	fsys := migrationFS(map[string]string{
		"001_create.sql": "CREATE TABLE things (id TEXT PRIMARY KEY);",
	})

	t.Run("out of date schema names the migrate command", func(t *testing.T) {
		db := openTestDB(t)
		runner := NewRunner(db, fsys, DialectSQLite)

		err := runner.ValidateVersion()
		if err == nil {
			t.Fatal("ValidateVersion() on fresh db succeeded, want error")
		}
		if !strings.Contains(err.Error(), "zenfocus migrate") {
			t.Errorf("error %q does not mention the migrate command", err)
		}
	})

	t.Run("current schema passes", func(t *testing.T) {
		db := openTestDB(t)
		runner := NewRunner(db, fsys, DialectSQLite)
		if _, err := runner.ApplyMigrations(nil); err != nil {
			t.Fatalf("ApplyMigrations() error: %v", err)
		}

		if err := runner.ValidateVersion(); err != nil {
			t.Errorf("ValidateVersion() error: %v", err)
		}
	})
}
