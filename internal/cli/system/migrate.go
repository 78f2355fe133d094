package system

import (
	"database/sql"
	"fmt"

	"github.com/julianstephens/zenfocus/internal/cli"
	"github.com/julianstephens/zenfocus/internal/migration"
)

// migratable is satisfied by the sqlite and postgres store backends.
type migratable interface {
	Open() error
	GetDB() *sql.DB
	MigrationRunner() (*migration.Runner, error)
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	store, ok := ctx.Store.(migratable)
	if !ok {
		return fmt.Errorf("the configured storage backend does not support migrations")
	}

	// Open without the usual schema version check so out-of-date
	// databases can be brought forward.
	if err := store.Open(); err != nil {
		return err
	}

	if store.GetDB() == nil {
		return fmt.Errorf("database connection is nil")
	}

	runner, err := store.MigrationRunner()
	if err != nil {
		return err
	}

	count, err := runner.ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
