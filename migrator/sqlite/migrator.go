package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// Migrate applies the embedded task and settings schema migrations in order.
// Already applied versions are skipped, so it is safe to call on every boot.
func Migrate(db *sql.DB) error {
	m := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := m.Migrate(migrationFiles, "sql"); err != nil {
		return fmt.Errorf("failed to migrate task schema: %w", err)
	}

	return nil
}
