package postgresql

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // "file://" migrations source
)

// Migrate applies all pending schema migrations found under migrationsPath
// (e.g. "file://internal/socialdb/postgresql/migrations"), grounded on the
// teacher's metamorph/store/postgresql test-suite bootstrap.
func (s *Store) Migrate(migrationsPath string) error {
	driver, err := migratepostgres.WithInstance(s.db.DB, &migratepostgres.Config{MigrationsTable: "socialdb_schema_migrations"})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
