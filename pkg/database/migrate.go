package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// MigrationResult reports what RunMigrations did.
type MigrationResult struct {
	Version uint
	Dirty   bool
	Changed bool
}

// Migration directions.
const (
	MigrateUp   = "up"
	MigrateDown = "down"
)

// RunMigrations applies (up) or reverts one step of (down) the migrations found
// at migrationsPath, e.g. "file://migrations".
func RunMigrations(databaseURL, migrationsPath, direction string) (MigrationResult, error) {
	var result MigrationResult

	// migrate needs a database/sql handle; the pgx stdlib driver keeps one driver for both paths.
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return result, fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			slog.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return result, fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return result, fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "postgres", driver)
	if err != nil {
		return result, fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer func() {
		if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
			slog.Error("Error closing migrate instance", slog.Any("source_error", sourceErr), slog.Any("db_error", dbErr))
		}
	}()

	switch direction {
	case MigrateUp:
		err = m.Up()
	case MigrateDown:
		err = m.Steps(-1)
	default:
		return result, fmt.Errorf("unknown migration direction %q", direction)
	}
	result.Changed = !errors.Is(err, migrate.ErrNoChange)
	if err != nil && result.Changed {
		return result, fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return result, fmt.Errorf("failed to read migration version: %w", verr)
	}
	result.Version, result.Dirty = version, dirty
	return result, nil
}
