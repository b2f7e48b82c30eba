package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"path"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/allisson/sharelink/internal/database"
)

// migrationsSourceURL returns the file source holding the migrations for driver.
func migrationsSourceURL(baseDir, driver string) (string, error) {
	switch driver {
	case database.DriverPostgres:
		return "file://" + path.Join(baseDir, "postgresql"), nil
	case database.DriverMySQL:
		return "file://" + path.Join(baseDir, "mysql"), nil
	default:
		return "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// migrationsDatabaseURL adapts a go-sql-driver DSN to the URL form golang-migrate expects.
// PostgreSQL connection strings are already URLs.
func migrationsDatabaseURL(driver, connectionString string) string {
	if driver == database.DriverMySQL {
		return "mysql://" + connectionString
	}
	return connectionString
}

// RunMigrations applies every pending migration for the configured driver. Having nothing to
// apply is not an error.
func RunMigrations(logger *slog.Logger, baseDir, driver, connectionString string) error {
	sourceURL, err := migrationsSourceURL(baseDir, driver)
	if err != nil {
		return err
	}

	logger.Info("running database migrations",
		slog.String("driver", driver),
		slog.String("source", sourceURL),
	)

	m, err := migrate.New(sourceURL, migrationsDatabaseURL(driver, connectionString))
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}
