package migrations

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

// Direction selects which way migrations are applied.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Run applies migrations from sourceURL (e.g. file://migrations) against databaseURL.
// Down rolls back a single step.
func Run(logger *slog.Logger, databaseURL, sourceURL string, dir Direction) error {
	if dir != Up && dir != Down {
		return fmt.Errorf("unknown migration direction %q", dir)
	}

	// Using pgx/v5/stdlib driver to be compatible with the main pool
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	switch dir {
	case Up:
		err = m.Up()
	case Down:
		err = m.Steps(-1)
	}
	noChange := errors.Is(err, migrate.ErrNoChange)
	if err != nil && !noChange {
		return fmt.Errorf("failed to apply %s migrations: %w", dir, err)
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if noChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.", slog.String("direction", string(dir)))
	}
	return nil
}
