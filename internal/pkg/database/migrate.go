package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

// Migration actions accepted by Migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStepUp = "step-up"
	MigrateDrop   = "drop"
)

// Migrate applies action using the SQL files in dir.
func Migrate(databaseURL, dir, action string) error {
	mig, err := migrate.New("file://"+dir, databaseURL)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}
	defer mig.Close()

	switch action {
	case MigrateUp:
		err = mig.Up()
	case MigrateDown:
		err = mig.Steps(-1)
	case MigrateStepUp:
		err = mig.Steps(1)
	case MigrateDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("unknown migration action %q", action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	version, dirty, verr := mig.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", verr)
	}
	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migrations applied")
	return nil
}
