package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/misk/misk-api/internal/config"
	"github.com/misk/misk-api/internal/pkg/database"
	"github.com/misk/misk-api/internal/pkg/logger"
)

func main() {
	cfg := config.Load()
	if err := logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env}); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise logger")
	}

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	if err := seed(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}
	log.Info().Msg("Database seeding completed")
}

// seed replaces the catalog with the demo studios and equipment.
// Existing bookings are removed with their studios.
func seed(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM studios`); err != nil {
		return fmt.Errorf("clear studios: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM equipments`); err != nil {
		return fmt.Errorf("clear equipments: %w", err)
	}

	ids := make(map[string]int64, len(equipmentData))
	for _, e := range equipmentData {
		var id int64
		err := tx.QueryRowxContext(ctx,
			`INSERT INTO equipments (name, type, description) VALUES ($1, $2, $3) RETURNING id`,
			e.Name, e.Type, e.Description,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert equipment %q: %w", e.Name, err)
		}
		ids[e.Name] = id
		log.Info().Int64("id", id).Str("name", e.Name).Str("type", e.Type).Msg("Equipment inserted")
	}

	for _, s := range studioData {
		refs, err := equipmentRefs(s.Equipment, ids)
		if err != nil {
			return fmt.Errorf("studio %s: %w", s.ID, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO studios (id, name, area, category, description, images, equipment, price)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			s.ID, s.Name, s.Area, s.Category, s.Description, pq.Array(s.Images), pq.Array(refs), s.Price,
		)
		if err != nil {
			return fmt.Errorf("insert studio %s: %w", s.ID, err)
		}
		log.Info().Str("id", s.ID).Str("category", s.Category).Str("price", s.Price).Msg("Studio inserted")
	}

	return tx.Commit()
}

// equipmentRefs maps equipment names to the stored id strings.
func equipmentRefs(names []string, ids map[string]int64) ([]string, error) {
	refs := make([]string, 0, len(names))
	for _, name := range names {
		id, ok := ids[name]
		if !ok {
			return nil, fmt.Errorf("unknown equipment %q", name)
		}
		refs = append(refs, strconv.FormatInt(id, 10))
	}
	return refs, nil
}
