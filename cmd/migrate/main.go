package main

import (
	"os"

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

	if len(os.Args) < 2 {
		log.Fatal().Msg("Migration direction is required: up, down, step-up or drop")
	}

	if err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsDir, os.Args[1]); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
