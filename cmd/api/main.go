package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/misk/misk-api/internal/config"
	"github.com/misk/misk-api/internal/domain/admin"
	"github.com/misk/misk-api/internal/domain/booking"
	"github.com/misk/misk-api/internal/domain/dashboard"
	"github.com/misk/misk-api/internal/domain/equipment"
	"github.com/misk/misk-api/internal/domain/notification"
	"github.com/misk/misk-api/internal/domain/studio"
	uploadDomain "github.com/misk/misk-api/internal/domain/upload"
	"github.com/misk/misk-api/internal/middleware"
	"github.com/misk/misk-api/internal/pkg/database"
	"github.com/misk/misk-api/internal/pkg/imaging"
	"github.com/misk/misk-api/internal/pkg/jwt"
	"github.com/misk/misk-api/internal/pkg/logger"
	"github.com/misk/misk-api/internal/pkg/password"
	"github.com/misk/misk-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	if err := logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env, LogFile: cfg.LogFile}); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise logger")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Str("env", cfg.Env).Msg("Invalid configuration")
	}
	if cfg.JWTSecret == config.DefaultJWTSecret {
		log.Warn().Msg("Using the development JWT_SECRET")
	}

	trustedProxies, err := middleware.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid TRUSTED_PROXIES")
	}

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Misk Studios API")

	if cfg.AutoMigrate {
		if err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsDir, database.MigrateUp); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	ctx := context.Background()

	// ---------- Storage ----------
	fileStorage, err := newStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise file storage")
	}

	// ---------- Notifications ----------
	primary, err := newTransport(cfg.NotifyPrimary, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("transport", cfg.NotifyPrimary).Msg("Failed to create primary notification transport")
	}
	secondary, err := newTransport(cfg.NotifySecondary, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("transport", cfg.NotifySecondary).Msg("Failed to create secondary notification transport")
	}
	dispatcher := notification.NewDispatcher(primary, secondary, notification.Recipient{
		Email: cfg.AdminEmail,
		Name:  "Misk Studios",
	}, cfg.NotifyTimeout)

	hub := notification.NewHub(redis)
	go hub.Run()
	defer hub.Shutdown()

	// ---------- Admin session ----------
	passwordHash, err := adminPasswordHash(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash admin password")
	}
	jwtService := jwt.NewService(cfg.JWTSecret, cfg.AdminSessionTTL)
	adminService := admin.NewService(admin.Credentials{
		Username:     cfg.AdminUsername,
		PasswordHash: passwordHash,
	}, jwtService, admin.NewRedisSessionStore(redis))

	// ---------- Domains ----------
	equipmentService := equipment.NewService(equipment.NewRepository(db))
	studioService := studio.NewService(studio.NewRepository(db), equipmentService)
	bookingService := booking.NewService(
		booking.NewRepository(db),
		&bookingNotifier{dispatcher: dispatcher},
		&bookingPublisher{hub: hub},
	)
	dashboardService := dashboard.NewService(dashboard.NewRepository(db), bookingService)
	uploadService := uploadDomain.NewService(fileStorage, imaging.NewProcessor(imaging.Config{
		MaxDimension: cfg.UploadMaxDimension,
		Quality:      imaging.DefaultConfig().Quality,
	}))

	counter := middleware.NewRedisWindowCounter(redis)

	router := newRouter(routerDeps{
		AllowedOrigins: cfg.AllowedOrigins,
		TrustedProxies: trustedProxies,
		Health:         db,
		Auth:           middleware.Auth(adminService),
		BookingLimiter: middleware.RateLimit(counter, "book", cfg.BookingRateLimit, cfg.BookingRateWindow),
		LoginLimiter:   middleware.RateLimit(counter, "admin_login", loginRateLimit, loginRateWindow),
		Studios:        studio.NewHandler(studioService),
		Equipment:      equipment.NewHandler(equipmentService),
		Bookings:       booking.NewHandler(bookingService),
		Admin:          admin.NewHandler(adminService),
		Dashboard:      dashboard.NewHandler(dashboardService),
		Notifications:  notification.NewHandler(hub, dispatcher, cfg.AllowedOrigins),
		Uploads:        uploadDomain.NewHandler(uploadService),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

const (
	loginRateLimit  = 10
	loginRateWindow = 15 * time.Minute
)

// adminPasswordHash prefers ADMIN_PASSWORD_HASH and hashes ADMIN_PASSWORD otherwise.
func adminPasswordHash(cfg *config.Config) (string, error) {
	if cfg.AdminPasswordHash != "" {
		if !password.IsHash(cfg.AdminPasswordHash) {
			return "", errors.New("ADMIN_PASSWORD_HASH is not a bcrypt hash")
		}
		return cfg.AdminPasswordHash, nil
	}
	if cfg.AdminPassword == "" {
		log.Warn().Msg("No admin password configured, admin login disabled")
		return "", nil
	}
	if cfg.IsProduction() {
		log.Warn().Msg("ADMIN_PASSWORD is set in plain text, prefer ADMIN_PASSWORD_HASH")
	}
	return password.Hash(cfg.AdminPassword)
}

func newStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.StorageDriver {
	case "s3":
		return storage.NewS3Storage(ctx, storage.S3Config{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Bucket:          cfg.S3BucketName,
			PublicURL:       cfg.S3PublicURL,
		})
	case "", "local":
		return storage.NewLocalStorage(cfg.UploadDir, cfg.UploadPublicURL)
	default:
		return nil, errors.New("unknown STORAGE_DRIVER " + cfg.StorageDriver)
	}
}
