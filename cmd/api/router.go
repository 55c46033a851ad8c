package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/misk/misk-api/internal/domain/admin"
	"github.com/misk/misk-api/internal/domain/booking"
	"github.com/misk/misk-api/internal/domain/dashboard"
	"github.com/misk/misk-api/internal/domain/equipment"
	"github.com/misk/misk-api/internal/domain/notification"
	"github.com/misk/misk-api/internal/domain/studio"
	uploadDomain "github.com/misk/misk-api/internal/domain/upload"
	"github.com/misk/misk-api/internal/middleware"
	"github.com/misk/misk-api/internal/pkg/logger"
	pkgresponse "github.com/misk/misk-api/internal/pkg/response"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

type routerDeps struct {
	AllowedOrigins []string
	TrustedProxies middleware.TrustedProxies
	Health         pinger

	Auth           func(http.Handler) http.Handler
	BookingLimiter func(http.Handler) http.Handler
	LoginLimiter   func(http.Handler) http.Handler

	Studios       *studio.Handler
	Equipment     *equipment.Handler
	Bookings      *booking.Handler
	Admin         *admin.Handler
	Dashboard     *dashboard.Handler
	Notifications *notification.Handler
	Uploads       *uploadDomain.Handler
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP(d.TrustedProxies))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(d.AllowedOrigins))

	health := healthHandler(d.Health)
	r.Get("/health", health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health)

		r.Mount("/studios", d.Studios.PublicRoutes())
		r.Mount("/equipments", d.Equipment.PublicRoutes())
		r.Mount("/book", d.Bookings.PublicRoutes(d.BookingLimiter))
		r.Mount("/uploads", d.Uploads.PublicRoutes())
		r.Mount("/upload", d.Uploads.AdminRoutes(d.Auth))

		r.Route("/admin", func(r chi.Router) {
			r.Mount("/auth", d.Admin.AuthRoutes(d.Auth, d.LoginLimiter))
			r.Mount("/studios", d.Studios.AdminRoutes(d.Auth))
			r.Mount("/equipments", d.Equipment.AdminRoutes(d.Auth))
			r.Mount("/bookings", d.Bookings.AdminRoutes(d.Auth, d.Notifications.Stream))
			r.Mount("/dashboard", dashboard.Routes(d.Dashboard, d.Auth))
			r.Mount("/notifications", d.Notifications.AdminRoutes(d.Auth))
		})
	})

	return r
}

func healthHandler(db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				logger.FromContext(r.Context()).Error().Err(err).Msg("Health check failed")
				pkgresponse.Error(w, http.StatusServiceUnavailable, "UNAVAILABLE", "Database unavailable")
				return
			}
		}
		pkgresponse.OK(w, map[string]string{"status": "ok"})
	}
}
