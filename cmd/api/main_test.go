package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misk/misk-api/internal/config"
	"github.com/misk/misk-api/internal/domain/admin"
	"github.com/misk/misk-api/internal/domain/booking"
	"github.com/misk/misk-api/internal/domain/dashboard"
	"github.com/misk/misk-api/internal/domain/equipment"
	"github.com/misk/misk-api/internal/domain/notification"
	"github.com/misk/misk-api/internal/domain/studio"
	uploadDomain "github.com/misk/misk-api/internal/domain/upload"
	"github.com/misk/misk-api/internal/pkg/jwt"
	"github.com/misk/misk-api/internal/pkg/password"
	"github.com/misk/misk-api/internal/pkg/storage"
)

type pingStub struct{ err error }

func (p pingStub) PingContext(context.Context) error { return p.err }

func passthrough(next http.Handler) http.Handler { return next }

func testDeps(t *testing.T, health pinger) routerDeps {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir(), "/api/uploads")
	require.NoError(t, err)

	adminSvc := admin.NewService(admin.Credentials{Username: "admin"}, jwt.NewService("secret", time.Hour), nil)
	bookingSvc := booking.NewService(nil, nil, nil)
	hub := notification.NewHubWithInstanceID(nil, "test")

	return routerDeps{
		Health:         health,
		Auth:           passthrough,
		BookingLimiter: passthrough,
		LoginLimiter:   passthrough,
		Studios:        studio.NewHandler(studio.NewService(nil, nil)),
		Equipment:      equipment.NewHandler(equipment.NewService(nil)),
		Bookings:       booking.NewHandler(bookingSvc),
		Admin:          admin.NewHandler(adminSvc),
		Dashboard:      dashboard.NewHandler(dashboard.NewService(nil, bookingSvc)),
		Notifications:  notification.NewHandler(hub, nil, nil),
		Uploads:        uploadDomain.NewHandler(uploadDomain.NewService(store, nil)),
	}
}

func TestRouterRegistersAPIRoutes(t *testing.T) {
	r, ok := newRouter(testDeps(t, nil)).(chi.Routes)
	require.True(t, ok)

	got := map[string]bool{}
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got[method+" "+strings.TrimSuffix(route, "/")] = true
		return nil
	})
	require.NoError(t, err)

	for _, want := range []string{
		"GET /health",
		"GET /api/health",
		"GET /api/studios",
		"GET /api/studios/{id}",
		"GET /api/equipments",
		"POST /api/book",
		"POST /api/admin/auth/login",
		"POST /api/admin/auth/logout",
		"GET /api/admin/auth/me",
		"GET /api/admin/studios",
		"POST /api/admin/studios",
		"PUT /api/admin/studios/{id}",
		"DELETE /api/admin/studios/{id}",
		"GET /api/admin/equipments",
		"POST /api/admin/equipments",
		"PUT /api/admin/equipments/{id}",
		"DELETE /api/admin/equipments/{id}",
		"GET /api/admin/bookings",
		"GET /api/admin/bookings/stream",
		"GET /api/admin/bookings/{id}",
		"DELETE /api/admin/bookings/{id}",
		"GET /api/admin/dashboard",
		"GET /api/admin/notifications/status",
		"POST /api/upload/images",
		"GET /api/uploads/*",
	} {
		assert.True(t, got[want], "missing route %s", want)
	}
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(testDeps(t, pingStub{})).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	newRouter(testDeps(t, pingStub{err: errors.New("down")})).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestNewTransport(t *testing.T) {
	cfg := &config.Config{}

	for name, want := range map[string]string{
		"smtp":     "smtp",
		"resend":   "resend",
		"sendgrid": "sendgrid",
		"twilio":   "twilio",
		"telegram": "telegram",
		"fcm":      "fcm",
	} {
		tr, err := newTransport(name, cfg)
		require.NoError(t, err, name)
		require.NotNil(t, tr, name)
		assert.Equal(t, want, tr.Name())
	}

	tr, err := newTransport("none", cfg)
	assert.NoError(t, err)
	assert.Nil(t, tr)

	_, err = newTransport("pigeon", cfg)
	assert.Error(t, err)
}

func TestAdminPasswordHash(t *testing.T) {
	hash, err := adminPasswordHash(&config.Config{AdminPassword: "plain-secret"})
	require.NoError(t, err)
	assert.True(t, password.Verify("plain-secret", hash))

	_, err = adminPasswordHash(&config.Config{AdminPasswordHash: "not-a-hash"})
	assert.Error(t, err)

	hash, err = adminPasswordHash(&config.Config{})
	require.NoError(t, err)
	assert.Empty(t, hash)
}

func TestNewStorage(t *testing.T) {
	s, err := newStorage(context.Background(), &config.Config{StorageDriver: "local", UploadDir: t.TempDir(), UploadPublicURL: "/api/uploads"})
	require.NoError(t, err)
	assert.Equal(t, "/api/uploads/a.png", s.GetURL("a.png"))

	_, err = newStorage(context.Background(), &config.Config{StorageDriver: "ftp"})
	assert.Error(t, err)
}

func TestToNotice(t *testing.T) {
	created := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	n := toNotice(&booking.Booking{
		ID:         4,
		StudioID:   "studio-1",
		StudioName: "Studio Podcast Pro",
		FirstName:  "Amine",
		Message:    sql.NullString{String: "Bonjour, samedi ?", Valid: true},
		CreatedAt:  created,
	})

	assert.Equal(t, int64(4), n.ID)
	assert.Equal(t, "Studio Podcast Pro", n.StudioName)
	assert.Equal(t, "Bonjour, samedi ?", n.Message)
	assert.Equal(t, created, n.CreatedAt)
}
