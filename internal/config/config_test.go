package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringSlice(t *testing.T) {
	assert.Equal(t, []string{}, parseStringSlice(""))
	assert.Equal(t, []string{"http://a", "http://b"}, parseStringSlice("http://a, http://b,"))
}

func TestParseHelpersFallBackToDefaults(t *testing.T) {
	assert.Equal(t, 10*time.Second, parseDuration("soon", 10*time.Second))
	assert.Equal(t, 587, parseInt("x", 587))
	assert.Equal(t, int64(-100123), parseInt64("-100123", 0))
	assert.True(t, parseBool("maybe", true))
}

func TestLoadReadsNotificationSettings(t *testing.T) {
	t.Setenv("NOTIFY_PRIMARY", "sendgrid")
	t.Setenv("NOTIFY_SECONDARY", "telegram")
	t.Setenv("NOTIFY_TIMEOUT", "3s")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("ENV", "production")

	cfg := Load()

	assert.Equal(t, "sendgrid", cfg.NotifyPrimary)
	assert.Equal(t, "telegram", cfg.NotifySecondary)
	assert.Equal(t, 3*time.Second, cfg.NotifyTimeout)
	assert.Equal(t, int64(42), cfg.TelegramChatID)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}

func TestValidateRefusesDefaultSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	cfg := Load()
	require.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.ErrorIs(t, cfg.Validate(), ErrDefaultJWTSecret)

	cfg.Env = "staging"
	assert.ErrorIs(t, cfg.Validate(), ErrDefaultJWTSecret)

	cfg.Env = "development"
	assert.NoError(t, cfg.Validate())
}

func TestValidateSecrets(t *testing.T) {
	assert.ErrorIs(t, (&Config{Env: "development"}).Validate(), ErrMissingJWTSecret)
	assert.ErrorIs(t, (&Config{Env: "production"}).Validate(), ErrMissingJWTSecret)
	assert.NoError(t, (&Config{Env: "production", JWTSecret: "a-long-random-value"}).Validate())
}

func TestLoadReadsTrustedProxies(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.10")

	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.10"}, Load().TrustedProxies)
}
