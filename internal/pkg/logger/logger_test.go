package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobalLogger(t *testing.T) {
	t.Helper()
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
}

func TestInitMirrorsToLogFile(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		t.Run(env, func(t *testing.T) {
			restoreGlobalLogger(t)
			path := filepath.Join(t.TempDir(), "api.log")

			require.NoError(t, Init(Config{Level: "info", Environment: env, LogFile: path}))
			log.Info().Str("studio", "studio-1").Msg("booking stored")
			log.Debug().Msg("below level")

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"message":"booking stored"`)
			assert.Contains(t, string(data), `"studio":"studio-1"`)
			assert.NotContains(t, string(data), "below level")
		})
	}
}

func TestInitWithUnwritableLogFileKeepsConsole(t *testing.T) {
	restoreGlobalLogger(t)
	path := filepath.Join(t.TempDir(), "missing", "api.log")

	require.NoError(t, Init(Config{Level: "info", Environment: "production", LogFile: path}))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWithRequestIDTagsContextLogger(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")
	assert.NotSame(t, &log.Logger, FromContext(ctx))
	assert.Same(t, &log.Logger, FromContext(context.Background()))
}
