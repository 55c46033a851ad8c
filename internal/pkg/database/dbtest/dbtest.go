// Package dbtest gives integration tests a migrated, throwaway Postgres schema.
package dbtest

import (
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/misk/misk-api/internal/pkg/database"
)

// EnvURL names the variable holding a postgres:// URL for integration tests.
const EnvURL = "TEST_DATABASE_URL"

// Open creates a fresh schema, applies the migrations to it and returns a
// pool bound to it. The schema is dropped when the test ends. The test is
// skipped when no database is configured or reachable.
func Open(t *testing.T) *sqlx.DB {
	t.Helper()

	baseURL := os.Getenv(EnvURL)
	if baseURL == "" {
		t.Skipf("%s not set", EnvURL)
	}

	admin, err := sqlx.Connect("postgres", baseURL)
	if err != nil {
		t.Skipf("db not available: %v", err)
	}

	schema := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	if _, err := admin.Exec(`CREATE SCHEMA ` + schema); err != nil {
		admin.Close()
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() {
		admin.Exec(`DROP SCHEMA IF EXISTS ` + schema + ` CASCADE`)
		admin.Close()
	})

	dsn, err := withSearchPath(baseURL, schema)
	if err != nil {
		t.Fatalf("test database url: %v", err)
	}
	if err := database.Migrate(dsn, migrationsDir(), database.MigrateUp); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Fatalf("connect to test schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func withSearchPath(rawURL, schema string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("search_path", schema)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "migrations", "postgres")
}
