package store

import (
	"context"
	"fmt"
	"os"
	"testing"

	"call-insights-server/internal/observability"

	"github.com/jmoiron/sqlx"
)

// TestDB wraps a live database connection for store tests.
type TestDB struct {
	db     *sqlx.DB
	logger *observability.Logger
	Store  Store
}

// SetupTestDB connects to the database named by the TEST_DB_* environment
// variables and applies the schema. Tests are skipped when no test database
// is reachable, so the suite stays runnable without infrastructure.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	host := getenvDefault("TEST_DB_HOST", "localhost")
	port := getenvDefault("TEST_DB_PORT", "5432")
	user := getenvDefault("TEST_DB_USER", "calls_user")
	pass := getenvDefault("TEST_DB_PASSWORD", "calls_password")
	name := getenvDefault("TEST_DB_NAME", "calls_db")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, pass, host, port, name)

	db, err := sqlx.Open("pgx", connStr)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("test database unreachable: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	logger := observability.NewLogger()
	s := Store{db: db, logger: logger}
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	return &TestDB{db: db, logger: logger, Store: s}
}

func getenvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
