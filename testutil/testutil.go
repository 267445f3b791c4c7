// Package testutil opens migrated databases for service tests.
package testutil

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/Fernandolass/frontend-lab-eng-sub000/database"
	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DatabaseURLEnv points the tests at a PostgreSQL database. When unset the
// tests run against an in-memory SQLite database.
const DatabaseURLEnv = "TEST_DATABASE_URL"

const testSchema = "test_specdash"

// projectRoot returns the project root directory by looking for go.mod
func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// SetupTestDB returns a migrated database isolated to the calling test.
// PostgreSQL runs get a dedicated schema dropped on cleanup.
func SetupTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	if root := projectRoot(); root != "" {
		_ = godotenv.Load(filepath.Join(root, ".env"))
	}

	var db *gorm.DB
	if dsn := os.Getenv(DatabaseURLEnv); dsn != "" {
		db = openPostgres(t, dsn)
	} else {
		db = openSQLite(t)
	}

	if err := database.Migrate(db, zap.NewNop()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func openSQLite(t testing.TB) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sqlite handle: %v", err)
	}
	// every pooled connection would otherwise see its own empty database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func openPostgres(t testing.TB, dsn string) *gorm.DB {
	schema := fmt.Sprintf("%s_%d", testSchema, time.Now().UnixNano()%1000000)

	setup, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect for schema setup: %v", err)
	}
	if err := setup.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schema)).Error; err != nil {
		t.Fatalf("failed to create schema %s: %v", schema, err)
	}

	db, err := gorm.Open(postgres.Open(withSearchPath(dsn, schema)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test schema: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		setup.Exec(fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schema))
		if sqlDB, err := setup.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// withSearchPath pins every pooled connection to schema, for both URL and
// keyword/value DSNs
func withSearchPath(dsn, schema string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err == nil {
			q := u.Query()
			q.Set("search_path", schema)
			u.RawQuery = q.Encode()
			return u.String()
		}
	}
	return fmt.Sprintf("%s search_path=%s", dsn, schema)
}
