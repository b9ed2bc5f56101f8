// Package testdb opens throwaway in-memory databases for handler tests.
package testdb

import (
	"testing"

	"github.com/SyedHasanNawaz/Show-Tracker-Backend/internal/platform"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a migrated in-memory database scoped to one test.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	// A pooled :memory: DSN would hand each connection its own empty
	// database, so pin the pool to a single connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("getting underlying sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := platform.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return db
}
