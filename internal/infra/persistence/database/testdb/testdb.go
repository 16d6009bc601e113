// Package testdb opens throwaway SQLite databases for tests.
package testdb

import (
	"path/filepath"
	"testing"

	"hazardmap/config"
	"hazardmap/internal/infra/persistence/database"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a migrated SQLite database living in t's temp dir.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "hazardmap_test.db"),
	}, logger.Default.LogMode(logger.Silent))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
