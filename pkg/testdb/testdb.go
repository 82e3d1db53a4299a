// Package testdb spins up an isolated in-memory database with the real
// migrations applied, mirroring the production schema closely enough to
// exercise repositories and handlers without a Postgres instance.
package testdb

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"qatardigital.app/configs/configsdatabase"
	"qatardigital.app/database"
)

// New opens a fresh in-memory store, migrates it, and installs it as the
// process database for the duration of the test.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A single connection serializes writers; in-memory sqlite would
	// otherwise hand each pooled connection its own empty database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access test database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.RunMigrationsInOrder(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	configsdatabase.SetDB(db)
	t.Cleanup(func() {
		configsdatabase.SetDB(nil)
		_ = sqlDB.Close()
	})
	return db
}
