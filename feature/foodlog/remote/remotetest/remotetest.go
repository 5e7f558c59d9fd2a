// Package remotetest opens throwaway remote stores for tests.
package remotetest

import (
	"testing"
	"time"

	"better-food-logs/core/database"
	"better-food-logs/feature/foodlog/remote"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewDB opens a private in-memory sqlite database with the remote schema
// migrated.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	if err != nil {
		t.Fatalf("Failed to open sqlite db: %v", err)
	}
	if err := remote.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewStore returns a GormStore over a fresh database.
func NewStore(t testing.TB) (*remote.GormStore, *gorm.DB) {
	t.Helper()
	db := NewDB(t)
	return remote.NewGormStore(db, 5*time.Second, nil), db
}
