package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/camden-git/trainingbackend/database"
	"github.com/camden-git/trainingbackend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "database", "test.sqlite3")
	db, err := database.InitGormDB(dbPath, database.Options{LogLevel: logger.Silent})
	if err != nil {
		t.Fatalf("failed to init test db: %v", err)
	}
	t.Cleanup(func() { database.CloseGormDB(db) })
	return db
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func day(year int, month time.Month, d int) models.Date {
	return models.NewDate(year, month, d)
}
