package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/camden-git/trainingbackend/models"
)

// Options tunes the connection pool and logging of the store.
// Zero values leave the database/sql defaults in place.
type Options struct {
	MaxOpenConns int
	MaxIdleConns int
	BusyTimeout  time.Duration
	LogLevel     logger.LogLevel
}

// ParseLogLevel maps silent, error, warn and info to GORM log levels.
func ParseLogLevel(level string) (logger.LogLevel, error) {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent, nil
	case "error":
		return logger.Error, nil
	case "warn", "":
		return logger.Warn, nil
	case "info":
		return logger.Info, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}

// InitGormDB creates the storage directory, opens the SQLite file with
// foreign key enforcement on every connection, and migrates the schema.
// The returned handle must be released with CloseGormDB.
func InitGormDB(dataSourceName string, opts Options) (*gorm.DB, error) {
	dir := filepath.Dir(dataSourceName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}

	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Warn
	}
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  opts.LogLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(SQLiteDSN(dataSourceName, opts.BusyTimeout)), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database using GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}

	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	enabled, err := ForeignKeysEnabled(context.Background(), sqlDB)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	if !enabled {
		sqlDB.Close()
		return nil, errors.New("sqlite foreign key enforcement could not be enabled")
	}

	mode, err := JournalMode(context.Background(), sqlDB)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	if !strings.EqualFold(mode, "wal") {
		log.Printf("Warning: SQLite journal mode is '%s', expected WAL", mode)
	}

	if err := AutoMigrateModels(db); err != nil {
		sqlDB.Close()
		return nil, err
	}

	log.Printf("GORM Database initialized successfully at %s (journal_mode=%s)", dataSourceName, mode)
	return db, nil
}

// AutoMigrateModels creates the esportista and treino tables when absent.
func AutoMigrateModels(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Athlete{},
		&models.TrainingSession{},
	)
	if err != nil {
		return fmt.Errorf("GORM AutoMigrate failed: %w", err)
	}
	return nil
}

// CloseGormDB closes the connection pool behind db.
func CloseGormDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
