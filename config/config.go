package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/camden-git/trainingbackend/database"
	"gorm.io/gorm/logger"
)

const (
	DefaultDatabaseDir  = "database"
	DefaultDatabaseFile = "db.sqlite3"
)

const (
	defaultPort                   = "8080"
	defaultDBMaxOpenConns         = 10
	defaultDBMaxIdleConns         = 5
	defaultDBBusyTimeoutMillis    = 5000
	defaultDBLogLevel             = "warn"
	defaultShutdownTimeoutSeconds = 15
)

type Config struct {
	// database path; its directory is created on startup
	DatabasePath string

	// connection pool and driver settings
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBBusyTimeout  time.Duration
	DBLogLevel     logger.LogLevel // from silent, error, warn or info

	// http server
	Port               string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

func LoadConfig() (Config, error) {
	dbPath := getEnvOrDefault("DATABASE_PATH", filepath.Join(DefaultDatabaseDir, DefaultDatabaseFile))
	absDBPath, err := filepath.Abs(dbPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute path for database '%s': %w", dbPath, err)
	}

	rawLogLevel := getEnvOrDefault("DB_LOG_LEVEL", defaultDBLogLevel)
	logLevel, err := database.ParseLogLevel(rawLogLevel)
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_LOG_LEVEL '%s': %w", rawLogLevel, err)
	}

	port := getEnvOrDefault("PORT", defaultPort)
	if _, err := strconv.Atoi(port); err != nil {
		return Config{}, fmt.Errorf("invalid PORT '%s': %w", port, err)
	}

	cfg := Config{
		DatabasePath:       absDBPath,
		DBMaxOpenConns:     getEnvIntOrDefault("DB_MAX_OPEN_CONNS", defaultDBMaxOpenConns),
		DBMaxIdleConns:     getEnvIntOrDefault("DB_MAX_IDLE_CONNS", defaultDBMaxIdleConns),
		DBBusyTimeout:      time.Duration(getEnvIntOrDefault("DB_BUSY_TIMEOUT_MS", defaultDBBusyTimeoutMillis)) * time.Millisecond,
		DBLogLevel:         logLevel,
		Port:               port,
		CORSAllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
		ShutdownTimeout:    time.Duration(getEnvIntOrDefault("SHUTDOWN_TIMEOUT_SECONDS", defaultShutdownTimeoutSeconds)) * time.Second,
	}

	return cfg, nil
}
