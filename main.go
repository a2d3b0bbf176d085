package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camden-git/trainingbackend/config"
	"github.com/camden-git/trainingbackend/database"
	"github.com/camden-git/trainingbackend/handlers"
	"github.com/camden-git/trainingbackend/repository"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func run() error {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log.Printf("Using database: %s", cfg.DatabasePath)
	db, err := database.InitGormDB(cfg.DatabasePath, database.Options{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
		BusyTimeout:  cfg.DBBusyTimeout,
		LogLevel:     cfg.DBLogLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := database.CloseGormDB(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router, err := handlers.NewRouter(handlers.RouterDeps{
		Athletes:       repository.NewAthleteRepository(db),
		Sessions:       repository.NewTrainingSessionRepository(db),
		DB:             sqlDB,
		Registry:       registry,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	serverAddr := ":" + cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Shutting down (timeout %s)", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Printf("Server stopped")
	return nil
}
