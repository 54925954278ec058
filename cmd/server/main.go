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

	"alcyxob/gym-tracker/internal/api"
	"alcyxob/gym-tracker/internal/config"
	"alcyxob/gym-tracker/internal/repository"
	"alcyxob/gym-tracker/internal/repository/file"
	"alcyxob/gym-tracker/internal/repository/sqlite"
	"alcyxob/gym-tracker/internal/service"
	"alcyxob/gym-tracker/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Gym Tracker Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Snapshot Repository ---
	repo, err := newRepository(cfg.Storage)
	if err != nil {
		log.Fatalf("FATAL: Could not initialize storage: %v", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Printf("ERROR: Failed to close storage: %v", err)
		}
	}()
	log.Printf("Snapshot storage ready (driver=%s).", cfg.Storage.Driver)

	// --- State Store ---
	// Loads the persisted log; absent or corrupted data falls back to a
	// fresh default log without failing startup.
	trackerStore := store.New(context.Background(), repo)

	// --- Services ---
	trackerService := service.NewTrackerService(trackerStore)

	// --- Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, trackerService)

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

// newRepository builds the snapshot persister selected by config.
func newRepository(cfg config.StorageConfig) (repository.SnapshotRepository, error) {
	switch cfg.Driver {
	case "file", "":
		return file.New(cfg.Dir, cfg.Namespace)
	case "sqlite":
		return sqlite.New(cfg.Path, cfg.Namespace)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
