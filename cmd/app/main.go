package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mirefall/GrimoireBot_Go/internal/bootstrap"
	"github.com/mirefall/GrimoireBot_Go/internal/character"
	"github.com/mirefall/GrimoireBot_Go/internal/config"
	"github.com/mirefall/GrimoireBot_Go/internal/database"
	"github.com/mirefall/GrimoireBot_Go/internal/handler"
	"github.com/mirefall/GrimoireBot_Go/internal/inventory"
	"github.com/mirefall/GrimoireBot_Go/internal/server"
	"github.com/mirefall/GrimoireBot_Go/internal/sorting"
	"github.com/mirefall/GrimoireBot_Go/internal/spellbook"
	"github.com/mirefall/GrimoireBot_Go/internal/worlditem"
)

// ShutdownTimeout bounds how long graceful shutdown may take
const ShutdownTimeout = 15 * time.Second

func main() {
	// Load configuration (reads .env if present)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration failed: %v\n", err)
		os.Exit(1)
	}

	// Initialize logging (stdout + session file)
	logFile, err := bootstrap.SetupLogger(cfg, handler.Version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger setup failed: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	slog.Info(bootstrap.LogMsgConfigurationLoaded,
		"environment", cfg.Environment,
		"port", cfg.Port)

	ctx := context.Background()

	// Connect to the database and apply pending migrations
	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.Migrate(ctx, dbPool); err != nil {
		slog.Error("Database migration failed", "error", err)
		os.Exit(1)
	}

	// Event bus with retrying publisher and dead-letter file
	eventBus, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Event system initialization failed", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	// Sync game data: item catalog from JSON, fixed world artifacts
	if err := bootstrap.SyncItemCatalog(ctx, cfg.CatalogPath, repos.Item); err != nil {
		slog.Error("Item catalog sync failed", "error", err)
		os.Exit(1)
	}
	if _, err := bootstrap.SeedArtifacts(ctx, repos.WorldItem); err != nil {
		slog.Error("Artifact seeding failed", "error", err)
		os.Exit(1)
	}

	// Services publish through the resilient publisher so a slow or failing
	// subscriber never fails a game action.
	characterService := character.NewService(repos.Character, repos.Spell, resilientPublisher)
	inventoryService := inventory.NewService(repos.Inventory, repos.Item, repos.Character, resilientPublisher)
	spellbookService := spellbook.NewService(repos.Spell, repos.Character, resilientPublisher)
	worldItemService := worlditem.NewService(repos.WorldItem, repos.Character, resilientPublisher)
	sortingService := sorting.NewService(resilientPublisher)

	if err := bootstrap.RegisterEventHandlers(eventBus); err != nil {
		slog.Error("Event handler registration failed", "error", err)
		os.Exit(1)
	}

	handler.InitValidator()

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, dbPool,
		characterService, inventoryService, spellbookService, worldItemService, sortingService)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		SortingService:     sortingService,
		ResilientPublisher: resilientPublisher,
	})
}
