package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/mirefall/GrimoireBot_Go/internal/bootstrap"
	"github.com/mirefall/GrimoireBot_Go/internal/config"
	"github.com/mirefall/GrimoireBot_Go/internal/database"
)

// Setup tool: creates the database if missing, applies migrations, and seeds
// game data. Safe to run repeatedly.
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	ctx := context.Background()

	// 1. Connect to the default 'postgres' database to create the target database
	defaultConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, defaultConnString)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	// 2. Create the database if it does not exist
	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", cfg.DBName)
		if _, err = conn.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", cfg.DBName)); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created successfully.")
	} else {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
	}
	conn.Close(ctx)

	// 3. Connect a pool to the target database and run migrations
	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", cfg.DBName, err)
	}
	defer dbPool.Close()

	fmt.Println("Running migrations...")
	if err := database.Migrate(ctx, dbPool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	fmt.Println("Migrations completed successfully.")

	// 4. Seed game data
	repos := bootstrap.InitializeRepositories(dbPool)

	if err := bootstrap.SyncItemCatalog(ctx, cfg.CatalogPath, repos.Item); err != nil {
		log.Fatalf("Failed to sync item catalog: %v", err)
	}

	seeded, err := bootstrap.SeedArtifacts(ctx, repos.WorldItem)
	if err != nil {
		log.Fatalf("Failed to seed artifacts: %v", err)
	}
	fmt.Printf("Setup complete (%d artifacts seeded).\n", seeded)

	os.Exit(0)
}
