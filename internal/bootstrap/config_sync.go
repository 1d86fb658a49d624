package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mirefall/GrimoireBot_Go/internal/config"
	"github.com/mirefall/GrimoireBot_Go/internal/gamedata"
	"github.com/mirefall/GrimoireBot_Go/internal/repository"
	"github.com/mirefall/GrimoireBot_Go/internal/validation"
)

// SyncItemCatalog loads, validates, and syncs the item catalog configuration
// to the database. It handles the complete lifecycle: schema check → load
// JSON → validate → sync to DB → log results.
func SyncItemCatalog(ctx context.Context, catalogPath string, itemRepo repository.Item) error {
	slog.Info(LogMsgSyncingCatalog)

	// Schema validation catches structural mistakes with field-level paths
	// before the loader's semantic checks run.
	schemaValidator := validation.NewSchemaValidator()
	if err := schemaValidator.ValidateFile(catalogPath, config.ConfigPathItemsSchema); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidCatalog, err)
	}

	loader := gamedata.NewLoader()

	catalog, err := loader.Load(catalogPath)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	if err := loader.Validate(catalog); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidCatalog, err)
	}

	syncResult, err := loader.SyncToDatabase(ctx, catalog, itemRepo)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	slog.Info(LogMsgCatalogSynced,
		"inserted", syncResult.ItemsInserted,
		"updated", syncResult.ItemsUpdated,
		"skipped", syncResult.ItemsSkipped)

	return nil
}

// SeedArtifacts inserts the fixed world artifacts that do not exist yet.
// Existing artifacts keep their state: seeding never resets ownership or
// history.
func SeedArtifacts(ctx context.Context, repo repository.WorldItem) (int, error) {
	slog.Info(LogMsgSeedingArtifacts)

	seeded := 0
	for _, artifact := range gamedata.SeedArtifacts() {
		if _, err := repo.GetByItemID(ctx, artifact.ItemID); err == nil {
			continue
		}
		a := artifact
		if err := repo.Create(ctx, &a); err != nil {
			return seeded, fmt.Errorf("seed artifact %s: %w", artifact.ItemID, err)
		}
		seeded++
	}

	slog.Info(LogMsgArtifactsSeeded, "seeded", seeded)
	return seeded, nil
}
