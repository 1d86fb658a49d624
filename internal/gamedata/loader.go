package gamedata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
	"github.com/mirefall/GrimoireBot_Go/internal/logger"
	"github.com/mirefall/GrimoireBot_Go/internal/repository"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateItemID = errors.New("duplicate item id")
	ErrInvalidCatalog  = errors.New("invalid catalog")
)

// Catalog represents the JSON configuration for the item catalog
type Catalog struct {
	Version     string        `json:"version"`
	Description string        `json:"description"`
	Items       []domain.Item `json:"items"`
}

// SyncResult contains the result of syncing the catalog to the database
type SyncResult struct {
	ItemsInserted int
	ItemsUpdated  int
	ItemsSkipped  int
}

// Loader handles loading and validating the item catalog
type Loader interface {
	Load(path string) (*Catalog, error)
	Validate(catalog *Catalog) error
	SyncToDatabase(ctx context.Context, catalog *Catalog, repo repository.Item) (*SyncResult, error)
}

type catalogLoader struct{}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{}
}

// Load reads and parses an item catalog JSON file
func (l *catalogLoader) Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return &catalog, nil
}

// Validate checks the catalog for errors
func (l *catalogLoader) Validate(catalog *Catalog) error {
	if catalog == nil {
		return fmt.Errorf("%w: catalog is nil", ErrInvalidCatalog)
	}
	if len(catalog.Items) == 0 {
		return fmt.Errorf("%w: no items defined", ErrInvalidCatalog)
	}

	itemIDs := make(map[string]bool, len(catalog.Items))
	for i := range catalog.Items {
		if err := l.validateItem(i, &catalog.Items[i], itemIDs); err != nil {
			return err
		}
	}

	return nil
}

func (l *catalogLoader) validateItem(index int, item *domain.Item, itemIDs map[string]bool) error {
	if item.ItemID == "" {
		return fmt.Errorf("%w: item at index %d has empty item_id", ErrInvalidCatalog, index)
	}
	if itemIDs[item.ItemID] {
		return fmt.Errorf("%w: '%s'", ErrDuplicateItemID, item.ItemID)
	}
	itemIDs[item.ItemID] = true

	if item.Name == "" {
		return fmt.Errorf("%w: item '%s' has empty name", ErrInvalidCatalog, item.ItemID)
	}
	if item.Stackable && item.MaxStack < 1 {
		return fmt.Errorf("%w: stackable item '%s' needs max_stack >= 1", ErrInvalidCatalog, item.ItemID)
	}
	if !item.Stackable && item.MaxStack > 1 {
		return fmt.Errorf("%w: non-stackable item '%s' has max_stack > 1", ErrInvalidCatalog, item.ItemID)
	}
	if item.EquipSlot != "" && !item.EquipSlot.IsValid() {
		return fmt.Errorf("%w: item '%s' has unknown equip slot '%s'", ErrInvalidCatalog, item.ItemID, item.EquipSlot)
	}
	if item.Requirements.House != "" && !item.Requirements.House.IsValid() {
		return fmt.Errorf("%w: item '%s' has unknown house requirement '%s'", ErrInvalidCatalog, item.ItemID, item.Requirements.House)
	}
	if item.Price.Buy < 0 || item.Price.Sell < 0 {
		return fmt.Errorf("%w: item '%s' has a negative price", ErrInvalidCatalog, item.ItemID)
	}

	return nil
}

// SyncToDatabase syncs the catalog to the database idempotently
func (l *catalogLoader) SyncToDatabase(ctx context.Context, catalog *Catalog, repo repository.Item) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	existing, err := repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing catalog: %w", err)
	}

	existingByID := make(map[string]*domain.Item, len(existing))
	for i := range existing {
		existingByID[existing[i].ItemID] = &existing[i]
	}

	result := &SyncResult{}
	for i := range catalog.Items {
		item := &catalog.Items[i]

		if current, ok := existingByID[item.ItemID]; ok {
			if reflect.DeepEqual(current, item) {
				result.ItemsSkipped++
				continue
			}
			if err := repo.Upsert(ctx, item); err != nil {
				return nil, fmt.Errorf("failed to update item '%s': %w", item.ItemID, err)
			}
			result.ItemsUpdated++
			log.Info("updated catalog item", "item_id", item.ItemID)
			continue
		}

		if err := repo.Upsert(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to insert item '%s': %w", item.ItemID, err)
		}
		result.ItemsInserted++
		log.Info("inserted catalog item", "item_id", item.ItemID)
	}

	log.Info("catalog sync completed",
		"inserted", result.ItemsInserted,
		"updated", result.ItemsUpdated,
		"skipped", result.ItemsSkipped)

	return result, nil
}
