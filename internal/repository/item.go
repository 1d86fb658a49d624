package repository

import (
	"context"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
)

// Item defines the interface for the static item catalog
type Item interface {
	GetByItemID(ctx context.Context, itemID string) (*domain.Item, error)
	GetAll(ctx context.Context) ([]domain.Item, error)
	// Upsert inserts or replaces a catalog entry; used by the config sync.
	Upsert(ctx context.Context, item *domain.Item) error
	GetShopItems(ctx context.Context, maxLevel int) ([]domain.Item, error)
}
