package repository

import (
	"context"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
)

// WorldItem defines the interface for unique world artifact persistence.
// ItemID is globally unique; Update persists the whole document including
// the appended history so an ownership change and its log entry land
// together.
type WorldItem interface {
	GetByItemID(ctx context.Context, itemID string) (*domain.WorldItem, error)
	GetAll(ctx context.Context) ([]domain.WorldItem, error)
	GetUnclaimed(ctx context.Context) ([]domain.WorldItem, error)
	GetOwnedBy(ctx context.Context, characterID string) ([]domain.WorldItem, error)
	Create(ctx context.Context, item *domain.WorldItem) error
	Update(ctx context.Context, item *domain.WorldItem) error
}
