package repository

import (
	"context"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
)

// InventoryQuery filters inventory listings.
type InventoryQuery struct {
	OnlyEquipped bool
	OnlyForSale  bool
}

// MarketQuery filters market listings.
type MarketQuery struct {
	ItemID   string
	MaxPrice int
	Limit    int
}

// ItemHolding reports one character's holding of an item.
type ItemHolding struct {
	CharacterID string
	Quantity    int
	IsEquipped  bool
}

// ItemTally aggregates server-wide holdings of one item.
type ItemTally struct {
	ItemID        string
	ItemName      string
	TotalQuantity int
	Owners        int
}

// Inventory defines the interface for inventory record persistence
type Inventory interface {
	GetByCharacter(ctx context.Context, characterID string, query InventoryQuery) ([]domain.InventoryRecord, error)
	CountSlots(ctx context.Context, characterID string) (int, error)
	GetRecord(ctx context.Context, recordID string) (*domain.InventoryRecord, error)
	// FindUnequipped returns the character's non-equipped record for an item,
	// or nil when none exists.
	FindUnequipped(ctx context.Context, characterID, itemID string) (*domain.InventoryRecord, error)
	CreateRecord(ctx context.Context, record *domain.InventoryRecord) error
	UpdateRecord(ctx context.Context, record *domain.InventoryRecord) error
	DeleteRecord(ctx context.Context, recordID string) error
	// UnequipSlot clears equipped/slot on every record the character has in
	// the slot.
	UnequipSlot(ctx context.Context, characterID string, slot domain.EquipSlot) error

	GetMarket(ctx context.Context, query MarketQuery) ([]domain.InventoryRecord, error)

	// Admin queries
	FindHolders(ctx context.Context, itemID string) ([]ItemHolding, error)
	MostCommonItems(ctx context.Context, limit int) ([]ItemTally, error)

	// BeginTx starts a transaction covering inventory records and character
	// balances, used by trades and market purchases.
	BeginTx(ctx context.Context) (InventoryTx, error)
}

// InventoryTx groups the writes of a trade or purchase so a crash cannot
// leave an item duplicated or galleons half-moved.
type InventoryTx interface {
	Tx
	GetRecord(ctx context.Context, recordID string) (*domain.InventoryRecord, error)
	FindUnequipped(ctx context.Context, characterID, itemID string) (*domain.InventoryRecord, error)
	// ListUnequipped returns every non-equipped record the character holds
	// for an item, oldest first.
	ListUnequipped(ctx context.Context, characterID, itemID string) ([]domain.InventoryRecord, error)
	CountSlots(ctx context.Context, characterID string) (int, error)
	CreateRecord(ctx context.Context, record *domain.InventoryRecord) error
	UpdateRecord(ctx context.Context, record *domain.InventoryRecord) error
	DeleteRecord(ctx context.Context, recordID string) error
	AdjustGalleons(ctx context.Context, characterID string, delta int) error
}
