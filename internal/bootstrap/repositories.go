package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mirefall/GrimoireBot_Go/internal/database/postgres"
	"github.com/mirefall/GrimoireBot_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Character repository.Character
	Inventory repository.Inventory
	Item      repository.Item
	Spell     repository.Spell
	WorldItem repository.WorldItem
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Character: postgres.NewCharacterRepository(dbPool),
		Inventory: postgres.NewInventoryRepository(dbPool),
		Item:      postgres.NewItemRepository(dbPool),
		Spell:     postgres.NewSpellRepository(dbPool),
		WorldItem: postgres.NewWorldItemRepository(dbPool),
	}
}
