package repository

import (
	"context"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
)

// Character defines the interface for character persistence.
// Exactly one character exists per Discord identity; Create must fail on a
// duplicate discord id.
type Character interface {
	Create(ctx context.Context, character *domain.Character) error
	GetByDiscordID(ctx context.Context, discordID string) (*domain.Character, error)
	GetByID(ctx context.Context, characterID string) (*domain.Character, error)
	Update(ctx context.Context, character *domain.Character) error
	Delete(ctx context.Context, discordID string) error

	GetLeaderboard(ctx context.Context, limit int) ([]domain.Character, error)
	GetHouseLeaderboard(ctx context.Context, house domain.House, limit int) ([]domain.Character, error)

	// GetAll streams every account; used by administrative grants.
	GetAll(ctx context.Context) ([]domain.Character, error)
}
