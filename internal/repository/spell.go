package repository

import (
	"context"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
)

// Spell defines the interface for learned-spell persistence.
// (character, spell id) is unique; Create must fail on a duplicate pair.
type Spell interface {
	GetByCharacter(ctx context.Context, characterID string) ([]domain.PlayerSpell, error)
	Get(ctx context.Context, characterID, spellID string) (*domain.PlayerSpell, error)
	Create(ctx context.Context, spell *domain.PlayerSpell) error
	Update(ctx context.Context, spell *domain.PlayerSpell) error
	DeleteByCharacter(ctx context.Context, characterID string) error

	CountKnownBy(ctx context.Context, spellID string) (int, error)
	TopMastery(ctx context.Context, spellID string, limit int) ([]domain.PlayerSpell, error)
}
