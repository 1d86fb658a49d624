package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
)

const spellColumns = `character_id, spell_id, spell_name, mastery, times_used,
	unlocked_at, is_quick_slot, quick_slot_position`

// SpellRepository implements the learned-spell repository for PostgreSQL
type SpellRepository struct {
	db *pgxpool.Pool
}

// NewSpellRepository creates a new SpellRepository
func NewSpellRepository(db *pgxpool.Pool) *SpellRepository {
	return &SpellRepository{db: db}
}

// GetByCharacter lists a character's learned spells
func (r *SpellRepository) GetByCharacter(ctx context.Context, characterID string) ([]domain.PlayerSpell, error) {
	id, err := parseCharacterUUID(characterID)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM player_spells
		WHERE character_id = $1
		ORDER BY unlocked_at
	`, spellColumns)
	return r.querySpells(ctx, query, id)
}

// Get fetches one learned spell. Returns domain.ErrSpellNotKnown when the
// character has not learned it.
func (r *SpellRepository) Get(ctx context.Context, characterID, spellID string) (*domain.PlayerSpell, error) {
	id, err := parseCharacterUUID(characterID)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM player_spells WHERE character_id = $1 AND spell_id = $2`, spellColumns)
	spell, err := scanSpellRow(r.db.QueryRow(ctx, query, id, spellID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSpellNotKnown
		}
		return nil, err
	}
	return spell, nil
}

// Create records a newly learned spell
func (r *SpellRepository) Create(ctx context.Context, spell *domain.PlayerSpell) error {
	id, err := parseCharacterUUID(spell.CharacterID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO player_spells (character_id, spell_id, spell_name, mastery,
			times_used, is_quick_slot, quick_slot_position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING unlocked_at
	`
	err = r.db.QueryRow(ctx, query, id, spell.SpellID, spell.Name, spell.Mastery,
		spell.TimesUsed, spell.IsQuickSlot, spell.QuickSlotPosition).Scan(&spell.UnlockedAt)
	if err != nil {
		return fmt.Errorf("failed to insert spell: %w", err)
	}
	return nil
}

// Update persists mastery and usage state
func (r *SpellRepository) Update(ctx context.Context, spell *domain.PlayerSpell) error {
	id, err := parseCharacterUUID(spell.CharacterID)
	if err != nil {
		return err
	}

	query := `
		UPDATE player_spells
		SET mastery = $1, times_used = $2, is_quick_slot = $3, quick_slot_position = $4
		WHERE character_id = $5 AND spell_id = $6
	`
	tag, err := r.db.Exec(ctx, query, spell.Mastery, spell.TimesUsed,
		spell.IsQuickSlot, spell.QuickSlotPosition, id, spell.SpellID)
	if err != nil {
		return fmt.Errorf("failed to update spell: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSpellNotKnown
	}
	return nil
}

// DeleteByCharacter removes every spell a character has learned
func (r *SpellRepository) DeleteByCharacter(ctx context.Context, characterID string) error {
	id, err := parseCharacterUUID(characterID)
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM player_spells WHERE character_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete spells: %w", err)
	}
	return nil
}

// CountKnownBy counts how many characters know a spell
func (r *SpellRepository) CountKnownBy(ctx context.Context, spellID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM player_spells WHERE spell_id = $1`, spellID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count spell holders: %w", err)
	}
	return count, nil
}

// TopMastery returns the highest-mastery holders of a spell
func (r *SpellRepository) TopMastery(ctx context.Context, spellID string, limit int) ([]domain.PlayerSpell, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM player_spells
		WHERE spell_id = $1
		ORDER BY mastery DESC, times_used DESC
		LIMIT $2
	`, spellColumns)
	return r.querySpells(ctx, query, spellID, limit)
}

func (r *SpellRepository) querySpells(ctx context.Context, query string, args ...any) ([]domain.PlayerSpell, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query spells: %w", err)
	}
	defer rows.Close()

	spells := []domain.PlayerSpell{}
	for rows.Next() {
		spell, err := scanSpellRow(rows)
		if err != nil {
			return nil, err
		}
		spells = append(spells, *spell)
	}
	return spells, rows.Err()
}

func scanSpellRow(row pgx.Row) (*domain.PlayerSpell, error) {
	var (
		spell domain.PlayerSpell
		id    uuid.UUID
	)
	err := row.Scan(&id, &spell.SpellID, &spell.Name, &spell.Mastery,
		&spell.TimesUsed, &spell.UnlockedAt, &spell.IsQuickSlot, &spell.QuickSlotPosition)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan spell: %w", err)
	}
	spell.CharacterID = id.String()
	return &spell, nil
}
