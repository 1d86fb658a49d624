package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
)

const characterColumns = `character_id, discord_id, discord_username, name, house, title,
	wand, stats, attribute_points, level, experience, total_experience,
	galleons, inventory_slots, equipment, game_stats, status, created_at, updated_at`

// CharacterRepository implements the character repository for PostgreSQL
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// Create inserts a new character. Returns domain.ErrCharacterExists when the
// discord id is already registered.
func (r *CharacterRepository) Create(ctx context.Context, character *domain.Character) error {
	wandJSON, err := marshalJSON("wand", character.Wand)
	if err != nil {
		return err
	}
	statsJSON, err := marshalJSON("stats", character.Stats)
	if err != nil {
		return err
	}
	equipmentJSON, err := marshalJSON("equipment", character.Equipment)
	if err != nil {
		return err
	}
	gameStatsJSON, err := marshalJSON("game stats", character.GameStats)
	if err != nil {
		return err
	}
	statusJSON, err := marshalJSON("status", character.Status)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO characters (discord_id, discord_username, name, house, title,
			wand, stats, attribute_points, level, experience, total_experience,
			galleons, inventory_slots, equipment, game_stats, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING character_id, created_at, updated_at
	`
	err = r.db.QueryRow(ctx, query,
		character.DiscordID, character.DiscordUsername, character.Name,
		character.House, character.Title, wandJSON, statsJSON,
		character.AttributePoints, character.Level, character.Experience,
		character.TotalExperience, character.Galleons, character.InventorySlots,
		equipmentJSON, gameStatsJSON, statusJSON,
	).Scan(&character.ID, &character.CreatedAt, &character.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrCharacterExists
		}
		return fmt.Errorf("failed to insert character: %w", err)
	}
	return nil
}

// GetByDiscordID fetches a character by Discord identity
func (r *CharacterRepository) GetByDiscordID(ctx context.Context, discordID string) (*domain.Character, error) {
	query := fmt.Sprintf(`SELECT %s FROM characters WHERE discord_id = $1`, characterColumns)
	return r.scanCharacter(r.db.QueryRow(ctx, query, discordID))
}

// GetByID fetches a character by its internal ID
func (r *CharacterRepository) GetByID(ctx context.Context, characterID string) (*domain.Character, error) {
	id, err := parseCharacterUUID(characterID)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM characters WHERE character_id = $1`, characterColumns)
	return r.scanCharacter(r.db.QueryRow(ctx, query, id))
}

// Update persists the full mutable state of a character
func (r *CharacterRepository) Update(ctx context.Context, character *domain.Character) error {
	id, err := parseCharacterUUID(character.ID)
	if err != nil {
		return err
	}

	statsJSON, err := marshalJSON("stats", character.Stats)
	if err != nil {
		return err
	}
	equipmentJSON, err := marshalJSON("equipment", character.Equipment)
	if err != nil {
		return err
	}
	gameStatsJSON, err := marshalJSON("game stats", character.GameStats)
	if err != nil {
		return err
	}
	statusJSON, err := marshalJSON("status", character.Status)
	if err != nil {
		return err
	}

	query := `
		UPDATE characters
		SET discord_username = $1, title = $2, stats = $3, attribute_points = $4,
			level = $5, experience = $6, total_experience = $7, galleons = $8,
			inventory_slots = $9, equipment = $10, game_stats = $11, status = $12,
			updated_at = NOW()
		WHERE character_id = $13
	`
	tag, err := r.db.Exec(ctx, query,
		character.DiscordUsername, character.Title, statsJSON,
		character.AttributePoints, character.Level, character.Experience,
		character.TotalExperience, character.Galleons, character.InventorySlots,
		equipmentJSON, gameStatsJSON, statusJSON, id)
	if err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

// Delete removes a character by Discord identity. Inventory records and
// learned spells cascade.
func (r *CharacterRepository) Delete(ctx context.Context, discordID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM characters WHERE discord_id = $1`, discordID)
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

// GetLeaderboard returns the top characters by level, then total experience
func (r *CharacterRepository) GetLeaderboard(ctx context.Context, limit int) ([]domain.Character, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM characters
		ORDER BY level DESC, total_experience DESC
		LIMIT $1
	`, characterColumns)
	return r.queryCharacters(ctx, query, limit)
}

// GetHouseLeaderboard returns the top characters of one house
func (r *CharacterRepository) GetHouseLeaderboard(ctx context.Context, house domain.House, limit int) ([]domain.Character, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM characters
		WHERE house = $1
		ORDER BY level DESC, total_experience DESC
		LIMIT $2
	`, characterColumns)
	return r.queryCharacters(ctx, query, house, limit)
}

// GetAll returns every account
func (r *CharacterRepository) GetAll(ctx context.Context) ([]domain.Character, error) {
	query := fmt.Sprintf(`SELECT %s FROM characters ORDER BY created_at`, characterColumns)
	return r.queryCharacters(ctx, query)
}

func (r *CharacterRepository) queryCharacters(ctx context.Context, query string, args ...any) ([]domain.Character, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query characters: %w", err)
	}
	defer rows.Close()

	characters := []domain.Character{}
	for rows.Next() {
		character, err := scanCharacterRow(rows)
		if err != nil {
			return nil, err
		}
		characters = append(characters, *character)
	}
	return characters, rows.Err()
}

func (r *CharacterRepository) scanCharacter(row pgx.Row) (*domain.Character, error) {
	character, err := scanCharacterRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, err
	}
	return character, nil
}

func scanCharacterRow(row pgx.Row) (*domain.Character, error) {
	var (
		character     domain.Character
		id            uuid.UUID
		wandJSON      []byte
		statsJSON     []byte
		equipmentJSON []byte
		gameStatsJSON []byte
		statusJSON    []byte
	)

	err := row.Scan(&id, &character.DiscordID, &character.DiscordUsername,
		&character.Name, &character.House, &character.Title, &wandJSON,
		&statsJSON, &character.AttributePoints, &character.Level,
		&character.Experience, &character.TotalExperience, &character.Galleons,
		&character.InventorySlots, &equipmentJSON, &gameStatsJSON, &statusJSON,
		&character.CreatedAt, &character.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan character: %w", err)
	}

	character.ID = id.String()
	if err := unmarshalJSON("wand", wandJSON, &character.Wand); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("stats", statsJSON, &character.Stats); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("equipment", equipmentJSON, &character.Equipment); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("game stats", gameStatsJSON, &character.GameStats); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("status", statusJSON, &character.Status); err != nil {
		return nil, err
	}
	return &character, nil
}
