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

const worldItemColumns = `item_id, name, current_owner, status, location, history,
	claim_requirements, special_stats, special_ability, lore,
	is_transferable, can_be_stolen, created_at, updated_at`

// WorldItemRepository implements the world artifact repository for PostgreSQL
type WorldItemRepository struct {
	db *pgxpool.Pool
}

// NewWorldItemRepository creates a new WorldItemRepository
func NewWorldItemRepository(db *pgxpool.Pool) *WorldItemRepository {
	return &WorldItemRepository{db: db}
}

// GetByItemID fetches an artifact by its globally unique item id
func (r *WorldItemRepository) GetByItemID(ctx context.Context, itemID string) (*domain.WorldItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM world_items WHERE item_id = $1`, worldItemColumns)
	item, err := scanWorldItemRow(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// GetAll returns every registered artifact
func (r *WorldItemRepository) GetAll(ctx context.Context) ([]domain.WorldItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM world_items ORDER BY item_id`, worldItemColumns)
	return r.queryWorldItems(ctx, query)
}

// GetUnclaimed returns artifacts that currently have no owner
func (r *WorldItemRepository) GetUnclaimed(ctx context.Context) ([]domain.WorldItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM world_items WHERE status = $1 ORDER BY item_id`, worldItemColumns)
	return r.queryWorldItems(ctx, query, domain.WorldItemUnclaimed)
}

// GetOwnedBy returns the artifacts a character owns
func (r *WorldItemRepository) GetOwnedBy(ctx context.Context, characterID string) ([]domain.WorldItem, error) {
	id, err := parseCharacterUUID(characterID)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM world_items WHERE current_owner = $1 ORDER BY item_id`, worldItemColumns)
	return r.queryWorldItems(ctx, query, id)
}

// Create registers a new artifact
func (r *WorldItemRepository) Create(ctx context.Context, item *domain.WorldItem) error {
	blobs, err := marshalWorldItemBlobs(item)
	if err != nil {
		return err
	}
	owner, err := ownerValue(item.CurrentOwner)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO world_items (item_id, name, current_owner, status, location,
			history, claim_requirements, special_stats, special_ability, lore,
			is_transferable, can_be_stolen)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`
	err = r.db.QueryRow(ctx, query, item.ItemID, item.Name, owner, item.Status,
		blobs.location, blobs.history, blobs.claimRequirements, blobs.specialStats,
		blobs.specialAbility, item.Lore, item.IsTransferable, item.CanBeStolen,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert world item: %w", err)
	}
	return nil
}

// Update persists the whole artifact document, history included, so an
// ownership change and its log entry land together
func (r *WorldItemRepository) Update(ctx context.Context, item *domain.WorldItem) error {
	blobs, err := marshalWorldItemBlobs(item)
	if err != nil {
		return err
	}
	owner, err := ownerValue(item.CurrentOwner)
	if err != nil {
		return err
	}

	query := `
		UPDATE world_items
		SET current_owner = $1, status = $2, location = $3, history = $4,
			claim_requirements = $5, special_stats = $6, special_ability = $7,
			lore = $8, is_transferable = $9, can_be_stolen = $10, updated_at = NOW()
		WHERE item_id = $11
	`
	tag, err := r.db.Exec(ctx, query, owner, item.Status, blobs.location,
		blobs.history, blobs.claimRequirements, blobs.specialStats,
		blobs.specialAbility, item.Lore, item.IsTransferable, item.CanBeStolen,
		item.ItemID)
	if err != nil {
		return fmt.Errorf("failed to update world item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *WorldItemRepository) queryWorldItems(ctx context.Context, query string, args ...any) ([]domain.WorldItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query world items: %w", err)
	}
	defer rows.Close()

	items := []domain.WorldItem{}
	for rows.Next() {
		item, err := scanWorldItemRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func scanWorldItemRow(row pgx.Row) (*domain.WorldItem, error) {
	var (
		item         domain.WorldItem
		owner        *uuid.UUID
		locationJSON []byte
		historyJSON  []byte
		claimJSON    []byte
		statsJSON    []byte
		abilityJSON  []byte
	)

	err := row.Scan(&item.ItemID, &item.Name, &owner, &item.Status,
		&locationJSON, &historyJSON, &claimJSON, &statsJSON, &abilityJSON,
		&item.Lore, &item.IsTransferable, &item.CanBeStolen,
		&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan world item: %w", err)
	}

	if owner != nil {
		item.CurrentOwner = owner.String()
	}
	if err := unmarshalJSON("location", locationJSON, &item.Location); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("history", historyJSON, &item.History); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("claim requirements", claimJSON, &item.ClaimRequirements); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("special stats", statsJSON, &item.SpecialStats); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("special ability", abilityJSON, &item.SpecialAbility); err != nil {
		return nil, err
	}
	return &item, nil
}

type worldItemBlobs struct {
	location          []byte
	history           []byte
	claimRequirements []byte
	specialStats      []byte
	specialAbility    []byte
}

func marshalWorldItemBlobs(item *domain.WorldItem) (*worldItemBlobs, error) {
	location, err := marshalJSON("location", item.Location)
	if err != nil {
		return nil, err
	}
	history, err := marshalJSON("history", item.History)
	if err != nil {
		return nil, err
	}
	claim, err := marshalJSON("claim requirements", item.ClaimRequirements)
	if err != nil {
		return nil, err
	}
	stats, err := marshalJSON("special stats", item.SpecialStats)
	if err != nil {
		return nil, err
	}
	ability, err := marshalJSON("special ability", item.SpecialAbility)
	if err != nil {
		return nil, err
	}
	return &worldItemBlobs{
		location:          location,
		history:           history,
		claimRequirements: claim,
		specialStats:      stats,
		specialAbility:    ability,
	}, nil
}

// ownerValue maps the empty owner to NULL
func ownerValue(characterID string) (*uuid.UUID, error) {
	if characterID == "" {
		return nil, nil
	}
	id, err := parseCharacterUUID(characterID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
