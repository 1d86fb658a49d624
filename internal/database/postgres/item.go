package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
)

// ItemRepository implements the item catalog repository for PostgreSQL.
// Queryable fields are stored as columns; the full definition lives in the
// item_data JSONB blob, which is the source of truth when reading.
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

// GetByItemID fetches a catalog entry by its item id
func (r *ItemRepository) GetByItemID(ctx context.Context, itemID string) (*domain.Item, error) {
	var data []byte
	err := r.db.QueryRow(ctx, `SELECT item_data FROM items WHERE item_id = $1`, itemID).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	var item domain.Item
	if err := unmarshalJSON("item data", data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetAll returns the full catalog
func (r *ItemRepository) GetAll(ctx context.Context) ([]domain.Item, error) {
	return r.queryItems(ctx, `SELECT item_data FROM items ORDER BY item_id`)
}

// Upsert inserts or replaces a catalog entry
func (r *ItemRepository) Upsert(ctx context.Context, item *domain.Item) error {
	data, err := marshalJSON("item data", item)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO items (item_id, name, item_type, rarity, buy_price, required_level, item_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (item_id) DO UPDATE
		SET name = EXCLUDED.name,
			item_type = EXCLUDED.item_type,
			rarity = EXCLUDED.rarity,
			buy_price = EXCLUDED.buy_price,
			required_level = EXCLUDED.required_level,
			item_data = EXCLUDED.item_data
	`
	_, err = r.db.Exec(ctx, query, item.ItemID, item.Name, item.Type,
		item.Rarity, item.Price.Buy, item.Requirements.Level, data)
	if err != nil {
		return fmt.Errorf("failed to upsert item: %w", err)
	}
	return nil
}

// GetShopItems returns purchasable items available at or below a level
func (r *ItemRepository) GetShopItems(ctx context.Context, maxLevel int) ([]domain.Item, error) {
	query := `
		SELECT item_data FROM items
		WHERE buy_price > 0 AND required_level <= $1
		ORDER BY required_level, buy_price
	`
	return r.queryItems(ctx, query, maxLevel)
}

func (r *ItemRepository) queryItems(ctx context.Context, query string, args ...any) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		var item domain.Item
		if err := unmarshalJSON("item data", data, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
