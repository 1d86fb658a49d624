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
	"github.com/mirefall/GrimoireBot_Go/internal/repository"
)

const inventoryColumns = `record_id, character_id, item_id, item_name, quantity,
	is_equipped, equip_slot, durability, enchantments, obtained_from,
	is_locked, for_sale, sale_price, slot_position, created_at, updated_at`

// querier abstracts the pool and an open transaction so record operations can
// run in either.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InventoryRepository implements the inventory record repository for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// GetByCharacter lists a character's inventory records
func (r *InventoryRepository) GetByCharacter(ctx context.Context, characterID string, query repository.InventoryQuery) ([]domain.InventoryRecord, error) {
	id, err := parseCharacterUUID(characterID)
	if err != nil {
		return nil, err
	}

	sql := fmt.Sprintf(`SELECT %s FROM inventory_records WHERE character_id = $1`, inventoryColumns)
	if query.OnlyEquipped {
		sql += ` AND is_equipped`
	}
	if query.OnlyForSale {
		sql += ` AND for_sale`
	}
	sql += ` ORDER BY slot_position, created_at`

	return queryRecords(ctx, r.db, sql, id)
}

// CountSlots counts the records a character holds
func (r *InventoryRepository) CountSlots(ctx context.Context, characterID string) (int, error) {
	return countSlots(ctx, r.db, characterID)
}

// GetRecord fetches one record by id
func (r *InventoryRepository) GetRecord(ctx context.Context, recordID string) (*domain.InventoryRecord, error) {
	return getRecord(ctx, r.db, recordID)
}

// FindUnequipped returns the character's non-equipped record for an item, or
// nil when none exists
func (r *InventoryRepository) FindUnequipped(ctx context.Context, characterID, itemID string) (*domain.InventoryRecord, error) {
	return findUnequipped(ctx, r.db, characterID, itemID)
}

// CreateRecord inserts a new inventory record
func (r *InventoryRepository) CreateRecord(ctx context.Context, record *domain.InventoryRecord) error {
	return createRecord(ctx, r.db, record)
}

// UpdateRecord persists the mutable state of a record
func (r *InventoryRepository) UpdateRecord(ctx context.Context, record *domain.InventoryRecord) error {
	return updateRecord(ctx, r.db, record)
}

// DeleteRecord removes a record by id
func (r *InventoryRepository) DeleteRecord(ctx context.Context, recordID string) error {
	return deleteRecord(ctx, r.db, recordID)
}

// UnequipSlot clears equipped state on every record the character has in the slot
func (r *InventoryRepository) UnequipSlot(ctx context.Context, characterID string, slot domain.EquipSlot) error {
	id, err := parseCharacterUUID(characterID)
	if err != nil {
		return err
	}

	query := `
		UPDATE inventory_records
		SET is_equipped = FALSE, equip_slot = NULL, updated_at = NOW()
		WHERE character_id = $1 AND equip_slot = $2 AND is_equipped
	`
	if _, err := r.db.Exec(ctx, query, id, slot); err != nil {
		return fmt.Errorf("failed to unequip slot: %w", err)
	}
	return nil
}

// GetMarket lists records currently offered for sale
func (r *InventoryRepository) GetMarket(ctx context.Context, query repository.MarketQuery) ([]domain.InventoryRecord, error) {
	sql := fmt.Sprintf(`SELECT %s FROM inventory_records WHERE for_sale`, inventoryColumns)
	args := []any{}

	if query.ItemID != "" {
		args = append(args, query.ItemID)
		sql += fmt.Sprintf(` AND item_id = $%d`, len(args))
	}
	if query.MaxPrice > 0 {
		args = append(args, query.MaxPrice)
		sql += fmt.Sprintf(` AND sale_price <= $%d`, len(args))
	}
	sql += ` ORDER BY sale_price, updated_at`
	if query.Limit > 0 {
		args = append(args, query.Limit)
		sql += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	return queryRecords(ctx, r.db, sql, args...)
}

// FindHolders reports every character holding an item
func (r *InventoryRepository) FindHolders(ctx context.Context, itemID string) ([]repository.ItemHolding, error) {
	query := `
		SELECT character_id, SUM(quantity), BOOL_OR(is_equipped)
		FROM inventory_records
		WHERE item_id = $1
		GROUP BY character_id
		ORDER BY SUM(quantity) DESC
	`
	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holders: %w", err)
	}
	defer rows.Close()

	holdings := []repository.ItemHolding{}
	for rows.Next() {
		var h repository.ItemHolding
		var id uuid.UUID
		if err := rows.Scan(&id, &h.Quantity, &h.IsEquipped); err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		h.CharacterID = id.String()
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

// MostCommonItems tallies server-wide holdings per item
func (r *InventoryRepository) MostCommonItems(ctx context.Context, limit int) ([]repository.ItemTally, error) {
	query := `
		SELECT item_id, item_name, SUM(quantity), COUNT(DISTINCT character_id)
		FROM inventory_records
		GROUP BY item_id, item_name
		ORDER BY SUM(quantity) DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query item tallies: %w", err)
	}
	defer rows.Close()

	tallies := []repository.ItemTally{}
	for rows.Next() {
		var t repository.ItemTally
		if err := rows.Scan(&t.ItemID, &t.ItemName, &t.TotalQuantity, &t.Owners); err != nil {
			return nil, fmt.Errorf("failed to scan item tally: %w", err)
		}
		tallies = append(tallies, t)
	}
	return tallies, rows.Err()
}

// BeginTx starts a transaction covering inventory records and character balances
func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &inventoryTx{tx: tx}, nil
}

// inventoryTx implements repository.InventoryTx over an open pgx transaction
type inventoryTx struct {
	tx pgx.Tx
}

func (t *inventoryTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *inventoryTx) Rollback(ctx context.Context) error {
	SafeRollback(ctx, t.tx)
	return nil
}

func (t *inventoryTx) GetRecord(ctx context.Context, recordID string) (*domain.InventoryRecord, error) {
	return getRecord(ctx, t.tx, recordID)
}

func (t *inventoryTx) FindUnequipped(ctx context.Context, characterID, itemID string) (*domain.InventoryRecord, error) {
	return findUnequipped(ctx, t.tx, characterID, itemID)
}

func (t *inventoryTx) ListUnequipped(ctx context.Context, characterID, itemID string) ([]domain.InventoryRecord, error) {
	id, err := parseCharacterUUID(characterID)
	if err != nil {
		return nil, err
	}

	sql := fmt.Sprintf(`
		SELECT %s FROM inventory_records
		WHERE character_id = $1 AND item_id = $2 AND NOT is_equipped
		ORDER BY created_at
	`, inventoryColumns)
	return queryRecords(ctx, t.tx, sql, id, itemID)
}

func (t *inventoryTx) CountSlots(ctx context.Context, characterID string) (int, error) {
	return countSlots(ctx, t.tx, characterID)
}

func (t *inventoryTx) CreateRecord(ctx context.Context, record *domain.InventoryRecord) error {
	return createRecord(ctx, t.tx, record)
}

func (t *inventoryTx) UpdateRecord(ctx context.Context, record *domain.InventoryRecord) error {
	return updateRecord(ctx, t.tx, record)
}

func (t *inventoryTx) DeleteRecord(ctx context.Context, recordID string) error {
	return deleteRecord(ctx, t.tx, recordID)
}

// AdjustGalleons moves a character's balance by delta inside the transaction.
// Fails with domain.ErrInsufficientFunds when the balance would go negative.
func (t *inventoryTx) AdjustGalleons(ctx context.Context, characterID string, delta int) error {
	id, err := parseCharacterUUID(characterID)
	if err != nil {
		return err
	}

	query := `
		UPDATE characters
		SET galleons = galleons + $1, updated_at = NOW()
		WHERE character_id = $2 AND galleons + $1 >= 0
	`
	tag, err := t.tx.Exec(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("failed to adjust galleons: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if delta < 0 {
			return domain.ErrInsufficientFunds
		}
		return domain.ErrCharacterNotFound
	}
	return nil
}

// ---- Shared record operations ----

func getRecord(ctx context.Context, q querier, recordID string) (*domain.InventoryRecord, error) {
	id, err := uuid.Parse(recordID)
	if err != nil {
		return nil, fmt.Errorf("invalid record id: %w", err)
	}

	sql := fmt.Sprintf(`SELECT %s FROM inventory_records WHERE record_id = $1`, inventoryColumns)
	record, err := scanRecordRow(q.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return record, nil
}

func findUnequipped(ctx context.Context, q querier, characterID, itemID string) (*domain.InventoryRecord, error) {
	id, err := parseCharacterUUID(characterID)
	if err != nil {
		return nil, err
	}

	sql := fmt.Sprintf(`
		SELECT %s FROM inventory_records
		WHERE character_id = $1 AND item_id = $2 AND NOT is_equipped
		ORDER BY created_at
		LIMIT 1
	`, inventoryColumns)
	record, err := scanRecordRow(q.QueryRow(ctx, sql, id, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

func countSlots(ctx context.Context, q querier, characterID string) (int, error) {
	id, err := parseCharacterUUID(characterID)
	if err != nil {
		return 0, err
	}

	var count int
	err = q.QueryRow(ctx, `SELECT COUNT(*) FROM inventory_records WHERE character_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count inventory slots: %w", err)
	}
	return count, nil
}

func createRecord(ctx context.Context, q querier, record *domain.InventoryRecord) error {
	characterID, err := parseCharacterUUID(record.CharacterID)
	if err != nil {
		return err
	}

	durabilityJSON, enchantmentsJSON, obtainedJSON, err := marshalRecordBlobs(record)
	if err != nil {
		return err
	}

	sql := `
		INSERT INTO inventory_records (character_id, item_id, item_name, quantity,
			is_equipped, equip_slot, durability, enchantments, obtained_from,
			is_locked, for_sale, sale_price, slot_position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING record_id, created_at, updated_at
	`
	err = q.QueryRow(ctx, sql, characterID, record.ItemID, record.ItemName,
		record.Quantity, record.IsEquipped, equipSlotValue(record.EquipSlot),
		durabilityJSON, enchantmentsJSON, obtainedJSON, record.IsLocked,
		record.ForSale, record.SalePrice, record.SlotPosition,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert inventory record: %w", err)
	}
	return nil
}

func updateRecord(ctx context.Context, q querier, record *domain.InventoryRecord) error {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return fmt.Errorf("invalid record id: %w", err)
	}
	characterID, err := parseCharacterUUID(record.CharacterID)
	if err != nil {
		return err
	}

	durabilityJSON, enchantmentsJSON, obtainedJSON, err := marshalRecordBlobs(record)
	if err != nil {
		return err
	}

	sql := `
		UPDATE inventory_records
		SET character_id = $1, quantity = $2, is_equipped = $3, equip_slot = $4,
			durability = $5, enchantments = $6, obtained_from = $7, is_locked = $8,
			for_sale = $9, sale_price = $10, slot_position = $11, updated_at = NOW()
		WHERE record_id = $12
	`
	tag, err := q.Exec(ctx, sql, characterID, record.Quantity, record.IsEquipped,
		equipSlotValue(record.EquipSlot), durabilityJSON, enchantmentsJSON,
		obtainedJSON, record.IsLocked, record.ForSale, record.SalePrice,
		record.SlotPosition, id)
	if err != nil {
		return fmt.Errorf("failed to update inventory record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func deleteRecord(ctx context.Context, q querier, recordID string) error {
	id, err := uuid.Parse(recordID)
	if err != nil {
		return fmt.Errorf("invalid record id: %w", err)
	}

	tag, err := q.Exec(ctx, `DELETE FROM inventory_records WHERE record_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func queryRecords(ctx context.Context, q querier, sql string, args ...any) ([]domain.InventoryRecord, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory records: %w", err)
	}
	defer rows.Close()

	records := []domain.InventoryRecord{}
	for rows.Next() {
		record, err := scanRecordRow(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

func scanRecordRow(row pgx.Row) (*domain.InventoryRecord, error) {
	var (
		record           domain.InventoryRecord
		recordID         uuid.UUID
		characterID      uuid.UUID
		equipSlot        *string
		durabilityJSON   []byte
		enchantmentsJSON []byte
		obtainedJSON     []byte
	)

	err := row.Scan(&recordID, &characterID, &record.ItemID, &record.ItemName,
		&record.Quantity, &record.IsEquipped, &equipSlot, &durabilityJSON,
		&enchantmentsJSON, &obtainedJSON, &record.IsLocked, &record.ForSale,
		&record.SalePrice, &record.SlotPosition, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan inventory record: %w", err)
	}

	record.ID = recordID.String()
	record.CharacterID = characterID.String()
	if equipSlot != nil {
		record.EquipSlot = domain.EquipSlot(*equipSlot)
	}
	if len(durabilityJSON) > 0 {
		record.Durability = &domain.Durability{}
		if err := unmarshalJSON("durability", durabilityJSON, record.Durability); err != nil {
			return nil, err
		}
	}
	if err := unmarshalJSON("enchantments", enchantmentsJSON, &record.Enchantments); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("obtained from", obtainedJSON, &record.ObtainedFrom); err != nil {
		return nil, err
	}
	return &record, nil
}

func marshalRecordBlobs(record *domain.InventoryRecord) (durability, enchantments, obtained []byte, err error) {
	if record.Durability != nil {
		durability, err = marshalJSON("durability", record.Durability)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	enchantments, err = marshalJSON("enchantments", record.Enchantments)
	if err != nil {
		return nil, nil, nil, err
	}
	obtained, err = marshalJSON("obtained from", record.ObtainedFrom)
	if err != nil {
		return nil, nil, nil, err
	}
	return durability, enchantments, obtained, nil
}

// equipSlotValue maps the empty slot to NULL so the partial unique index on
// (character_id, equip_slot) only sees real slots.
func equipSlotValue(slot domain.EquipSlot) *string {
	if slot == "" {
		return nil
	}
	s := string(slot)
	return &s
}
