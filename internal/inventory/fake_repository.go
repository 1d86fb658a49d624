package inventory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
	"github.com/mirefall/GrimoireBot_Go/internal/repository"
)

// FakeRepository is a stateful in-memory implementation of
// repository.Inventory for testing. Balances live in the character repository
// passed at construction so AdjustGalleons affects the same state the service
// reads.
type FakeRepository struct {
	records    map[string]*domain.InventoryRecord // keyed by record ID
	nextID     int
	characters repository.Character
}

func NewFakeRepository(characters repository.Character) *FakeRepository {
	return &FakeRepository{
		records:    make(map[string]*domain.InventoryRecord),
		characters: characters,
	}
}

func (f *FakeRepository) GetByCharacter(ctx context.Context, characterID string, query repository.InventoryQuery) ([]domain.InventoryRecord, error) {
	result := []domain.InventoryRecord{}
	for _, r := range f.records {
		if r.CharacterID != characterID {
			continue
		}
		if query.OnlyEquipped && !r.IsEquipped {
			continue
		}
		if query.OnlyForSale && !r.ForSale {
			continue
		}
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *FakeRepository) CountSlots(ctx context.Context, characterID string) (int, error) {
	count := 0
	for _, r := range f.records {
		if r.CharacterID == characterID {
			count++
		}
	}
	return count, nil
}

func (f *FakeRepository) GetRecord(ctx context.Context, recordID string) (*domain.InventoryRecord, error) {
	r, ok := f.records[recordID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	clone := *r
	return &clone, nil
}

func (f *FakeRepository) FindUnequipped(ctx context.Context, characterID, itemID string) (*domain.InventoryRecord, error) {
	var found *domain.InventoryRecord
	for _, r := range f.records {
		if r.CharacterID == characterID && r.ItemID == itemID && !r.IsEquipped {
			if found == nil || r.ID < found.ID {
				found = r
			}
		}
	}
	if found == nil {
		return nil, nil
	}
	clone := *found
	return &clone, nil
}

func (f *FakeRepository) CreateRecord(ctx context.Context, record *domain.InventoryRecord) error {
	f.nextID++
	record.ID = fmt.Sprintf("rec-%04d", f.nextID)
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	clone := *record
	f.records[record.ID] = &clone
	return nil
}

func (f *FakeRepository) UpdateRecord(ctx context.Context, record *domain.InventoryRecord) error {
	if _, ok := f.records[record.ID]; !ok {
		return domain.ErrItemNotFound
	}
	clone := *record
	clone.UpdatedAt = time.Now()
	f.records[record.ID] = &clone
	return nil
}

func (f *FakeRepository) DeleteRecord(ctx context.Context, recordID string) error {
	if _, ok := f.records[recordID]; !ok {
		return domain.ErrItemNotFound
	}
	delete(f.records, recordID)
	return nil
}

func (f *FakeRepository) UnequipSlot(ctx context.Context, characterID string, slot domain.EquipSlot) error {
	for _, r := range f.records {
		if r.CharacterID == characterID && r.IsEquipped && r.EquipSlot == slot {
			r.IsEquipped = false
			r.EquipSlot = ""
		}
	}
	return nil
}

func (f *FakeRepository) GetMarket(ctx context.Context, query repository.MarketQuery) ([]domain.InventoryRecord, error) {
	result := []domain.InventoryRecord{}
	for _, r := range f.records {
		if !r.ForSale {
			continue
		}
		if query.ItemID != "" && r.ItemID != query.ItemID {
			continue
		}
		if query.MaxPrice > 0 && r.SalePrice > query.MaxPrice {
			continue
		}
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].SalePrice != result[j].SalePrice {
			return result[i].SalePrice < result[j].SalePrice
		}
		return result[i].ID < result[j].ID
	})
	if query.Limit > 0 && len(result) > query.Limit {
		result = result[:query.Limit]
	}
	return result, nil
}

func (f *FakeRepository) FindHolders(ctx context.Context, itemID string) ([]repository.ItemHolding, error) {
	byCharacter := map[string]*repository.ItemHolding{}
	for _, r := range f.records {
		if r.ItemID != itemID {
			continue
		}
		h, ok := byCharacter[r.CharacterID]
		if !ok {
			h = &repository.ItemHolding{CharacterID: r.CharacterID}
			byCharacter[r.CharacterID] = h
		}
		h.Quantity += r.Quantity
		h.IsEquipped = h.IsEquipped || r.IsEquipped
	}

	result := []repository.ItemHolding{}
	for _, h := range byCharacter {
		result = append(result, *h)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Quantity > result[j].Quantity })
	return result, nil
}

func (f *FakeRepository) MostCommonItems(ctx context.Context, limit int) ([]repository.ItemTally, error) {
	byItem := map[string]*repository.ItemTally{}
	owners := map[string]map[string]bool{}
	for _, r := range f.records {
		t, ok := byItem[r.ItemID]
		if !ok {
			t = &repository.ItemTally{ItemID: r.ItemID, ItemName: r.ItemName}
			byItem[r.ItemID] = t
			owners[r.ItemID] = map[string]bool{}
		}
		t.TotalQuantity += r.Quantity
		owners[r.ItemID][r.CharacterID] = true
	}

	result := []repository.ItemTally{}
	for id, t := range byItem {
		t.Owners = len(owners[id])
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].TotalQuantity > result[j].TotalQuantity })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (f *FakeRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	return &fakeTx{repo: f}, nil
}

// fakeTx applies writes directly; Rollback after Commit is a no-op, matching
// the pgx contract the services rely on. It does not snapshot, so a test that
// exercises rollback semantics needs failTx instead.
type fakeTx struct {
	repo      *FakeRepository
	committed bool
}

func (t *fakeTx) Commit(ctx context.Context) error   { t.committed = true; return nil }
func (t *fakeTx) Rollback(ctx context.Context) error { return nil }

func (t *fakeTx) GetRecord(ctx context.Context, recordID string) (*domain.InventoryRecord, error) {
	return t.repo.GetRecord(ctx, recordID)
}

func (t *fakeTx) FindUnequipped(ctx context.Context, characterID, itemID string) (*domain.InventoryRecord, error) {
	return t.repo.FindUnequipped(ctx, characterID, itemID)
}

func (t *fakeTx) ListUnequipped(ctx context.Context, characterID, itemID string) ([]domain.InventoryRecord, error) {
	result := []domain.InventoryRecord{}
	for _, r := range t.repo.records {
		if r.CharacterID == characterID && r.ItemID == itemID && !r.IsEquipped {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (t *fakeTx) CountSlots(ctx context.Context, characterID string) (int, error) {
	return t.repo.CountSlots(ctx, characterID)
}

func (t *fakeTx) CreateRecord(ctx context.Context, record *domain.InventoryRecord) error {
	return t.repo.CreateRecord(ctx, record)
}

func (t *fakeTx) UpdateRecord(ctx context.Context, record *domain.InventoryRecord) error {
	return t.repo.UpdateRecord(ctx, record)
}

func (t *fakeTx) DeleteRecord(ctx context.Context, recordID string) error {
	return t.repo.DeleteRecord(ctx, recordID)
}

func (t *fakeTx) AdjustGalleons(ctx context.Context, characterID string, delta int) error {
	character, err := t.repo.characters.GetByID(ctx, characterID)
	if err != nil {
		return err
	}
	if character.Galleons+delta < 0 {
		return domain.ErrInsufficientFunds
	}
	character.Galleons += delta
	return t.repo.characters.Update(ctx, character)
}

// FakeItemRepository is a stateful in-memory catalog for testing.
type FakeItemRepository struct {
	items map[string]*domain.Item
}

func NewFakeItemRepository(items ...domain.Item) *FakeItemRepository {
	f := &FakeItemRepository{items: make(map[string]*domain.Item)}
	for i := range items {
		clone := items[i]
		f.items[clone.ItemID] = &clone
	}
	return f
}

func (f *FakeItemRepository) GetByItemID(ctx context.Context, itemID string) (*domain.Item, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (f *FakeItemRepository) GetAll(ctx context.Context) ([]domain.Item, error) {
	result := []domain.Item{}
	for _, item := range f.items {
		result = append(result, *item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ItemID < result[j].ItemID })
	return result, nil
}

func (f *FakeItemRepository) Upsert(ctx context.Context, item *domain.Item) error {
	clone := *item
	f.items[clone.ItemID] = &clone
	return nil
}

func (f *FakeItemRepository) GetShopItems(ctx context.Context, maxLevel int) ([]domain.Item, error) {
	result := []domain.Item{}
	for _, item := range f.items {
		if item.Price.Buy > 0 && item.Requirements.Level <= maxLevel {
			result = append(result, *item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ItemID < result[j].ItemID })
	return result, nil
}
