package worlditem

import (
	"context"
	"sort"
	"time"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of
// repository.WorldItem for testing.
type FakeRepository struct {
	items map[string]*domain.WorldItem
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{items: make(map[string]*domain.WorldItem)}
}

func cloneWorldItem(item *domain.WorldItem) *domain.WorldItem {
	clone := *item
	clone.History = append([]domain.WorldItemEvent(nil), item.History...)
	return &clone
}

func (f *FakeRepository) GetByItemID(ctx context.Context, itemID string) (*domain.WorldItem, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return cloneWorldItem(item), nil
}

func (f *FakeRepository) GetAll(ctx context.Context) ([]domain.WorldItem, error) {
	return f.collect(func(item *domain.WorldItem) bool { return true }), nil
}

func (f *FakeRepository) GetUnclaimed(ctx context.Context) ([]domain.WorldItem, error) {
	return f.collect(func(item *domain.WorldItem) bool {
		return item.Status != domain.WorldItemOwned
	}), nil
}

func (f *FakeRepository) GetOwnedBy(ctx context.Context, characterID string) ([]domain.WorldItem, error) {
	return f.collect(func(item *domain.WorldItem) bool {
		return item.CurrentOwner == characterID
	}), nil
}

func (f *FakeRepository) Create(ctx context.Context, item *domain.WorldItem) error {
	if _, ok := f.items[item.ItemID]; ok {
		return domain.ErrNotAvailable
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	f.items[item.ItemID] = cloneWorldItem(item)
	return nil
}

func (f *FakeRepository) Update(ctx context.Context, item *domain.WorldItem) error {
	if _, ok := f.items[item.ItemID]; !ok {
		return domain.ErrItemNotFound
	}
	clone := cloneWorldItem(item)
	clone.UpdatedAt = time.Now()
	f.items[item.ItemID] = clone
	return nil
}

func (f *FakeRepository) collect(include func(*domain.WorldItem) bool) []domain.WorldItem {
	result := []domain.WorldItem{}
	for _, item := range f.items {
		if include(item) {
			result = append(result, *cloneWorldItem(item))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ItemID < result[j].ItemID })
	return result
}
