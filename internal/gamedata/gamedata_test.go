package gamedata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
)

func TestSpellCatalogConsistent(t *testing.T) {
	seen := map[string]bool{}
	for _, def := range AllSpells() {
		assert.False(t, seen[def.SpellID], "duplicate spell id %s", def.SpellID)
		seen[def.SpellID] = true

		assert.NotEmpty(t, def.Name, "spell %s", def.SpellID)
		assert.NotEmpty(t, def.Description, "spell %s", def.SpellID)
		assert.Greater(t, def.MPCost, 0, "spell %s", def.SpellID)

		found := SpellByID(def.SpellID)
		require.NotNil(t, found)
		assert.Equal(t, def.Name, found.Name)
	}

	// Starters carry no level gate
	for _, def := range StarterSpells {
		assert.Zero(t, def.MinLevel, "starter %s", def.SpellID)
	}

	assert.Nil(t, SpellByID("avada_kedavra"))
}

func TestTitleForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Estudiante de Primer Año"},
		{10, "Estudiante de Primer Año"},
		{11, "Estudiante de Segundo Año"},
		{70, "Estudiante de Séptimo Año"},
		{71, "Mago Graduado"},
		{99, "Mago Maestro"},
		{100, "Archimago Legendario"},
		{0, DefaultTitle},
		{101, DefaultTitle},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TitleForLevel(tt.level), "level %d", tt.level)
	}
}

func TestHouseDataComplete(t *testing.T) {
	for _, house := range domain.Houses {
		info := HouseDetails(house)
		assert.NotEmpty(t, info.Bonus, "house %s bonus", house)
		assert.NotEmpty(t, info.Growth, "house %s growth", house)
		assert.NotEmpty(t, info.Description, "house %s description", house)
		assert.NotEmpty(t, info.SpecialAbility, "house %s ability", house)
		assert.NotZero(t, info.Color, "house %s color", house)
		assert.NotEmpty(t, info.Emoji, "house %s emoji", house)
	}
}

func TestGenerateRandomWand(t *testing.T) {
	for i := 0; i < 50; i++ {
		wand := GenerateRandomWand()

		assert.NotNil(t, findPart(WandWoods, wand.Wood), "wood %q", wand.Wood)
		assert.NotNil(t, findPart(WandCores, wand.Core), "core %q", wand.Core)
		assert.NotNil(t, findPart(WandFlexibilities, wand.Flexibility), "flexibility %q", wand.Flexibility)
		assert.GreaterOrEqual(t, wand.Length, WandMinLength)
		assert.LessOrEqual(t, wand.Length, WandMaxLength)
	}
}

func TestWandBonusesSumParts(t *testing.T) {
	// Elder (+3 int, -1 luck), phoenix (+2 int, +1 wis), quite flexible (+1 wis)
	wand := domain.Wand{
		Wood:        "Saúco",
		Core:        "Pluma de Fénix",
		Flexibility: "Bastante flexible",
	}

	bonuses := WandBonuses(wand)
	assert.Equal(t, 5, bonuses[domain.StatIntelligence])
	assert.Equal(t, 2, bonuses[domain.StatWisdom])
	assert.Equal(t, -1, bonuses[domain.StatLuck])

	// Unknown parts contribute nothing instead of failing
	assert.Empty(t, WandBonuses(domain.Wand{Wood: "Plastic", Core: "String"}))
}

func TestSortingQuestionsWellFormed(t *testing.T) {
	require.NotEmpty(t, SortingQuestions)
	for _, q := range SortingQuestions {
		assert.NotEmpty(t, q.Question, "question %d", q.ID)
		for i, option := range q.Options {
			assert.NotEmpty(t, option.Label, "question %d option %d", q.ID, i)

			total := 0
			for _, points := range option.Points {
				assert.GreaterOrEqual(t, points, 0, "question %d option %d", q.ID, i)
				total += points
			}
			assert.Greater(t, total, 0, "question %d option %d awards nothing", q.ID, i)
		}
	}
}

func TestSeedArtifactsConsistent(t *testing.T) {
	artifacts := SeedArtifacts()
	require.NotEmpty(t, artifacts)

	seen := map[string]bool{}
	for _, a := range artifacts {
		assert.False(t, seen[a.ItemID], "duplicate artifact %s", a.ItemID)
		seen[a.ItemID] = true
		assert.Contains(t, []domain.WorldItemStatus{
			domain.WorldItemUnclaimed, domain.WorldItemOwned, domain.WorldItemLost,
			domain.WorldItemHidden, domain.WorldItemBossDrop,
		}, a.Status, "artifact %s", a.ItemID)
		assert.Empty(t, a.CurrentOwner, "artifact %s seeded with an owner", a.ItemID)
	}
}

func TestLoaderValidate(t *testing.T) {
	valid := func() *Catalog {
		return &Catalog{
			Version: "1.0.0",
			Items: []domain.Item{
				{ItemID: "butterbeer", Name: "Cerveza de Mantequilla", Type: domain.ItemTypeConsumable, Rarity: domain.RarityCommon, Stackable: true, MaxStack: 5},
			},
		}
	}

	loader := NewLoader()
	require.NoError(t, loader.Validate(valid()))

	tests := []struct {
		name   string
		mutate func(c *Catalog)
	}{
		{"empty item id", func(c *Catalog) { c.Items[0].ItemID = "" }},
		{"empty name", func(c *Catalog) { c.Items[0].Name = "" }},
		{"stackable without max_stack", func(c *Catalog) { c.Items[0].MaxStack = 0 }},
		{"non-stackable with max_stack", func(c *Catalog) { c.Items[0].Stackable = false }},
		{"unknown equip slot", func(c *Catalog) { c.Items[0].EquipSlot = "hat" }},
		{"unknown house requirement", func(c *Catalog) { c.Items[0].Requirements.House = "Ilvermorny" }},
		{"negative price", func(c *Catalog) { c.Items[0].Price.Sell = -1 }},
		{"duplicate item id", func(c *Catalog) { c.Items = append(c.Items, c.Items[0]) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, loader.Validate(c))
		})
	}

	assert.Error(t, loader.Validate(nil))
	assert.Error(t, loader.Validate(&Catalog{Version: "1.0.0"}))
}

func TestShippedCatalogIsValid(t *testing.T) {
	loader := NewLoader()
	catalog, err := loader.Load("../../configs/items.json")
	require.NoError(t, err)
	require.NoError(t, loader.Validate(catalog))
	assert.NotEmpty(t, catalog.Version)
}

// fakeItemRepo is a minimal in-memory repository.Item for sync tests.
type fakeItemRepo struct {
	items map[string]domain.Item
}

func (f *fakeItemRepo) GetByItemID(ctx context.Context, itemID string) (*domain.Item, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}

func (f *fakeItemRepo) GetAll(ctx context.Context) ([]domain.Item, error) {
	result := []domain.Item{}
	for _, item := range f.items {
		result = append(result, item)
	}
	return result, nil
}

func (f *fakeItemRepo) Upsert(ctx context.Context, item *domain.Item) error {
	f.items[item.ItemID] = *item
	return nil
}

func (f *fakeItemRepo) GetShopItems(ctx context.Context, maxLevel int) ([]domain.Item, error) {
	return nil, nil
}

func TestSyncToDatabaseIdempotent(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader()
	repo := &fakeItemRepo{items: map[string]domain.Item{}}

	catalog := &Catalog{
		Version: "1.0.0",
		Items: []domain.Item{
			{ItemID: "butterbeer", Name: "Cerveza de Mantequilla", Type: domain.ItemTypeConsumable, Rarity: domain.RarityCommon},
			{ItemID: "sneakoscope", Name: "Chivatoscopio", Type: domain.ItemTypeAccessory, Rarity: domain.RarityUncommon},
		},
	}

	result, err := loader.SyncToDatabase(ctx, catalog, repo)
	require.NoError(t, err)
	assert.Equal(t, 2, result.ItemsInserted)

	// Second sync of identical content touches nothing
	result, err = loader.SyncToDatabase(ctx, catalog, repo)
	require.NoError(t, err)
	assert.Zero(t, result.ItemsInserted)
	assert.Zero(t, result.ItemsUpdated)
	assert.Equal(t, 2, result.ItemsSkipped)

	// A changed item updates exactly that item
	catalog.Items[0].Price.Buy = 3
	result, err = loader.SyncToDatabase(ctx, catalog, repo)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ItemsUpdated)
	assert.Equal(t, 1, result.ItemsSkipped)
}
