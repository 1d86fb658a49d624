package character

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
	"github.com/mirefall/GrimoireBot_Go/internal/event"
	"github.com/mirefall/GrimoireBot_Go/internal/gamedata"
)

func newTestService() (Service, *FakeRepository, *FakeSpellRepository, *event.MemoryBus) {
	repo := NewFakeRepository()
	spells := NewFakeSpellRepository()
	bus := event.NewMemoryBus()
	return NewService(repo, spells, bus), repo, spells, bus
}

func createTestCharacter(t *testing.T, svc Service, discordID string, house domain.House) *domain.Character {
	t.Helper()
	c, err := svc.CreateCharacter(context.Background(), discordID, "tester", "Tester", house)
	require.NoError(t, err)
	return c
}

func TestCreateCharacter(t *testing.T) {
	svc, _, spells, bus := newTestService()
	ctx := context.Background()

	created := false
	bus.Subscribe(event.CharacterCreated, func(ctx context.Context, e event.Event) error {
		created = true
		return nil
	})

	c, err := svc.CreateCharacter(ctx, "discord-1", "hermione", "Hermione", domain.HouseGryffindor)
	require.NoError(t, err)

	assert.Equal(t, domain.MinLevel, c.Level)
	assert.Equal(t, domain.StartingGalleons, c.Galleons)
	assert.Equal(t, domain.BaseInventorySlots, c.InventorySlots)
	assert.Equal(t, domain.BaseMaxHP, c.Stats.MaxHP)
	assert.Equal(t, domain.BaseMaxMP, c.Stats.MaxMP)
	assert.Equal(t, c.Stats.MaxHP, c.Stats.HP)
	assert.Equal(t, gamedata.TitleForLevel(1), c.Title)
	assert.True(t, c.Status.IsAlive)
	assert.True(t, created, "creation event should be published")

	// Stats are base 10 plus house bonus plus the rolled wand's bonus
	wandBonus := gamedata.WandBonuses(c.Wand)
	houseBonus := gamedata.HouseBonuses(domain.HouseGryffindor)
	for _, key := range domain.StatKeys {
		expected := domain.BaseStatValue + houseBonus[key] + wandBonus[key]
		assert.Equal(t, expected, c.Stats.Get(key), "stat %s", key)
	}

	// Wand parts come from the fixed tables
	assert.GreaterOrEqual(t, c.Wand.Length, gamedata.WandMinLength)
	assert.LessOrEqual(t, c.Wand.Length, gamedata.WandMaxLength)

	// Starter spells granted at mastery 1
	known, err := spells.GetByCharacter(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, known, len(gamedata.StarterSpells))
	for _, s := range known {
		assert.Equal(t, domain.MinMastery, s.Mastery)
	}
}

func TestCreateCharacterDuplicate(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	createTestCharacter(t, svc, "discord-1", domain.HouseRavenclaw)

	_, err := svc.CreateCharacter(ctx, "discord-1", "other", "Other", domain.HouseSlytherin)
	assert.ErrorIs(t, err, domain.ErrCharacterExists)
}

func TestCreateCharacterInvalidHouse(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateCharacter(context.Background(), "discord-1", "x", "X", domain.House("durmstrang"))
	assert.ErrorIs(t, err, domain.ErrInvalidHouse)
}

func TestAddExperienceMultipleLevelUps(t *testing.T) {
	svc, _, _, bus := newTestService()
	ctx := context.Background()

	var levelUp *event.CharacterLevelUpPayloadV1
	bus.Subscribe(event.CharacterLevelUp, func(ctx context.Context, e event.Event) error {
		p, err := event.DecodePayload[event.CharacterLevelUpPayloadV1](e.Payload)
		if err != nil {
			return err
		}
		levelUp = &p
		return nil
	})

	createTestCharacter(t, svc, "discord-1", domain.HouseHufflepuff)

	// 1000 exp from level 1: thresholds 100, 282, 519 -> level 4 with 99 left
	result, err := svc.AddExperience(ctx, "discord-1", 1000, "quest")
	require.NoError(t, err)

	assert.Equal(t, 3, result.LevelsGained)
	assert.Equal(t, 4, result.Character.Level)
	assert.Equal(t, 99, result.Character.Experience)
	assert.Equal(t, 1000, result.Character.TotalExperience)
	assert.Equal(t, 3*domain.LevelUpStatPoints, result.Character.AttributePoints)

	require.NotNil(t, levelUp)
	assert.Equal(t, 1, levelUp.OldLevel)
	assert.Equal(t, 4, levelUp.NewLevel)
	assert.Equal(t, 3, levelUp.LevelsGained)
}

func TestAddExperienceTitleRefresh(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	createTestCharacter(t, svc, "discord-1", domain.HouseSlytherin)

	// Enough to pass level 10 (the thresholds for levels 1..10 sum to 14,264)
	result, err := svc.AddExperience(ctx, "discord-1", 15000, "grant")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.Character.Level, 11)
	assert.Equal(t, gamedata.TitleForLevel(result.Character.Level), result.Character.Title)
	assert.Equal(t, result.Character.Title, result.NewTitle)
}

func TestAddExperienceRejectsNonPositive(t *testing.T) {
	svc, _, _, _ := newTestService()
	createTestCharacter(t, svc, "discord-1", domain.HouseGryffindor)

	_, err := svc.AddExperience(context.Background(), "discord-1", 0, "test")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.AddExperience(context.Background(), "discord-1", -5, "test")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssignAttributePoints(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	c := createTestCharacter(t, svc, "discord-1", domain.HouseRavenclaw)
	baseInt := c.Stats.Intelligence

	_, err := svc.AddExperience(ctx, "discord-1", 100, "test") // one level, 3 points
	require.NoError(t, err)

	updated, err := svc.AssignAttributePoints(ctx, "discord-1", map[domain.StatKey]int{
		domain.StatIntelligence: 2,
		domain.StatLuck:         1,
	})
	require.NoError(t, err)

	growth := gamedata.HouseLevelGrowth(domain.HouseRavenclaw)
	assert.Equal(t, baseInt+growth[domain.StatIntelligence]+2, updated.Stats.Intelligence)
	assert.Equal(t, 0, updated.AttributePoints)
}

func TestAssignAttributePointsInsufficient(t *testing.T) {
	svc, _, _, _ := newTestService()
	createTestCharacter(t, svc, "discord-1", domain.HouseGryffindor)

	_, err := svc.AssignAttributePoints(context.Background(), "discord-1",
		map[domain.StatKey]int{domain.StatStrength: 1})
	assert.ErrorIs(t, err, domain.ErrInsufficientPoints)
}

func TestAssignAttributePointsInvalidStat(t *testing.T) {
	svc, _, _, _ := newTestService()
	createTestCharacter(t, svc, "discord-1", domain.HouseGryffindor)

	_, err := svc.AssignAttributePoints(context.Background(), "discord-1",
		map[domain.StatKey]int{domain.StatKey("charisma"): 1})
	assert.ErrorIs(t, err, domain.ErrInvalidStat)
}

func TestRestRestoresToFull(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	createTestCharacter(t, svc, "discord-1", domain.HouseHufflepuff)

	damaged, err := svc.TakeDamage(ctx, "discord-1", 40)
	require.NoError(t, err)
	assert.Equal(t, domain.BaseMaxHP-40, damaged.Stats.HP)

	rested, err := svc.Rest(ctx, "discord-1")
	require.NoError(t, err)
	assert.Equal(t, rested.Stats.MaxHP, rested.Stats.HP)
	assert.Equal(t, rested.Stats.MaxMP, rested.Stats.MP)

	// Resting at full is a no-op on the values
	again, err := svc.Rest(ctx, "discord-1")
	require.NoError(t, err)
	assert.Equal(t, rested.Stats.HP, again.Stats.HP)
	assert.Equal(t, rested.Stats.MP, again.Stats.MP)
}

func TestTakeDamageDeath(t *testing.T) {
	svc, _, _, _ := newTestService()

	createTestCharacter(t, svc, "discord-1", domain.HouseGryffindor)

	c, err := svc.TakeDamage(context.Background(), "discord-1", 9999)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Stats.HP)
	assert.False(t, c.Status.IsAlive)
	assert.Equal(t, 9999, c.GameStats.TotalDamageReceived)
}

func TestHealClamped(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	createTestCharacter(t, svc, "discord-1", domain.HouseGryffindor)

	_, err := svc.TakeDamage(ctx, "discord-1", 30)
	require.NoError(t, err)

	c, err := svc.Heal(ctx, "discord-1", 100)
	require.NoError(t, err)
	assert.Equal(t, c.Stats.MaxHP, c.Stats.HP)
	assert.Equal(t, 30, c.GameStats.TotalHealing, "only the effective healing counts")
}

func TestAddGalleons(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	createTestCharacter(t, svc, "discord-1", domain.HouseSlytherin)

	c, err := svc.AddGalleons(ctx, "discord-1", 100)
	require.NoError(t, err)
	assert.Equal(t, domain.StartingGalleons+100, c.Galleons)
	assert.Equal(t, 100, c.GameStats.GoldEarned)

	c, err = svc.AddGalleons(ctx, "discord-1", -50)
	require.NoError(t, err)
	assert.Equal(t, domain.StartingGalleons+50, c.Galleons)
	assert.Equal(t, 100, c.GameStats.GoldEarned, "spending does not reduce lifetime earnings")

	_, err = svc.AddGalleons(ctx, "discord-1", -10000)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestRecalculateStatsMatchesLevelUpPath(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	createTestCharacter(t, svc, "discord-1", domain.HouseHufflepuff)

	result, err := svc.AddExperience(ctx, "discord-1", 1000, "test")
	require.NoError(t, err)
	leveled := result.Character
	require.Greater(t, leveled.AttributePoints, 0)

	// Spend a point so the rebuild has an allocation to unwind
	_, err = svc.AssignAttributePoints(ctx, "discord-1", map[domain.StatKey]int{domain.StatStrength: 1})
	require.NoError(t, err)

	recalced, err := svc.RecalculateStats(ctx, "discord-1")
	require.NoError(t, err)

	// Both paths apply the same growth table, so an untouched character
	// recalculates to identical values.
	assert.Equal(t, leveled.Stats.MaxHP, recalced.Stats.MaxHP)
	assert.Equal(t, leveled.Stats.MaxMP, recalced.Stats.MaxMP)
	for _, key := range domain.StatKeys {
		assert.Equal(t, leveled.Stats.Get(key), recalced.Stats.Get(key), "stat %s", key)
	}

	// Allocations reset to baseline, the full pool returns unspent, and the
	// title matches the level.
	assert.Equal(t, (recalced.Level-domain.MinLevel)*domain.LevelUpStatPoints, recalced.AttributePoints)
	assert.Equal(t, gamedata.TitleForLevel(recalced.Level), recalced.Title)
}

func TestLeaderboardOrdering(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	createTestCharacter(t, svc, "discord-1", domain.HouseGryffindor)
	createTestCharacter(t, svc, "discord-2", domain.HouseGryffindor)
	createTestCharacter(t, svc, "discord-3", domain.HouseRavenclaw)

	_, err := svc.AddExperience(ctx, "discord-2", 1000, "test")
	require.NoError(t, err)
	_, err = svc.AddExperience(ctx, "discord-3", 400, "test")
	require.NoError(t, err)

	top, err := svc.GetLeaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "discord-2", top[0].DiscordID)
	assert.Equal(t, "discord-3", top[1].DiscordID)

	house, err := svc.GetHouseLeaderboard(ctx, domain.HouseGryffindor, 10)
	require.NoError(t, err)
	require.Len(t, house, 2)
	assert.Equal(t, "discord-2", house[0].DiscordID)
}

func TestDeleteCharacter(t *testing.T) {
	svc, _, spells, _ := newTestService()
	ctx := context.Background()

	c := createTestCharacter(t, svc, "discord-1", domain.HouseGryffindor)

	require.NoError(t, svc.DeleteCharacter(ctx, "discord-1"))

	_, err := svc.GetByDiscordID(ctx, "discord-1")
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)

	known, err := spells.GetByCharacter(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, known)
}

func TestGetByDiscordIDCaches(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	createTestCharacter(t, svc, "discord-1", domain.HouseGryffindor)

	first, err := svc.GetByDiscordID(ctx, "discord-1")
	require.NoError(t, err)

	// Mutate storage behind the cache; the cached value is served until
	// something invalidates it.
	stored, err := repo.GetByDiscordID(ctx, "discord-1")
	require.NoError(t, err)
	stored.Galleons = 9999
	require.NoError(t, repo.Update(ctx, stored))

	second, err := svc.GetByDiscordID(ctx, "discord-1")
	require.NoError(t, err)
	assert.Equal(t, first.Galleons, second.Galleons)

	// A service mutation invalidates and the next read is fresh
	_, err = svc.AddGalleons(ctx, "discord-1", 1)
	require.NoError(t, err)

	third, err := svc.GetByDiscordID(ctx, "discord-1")
	require.NoError(t, err)
	assert.Equal(t, 10000, third.Galleons)
}
