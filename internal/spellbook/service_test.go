package spellbook

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirefall/GrimoireBot_Go/internal/character"
	"github.com/mirefall/GrimoireBot_Go/internal/domain"
	"github.com/mirefall/GrimoireBot_Go/internal/event"
)

func newTestService() (Service, *character.FakeSpellRepository, *character.FakeRepository, *event.MemoryBus) {
	characters := character.NewFakeRepository()
	spells := character.NewFakeSpellRepository()
	bus := event.NewMemoryBus()
	return NewService(spells, characters, bus), spells, characters, bus
}

func createCharacter(t *testing.T, characters *character.FakeRepository, discordID string, level int) *domain.Character {
	t.Helper()
	c := &domain.Character{
		DiscordID:       discordID,
		DiscordUsername: discordID,
		Name:            "Tester " + discordID,
		House:           domain.HouseHufflepuff,
		Level:           level,
		Stats: domain.CombatStats{
			HP: domain.BaseMaxHP, MaxHP: domain.BaseMaxHP,
			MP: domain.BaseMaxMP, MaxMP: domain.BaseMaxMP,
		},
		Status: domain.Status{IsAlive: true},
	}
	require.NoError(t, characters.Create(context.Background(), c))
	return c
}

func TestLearnSpell(t *testing.T) {
	svc, _, characters, bus := newTestService()
	ctx := context.Background()
	createCharacter(t, characters, "discord-1", 5)

	learned := false
	bus.Subscribe(event.SpellLearned, func(ctx context.Context, e event.Event) error {
		learned = true
		return nil
	})

	require.NoError(t, svc.LearnSpell(ctx, "discord-1", "expelliarmus"))
	assert.True(t, learned)

	view, err := svc.GetSpell(ctx, "discord-1", "expelliarmus")
	require.NoError(t, err)
	assert.Equal(t, domain.MinMastery, view.Mastery)
	assert.Equal(t, "Expelliarmus", view.Name)
	assert.Equal(t, 12, view.MPCost)
}

func TestLearnSpellByIncantation(t *testing.T) {
	svc, _, characters, _ := newTestService()
	ctx := context.Background()
	createCharacter(t, characters, "discord-1", 5)

	// Typed incantations resolve to the canonical spell ID
	require.NoError(t, svc.LearnSpell(ctx, "discord-1", "Wingardium Leviosa"))

	view, err := svc.GetSpell(ctx, "discord-1", "wingardium_leviosa")
	require.NoError(t, err)
	assert.Equal(t, "wingardium_leviosa", view.SpellID)

	result, err := svc.UseSpell(ctx, "discord-1", "WINGARDIUM LEVIOSA")
	require.NoError(t, err)
	assert.Equal(t, 8, result.MPSpent)
}

func TestLearnSpellTwiceIsNoOp(t *testing.T) {
	svc, _, characters, _ := newTestService()
	ctx := context.Background()
	createCharacter(t, characters, "discord-1", 5)

	require.NoError(t, svc.LearnSpell(ctx, "discord-1", "lumos"))
	require.NoError(t, svc.LearnSpell(ctx, "discord-1", "lumos"))

	book, err := svc.GetSpellbook(ctx, "discord-1")
	require.NoError(t, err)
	assert.Len(t, book, 1)
}

func TestLearnSpellGates(t *testing.T) {
	svc, _, characters, _ := newTestService()
	ctx := context.Background()
	createCharacter(t, characters, "discord-1", 1)

	err := svc.LearnSpell(ctx, "discord-1", "expecto_patronum")
	assert.ErrorIs(t, err, domain.ErrRequirementNotMet, "level 12 spell at level 1")

	err = svc.LearnSpell(ctx, "discord-1", "avada_kedavra")
	assert.ErrorIs(t, err, domain.ErrSpellNotFound)
}

func TestUseSpellMasteryGrowth(t *testing.T) {
	svc, _, characters, bus := newTestService()
	ctx := context.Background()
	c := createCharacter(t, characters, "discord-1", 1)
	c.Stats.MP = 1000
	c.Stats.MaxMP = 1000
	require.NoError(t, characters.Update(ctx, c))

	casts := 0
	bus.Subscribe(event.SpellCast, func(ctx context.Context, e event.Event) error {
		casts++
		return nil
	})

	require.NoError(t, svc.LearnSpell(ctx, "discord-1", "nox"))

	// Mastery rises on the 10th use and not before
	for i := 1; i <= 9; i++ {
		result, err := svc.UseSpell(ctx, "discord-1", "nox")
		require.NoError(t, err)
		assert.Equal(t, 1, result.Spell.Mastery)
		assert.False(t, result.MasteryGained)
	}
	result, err := svc.UseSpell(ctx, "discord-1", "nox")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Spell.Mastery)
	assert.True(t, result.MasteryGained)
	assert.Equal(t, 10, result.Spell.TimesUsed)
	assert.Equal(t, 10, casts)

	after, err := characters.GetByDiscordID(ctx, "discord-1")
	require.NoError(t, err)
	assert.Equal(t, 10, after.GameStats.SpellsCast)
	assert.Equal(t, 1000-10*2, after.Stats.MP)
}

func TestUseSpellInsufficientMP(t *testing.T) {
	svc, _, characters, _ := newTestService()
	ctx := context.Background()
	c := createCharacter(t, characters, "discord-1", 1)
	c.Stats.MP = 1
	require.NoError(t, characters.Update(ctx, c))

	require.NoError(t, svc.LearnSpell(ctx, "discord-1", "lumos"))

	_, err := svc.UseSpell(ctx, "discord-1", "lumos")
	assert.ErrorIs(t, err, domain.ErrInsufficientMP)
}

func TestUseSpellNotKnown(t *testing.T) {
	svc, _, characters, _ := newTestService()
	ctx := context.Background()
	createCharacter(t, characters, "discord-1", 10)

	_, err := svc.UseSpell(ctx, "discord-1", "incendio")
	assert.ErrorIs(t, err, domain.ErrSpellNotKnown)
}

func TestTopMasteryAndCount(t *testing.T) {
	svc, spells, characters, _ := newTestService()
	ctx := context.Background()
	c1 := createCharacter(t, characters, "discord-1", 1)
	c2 := createCharacter(t, characters, "discord-2", 1)

	require.NoError(t, spells.Create(ctx, &domain.PlayerSpell{
		CharacterID: c1.ID, SpellID: "lumos", Name: "Lumos", Mastery: 4, TimesUsed: 35,
	}))
	require.NoError(t, spells.Create(ctx, &domain.PlayerSpell{
		CharacterID: c2.ID, SpellID: "lumos", Name: "Lumos", Mastery: 7, TimesUsed: 62,
	}))

	top, err := svc.TopMastery(ctx, "lumos", 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, c2.ID, top[0].CharacterID)

	count, err := svc.CountKnownBy(ctx, "lumos")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = svc.TopMastery(ctx, "crucio", 10)
	assert.ErrorIs(t, err, domain.ErrSpellNotFound)
}
