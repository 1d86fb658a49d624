package character

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of
// repository.Character for testing. It must remain in this package to avoid
// import cycles with service tests.
type FakeRepository struct {
	characters map[string]*domain.Character // keyed by character ID
	nextID     int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		characters: make(map[string]*domain.Character),
	}
}

func (f *FakeRepository) Create(ctx context.Context, character *domain.Character) error {
	for _, c := range f.characters {
		if c.DiscordID == character.DiscordID {
			return domain.ErrCharacterExists
		}
	}

	f.nextID++
	character.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", f.nextID)
	character.CreatedAt = time.Now()
	character.UpdatedAt = character.CreatedAt

	clone := *character
	f.characters[character.ID] = &clone
	return nil
}

func (f *FakeRepository) GetByDiscordID(ctx context.Context, discordID string) (*domain.Character, error) {
	for _, c := range f.characters {
		if c.DiscordID == discordID {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCharacterNotFound
}

func (f *FakeRepository) GetByID(ctx context.Context, characterID string) (*domain.Character, error) {
	c, ok := f.characters[characterID]
	if !ok {
		return nil, domain.ErrCharacterNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *FakeRepository) Update(ctx context.Context, character *domain.Character) error {
	if _, ok := f.characters[character.ID]; !ok {
		return domain.ErrCharacterNotFound
	}
	clone := *character
	clone.UpdatedAt = time.Now()
	f.characters[character.ID] = &clone
	return nil
}

func (f *FakeRepository) Delete(ctx context.Context, discordID string) error {
	for id, c := range f.characters {
		if c.DiscordID == discordID {
			delete(f.characters, id)
			return nil
		}
	}
	return domain.ErrCharacterNotFound
}

func (f *FakeRepository) GetAll(ctx context.Context) ([]domain.Character, error) {
	result := []domain.Character{}
	for _, c := range f.characters {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *FakeRepository) GetLeaderboard(ctx context.Context, limit int) ([]domain.Character, error) {
	return f.leaderboard(limit, func(c *domain.Character) bool { return true }), nil
}

func (f *FakeRepository) GetHouseLeaderboard(ctx context.Context, house domain.House, limit int) ([]domain.Character, error) {
	return f.leaderboard(limit, func(c *domain.Character) bool { return c.House == house }), nil
}

func (f *FakeRepository) leaderboard(limit int, include func(*domain.Character) bool) []domain.Character {
	result := []domain.Character{}
	for _, c := range f.characters {
		if include(c) {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Level != result[j].Level {
			return result[i].Level > result[j].Level
		}
		return result[i].TotalExperience > result[j].TotalExperience
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// FakeSpellRepository is a stateful in-memory implementation of
// repository.Spell for testing.
type FakeSpellRepository struct {
	spells map[string]*domain.PlayerSpell // keyed by characterID:spellID
}

func NewFakeSpellRepository() *FakeSpellRepository {
	return &FakeSpellRepository{
		spells: make(map[string]*domain.PlayerSpell),
	}
}

func spellKey(characterID, spellID string) string {
	return characterID + ":" + spellID
}

func (f *FakeSpellRepository) GetByCharacter(ctx context.Context, characterID string) ([]domain.PlayerSpell, error) {
	result := []domain.PlayerSpell{}
	for _, s := range f.spells {
		if s.CharacterID == characterID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SpellID < result[j].SpellID })
	return result, nil
}

func (f *FakeSpellRepository) Get(ctx context.Context, characterID, spellID string) (*domain.PlayerSpell, error) {
	s, ok := f.spells[spellKey(characterID, spellID)]
	if !ok {
		return nil, domain.ErrSpellNotKnown
	}
	clone := *s
	return &clone, nil
}

func (f *FakeSpellRepository) Create(ctx context.Context, spell *domain.PlayerSpell) error {
	key := spellKey(spell.CharacterID, spell.SpellID)
	if _, ok := f.spells[key]; ok {
		return fmt.Errorf("duplicate spell %s", key)
	}
	spell.UnlockedAt = time.Now()
	clone := *spell
	f.spells[key] = &clone
	return nil
}

func (f *FakeSpellRepository) Update(ctx context.Context, spell *domain.PlayerSpell) error {
	key := spellKey(spell.CharacterID, spell.SpellID)
	if _, ok := f.spells[key]; !ok {
		return domain.ErrSpellNotKnown
	}
	clone := *spell
	f.spells[key] = &clone
	return nil
}

func (f *FakeSpellRepository) DeleteByCharacter(ctx context.Context, characterID string) error {
	for key, s := range f.spells {
		if s.CharacterID == characterID {
			delete(f.spells, key)
		}
	}
	return nil
}

func (f *FakeSpellRepository) CountKnownBy(ctx context.Context, spellID string) (int, error) {
	count := 0
	for _, s := range f.spells {
		if s.SpellID == spellID {
			count++
		}
	}
	return count, nil
}

func (f *FakeSpellRepository) TopMastery(ctx context.Context, spellID string, limit int) ([]domain.PlayerSpell, error) {
	result := []domain.PlayerSpell{}
	for _, s := range f.spells {
		if s.SpellID == spellID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Mastery != result[j].Mastery {
			return result[i].Mastery > result[j].Mastery
		}
		return result[i].TimesUsed > result[j].TimesUsed
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
