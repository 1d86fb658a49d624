package spellbook

import (
	"context"
	"errors"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
	"github.com/mirefall/GrimoireBot_Go/internal/event"
	"github.com/mirefall/GrimoireBot_Go/internal/gamedata"
	"github.com/mirefall/GrimoireBot_Go/internal/logger"
	"github.com/mirefall/GrimoireBot_Go/internal/naming"
	"github.com/mirefall/GrimoireBot_Go/internal/repository"
)

// SpellView pairs a learned spell with its static definition
type SpellView struct {
	domain.PlayerSpell
	Description string `json:"description"`
	Type        string `json:"type"`
	MPCost      int    `json:"mp_cost"`
}

// CastResult reports the outcome of casting a spell
type CastResult struct {
	Spell         *domain.PlayerSpell `json:"spell"`
	MPSpent       int                 `json:"mp_spent"`
	MasteryGained bool                `json:"mastery_gained"`
	Character     *domain.Character   `json:"character"`
}

// Service defines the spellbook business logic
type Service interface {
	// LearnSpell grants a spell at minimum mastery. Learning a spell the
	// character already knows is a silent no-op.
	LearnSpell(ctx context.Context, discordID, spellID string) error
	UseSpell(ctx context.Context, discordID, spellID string) (*CastResult, error)
	GetSpellbook(ctx context.Context, discordID string) ([]SpellView, error)
	GetSpell(ctx context.Context, discordID, spellID string) (*SpellView, error)

	TopMastery(ctx context.Context, spellID string, limit int) ([]domain.PlayerSpell, error)
	CountKnownBy(ctx context.Context, spellID string) (int, error)
}

type service struct {
	repo       repository.Spell
	characters repository.Character
	bus        event.Bus
}

// NewService creates a new spellbook service
func NewService(repo repository.Spell, characters repository.Character, bus event.Bus) Service {
	return &service{
		repo:       repo,
		characters: characters,
		bus:        bus,
	}
}

// spellResolver maps typed incantations to spell IDs, ignoring case and
// accents, so "Wingardium Leviosa" finds wingardium_leviosa.
var spellResolver = func() *naming.Resolver {
	r := naming.NewResolver()
	for _, def := range gamedata.AllSpells() {
		r.Register(def.SpellID, def.Name)
	}
	return r
}()

// resolveSpell returns the canonical ID and definition for an ID or a typed
// incantation. The definition is nil for unknown spells.
func resolveSpell(spellID string) (string, *gamedata.SpellDef) {
	if def := gamedata.SpellByID(spellID); def != nil {
		return spellID, def
	}
	id, ok := spellResolver.Resolve(spellID)
	if !ok {
		return spellID, nil
	}
	return id, gamedata.SpellByID(id)
}

func (s *service) LearnSpell(ctx context.Context, discordID, spellID string) error {
	character, err := s.characters.GetByDiscordID(ctx, discordID)
	if err != nil {
		return err
	}
	spellID, def := resolveSpell(spellID)
	if def == nil {
		return domain.ErrSpellNotFound
	}
	if def.MinLevel > character.Level {
		return domain.ErrRequirementNotMet
	}

	if _, err := s.repo.Get(ctx, character.ID, spellID); err == nil {
		// already known
		return nil
	} else if !errors.Is(err, domain.ErrSpellNotKnown) {
		return err
	}

	spell := &domain.PlayerSpell{
		CharacterID: character.ID,
		SpellID:     def.SpellID,
		Name:        def.Name,
		Mastery:     domain.MinMastery,
	}
	if err := s.repo.Create(ctx, spell); err != nil {
		return err
	}

	if err := s.bus.Publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.SpellLearned,
		Payload: map[string]interface{}{
			"character_id": character.ID,
			"spell_id":     spellID,
		},
	}); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish spell learned event", "error", err)
	}
	return nil
}

// UseSpell spends the spell's mp cost, records the use, and grows mastery
// one point per ten casts up to the cap.
func (s *service) UseSpell(ctx context.Context, discordID, spellID string) (*CastResult, error) {
	character, err := s.characters.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	spellID, def := resolveSpell(spellID)
	if def == nil {
		return nil, domain.ErrSpellNotFound
	}
	spell, err := s.repo.Get(ctx, character.ID, spellID)
	if err != nil {
		return nil, err
	}
	if character.Stats.MP < def.MPCost {
		return nil, domain.ErrInsufficientMP
	}

	before := spell.Mastery
	spell.RecordUse()
	if err := s.repo.Update(ctx, spell); err != nil {
		return nil, err
	}

	character.Stats.MP -= def.MPCost
	character.GameStats.SpellsCast++
	if err := s.characters.Update(ctx, character); err != nil {
		return nil, err
	}

	if err := s.bus.Publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.SpellCast,
		Payload: event.SpellCastPayloadV1{
			CharacterID: character.ID,
			SpellID:     spellID,
			Mastery:     spell.Mastery,
			MasteryGain: spell.Mastery > before,
		},
	}); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish spell cast event", "error", err)
	}

	return &CastResult{
		Spell:         spell,
		MPSpent:       def.MPCost,
		MasteryGained: spell.Mastery > before,
		Character:     character,
	}, nil
}

func (s *service) GetSpellbook(ctx context.Context, discordID string) ([]SpellView, error) {
	character, err := s.characters.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	spells, err := s.repo.GetByCharacter(ctx, character.ID)
	if err != nil {
		return nil, err
	}

	views := make([]SpellView, 0, len(spells))
	for _, spell := range spells {
		views = append(views, newSpellView(spell))
	}
	return views, nil
}

func (s *service) GetSpell(ctx context.Context, discordID, spellID string) (*SpellView, error) {
	character, err := s.characters.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	spellID, def := resolveSpell(spellID)
	if def == nil {
		return nil, domain.ErrSpellNotFound
	}
	spell, err := s.repo.Get(ctx, character.ID, spellID)
	if err != nil {
		return nil, err
	}
	view := newSpellView(*spell)
	return &view, nil
}

func (s *service) TopMastery(ctx context.Context, spellID string, limit int) ([]domain.PlayerSpell, error) {
	spellID, def := resolveSpell(spellID)
	if def == nil {
		return nil, domain.ErrSpellNotFound
	}
	if limit <= 0 || limit > MaxLeaderboardSize {
		limit = DefaultLeaderboardSize
	}
	return s.repo.TopMastery(ctx, spellID, limit)
}

func (s *service) CountKnownBy(ctx context.Context, spellID string) (int, error) {
	spellID, def := resolveSpell(spellID)
	if def == nil {
		return 0, domain.ErrSpellNotFound
	}
	return s.repo.CountKnownBy(ctx, spellID)
}

func newSpellView(spell domain.PlayerSpell) SpellView {
	view := SpellView{PlayerSpell: spell}
	if def := gamedata.SpellByID(spell.SpellID); def != nil {
		view.Description = def.Description
		view.Type = def.Type
		view.MPCost = def.MPCost
	}
	return view
}
