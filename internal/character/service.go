package character

import (
	"context"
	"fmt"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
	"github.com/mirefall/GrimoireBot_Go/internal/event"
	"github.com/mirefall/GrimoireBot_Go/internal/gamedata"
	"github.com/mirefall/GrimoireBot_Go/internal/logger"
	"github.com/mirefall/GrimoireBot_Go/internal/repository"
)

// ExperienceResult reports the outcome of an experience grant
type ExperienceResult struct {
	Character    *domain.Character `json:"character"`
	Amount       int               `json:"amount"`
	LevelsGained int               `json:"levels_gained"`
	NewTitle     string            `json:"new_title,omitempty"`
}

// Service defines the character account business logic
type Service interface {
	// Account lifecycle
	CreateCharacter(ctx context.Context, discordID, discordUsername, name string, house domain.House) (*domain.Character, error)
	GetByDiscordID(ctx context.Context, discordID string) (*domain.Character, error)
	DeleteCharacter(ctx context.Context, discordID string) error

	// Progression
	AddExperience(ctx context.Context, discordID string, amount int, source string) (*ExperienceResult, error)
	AssignAttributePoints(ctx context.Context, discordID string, allocations map[domain.StatKey]int) (*domain.Character, error)
	RecalculateStats(ctx context.Context, discordID string) (*domain.Character, error)

	// State changes
	Rest(ctx context.Context, discordID string) (*domain.Character, error)
	TakeDamage(ctx context.Context, discordID string, amount int) (*domain.Character, error)
	Heal(ctx context.Context, discordID string, amount int) (*domain.Character, error)
	AddGalleons(ctx context.Context, discordID string, amount int) (*domain.Character, error)

	// Leaderboards
	GetLeaderboard(ctx context.Context, limit int) ([]domain.Character, error)
	GetHouseLeaderboard(ctx context.Context, house domain.House, limit int) ([]domain.Character, error)
}

type service struct {
	repo   repository.Character
	spells repository.Spell
	bus    event.Bus
	cache  *characterCache
}

// NewService creates a new character service
func NewService(repo repository.Character, spells repository.Spell, bus event.Bus) Service {
	return &service{
		repo:   repo,
		spells: spells,
		bus:    bus,
		cache:  newCharacterCache(CacheSize, CacheTTL),
	}
}

// CreateCharacter registers a new account for a Discord identity. The house
// comes from a completed sorting quiz; the wand is rolled here and never
// changes afterwards.
func (s *service) CreateCharacter(ctx context.Context, discordID, discordUsername, name string, house domain.House) (*domain.Character, error) {
	log := logger.FromContext(ctx)

	if discordID == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !house.IsValid() {
		return nil, domain.ErrInvalidHouse
	}

	wand := gamedata.GenerateRandomWand()

	stats := domain.CombatStats{
		HP:           domain.BaseMaxHP,
		MaxHP:        domain.BaseMaxHP,
		MP:           domain.BaseMaxMP,
		MaxMP:        domain.BaseMaxMP,
		Strength:     domain.BaseStatValue,
		Intelligence: domain.BaseStatValue,
		Dexterity:    domain.BaseStatValue,
		Constitution: domain.BaseStatValue,
		Wisdom:       domain.BaseStatValue,
		Luck:         domain.BaseStatValue,
	}
	for key, amount := range gamedata.HouseBonuses(house) {
		stats.Add(key, amount)
	}
	for key, amount := range gamedata.WandBonuses(wand) {
		stats.Add(key, amount)
	}

	character := &domain.Character{
		DiscordID:       discordID,
		DiscordUsername: discordUsername,
		Name:            name,
		House:           house,
		Title:           gamedata.TitleForLevel(domain.MinLevel),
		Wand:            wand,
		Stats:           stats,
		Level:           domain.MinLevel,
		Galleons:        domain.StartingGalleons,
		InventorySlots:  domain.BaseInventorySlots,
		Status: domain.Status{
			IsAlive:         true,
			CurrentLocation: StartingLocation,
		},
	}

	if err := s.repo.Create(ctx, character); err != nil {
		return nil, err
	}

	for _, def := range gamedata.StarterSpells {
		spell := &domain.PlayerSpell{
			CharacterID: character.ID,
			SpellID:     def.SpellID,
			Name:        def.Name,
			Mastery:     domain.MinMastery,
		}
		if err := s.spells.Create(ctx, spell); err != nil {
			return nil, fmt.Errorf("failed to grant starter spell %s: %w", def.SpellID, err)
		}
	}

	s.cache.Set(discordID, character)
	if err := s.bus.Publish(ctx, event.NewCharacterCreatedEvent(
		character.ID, discordID, name, string(house))); err != nil {
		log.Warn("Failed to publish character created event", "error", err)
	}

	log.Info("Character created",
		"character_id", character.ID,
		"house", house,
		"name", name)
	return character, nil
}

// GetByDiscordID fetches an account, serving repeated lookups from the cache
func (s *service) GetByDiscordID(ctx context.Context, discordID string) (*domain.Character, error) {
	if character, ok := s.cache.Get(discordID); ok {
		return character, nil
	}

	character, err := s.repo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(discordID, character)
	return character, nil
}

// DeleteCharacter removes the account, its spells and (by cascade) its
// inventory records
func (s *service) DeleteCharacter(ctx context.Context, discordID string) error {
	character, err := s.repo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return err
	}

	if err := s.spells.DeleteByCharacter(ctx, character.ID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, discordID); err != nil {
		return err
	}

	s.cache.Invalidate(discordID)
	if err := s.bus.Publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.CharacterDeleted,
		Payload: map[string]interface{}{"character_id": character.ID, "discord_id": discordID},
	}); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish character deleted event", "error", err)
	}
	return nil
}

// AddExperience grants experience, applies any level-ups and refreshes the
// title. Returns the levels gained so callers can announce them.
func (s *service) AddExperience(ctx context.Context, discordID string, amount int, source string) (*ExperienceResult, error) {
	log := logger.FromContext(ctx)

	if amount <= 0 {
		return nil, domain.ErrInvalidInput
	}

	character, err := s.repo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}

	oldLevel := character.Level
	levelsGained := character.AddExperience(amount, gamedata.HouseLevelGrowth(character.House))

	result := &ExperienceResult{
		Character:    character,
		Amount:       amount,
		LevelsGained: levelsGained,
	}
	if levelsGained > 0 {
		newTitle := gamedata.TitleForLevel(character.Level)
		if newTitle != character.Title {
			character.Title = newTitle
			result.NewTitle = newTitle
		}
	}

	if err := s.repo.Update(ctx, character); err != nil {
		return nil, err
	}
	s.cache.Invalidate(discordID)

	if levelsGained > 0 {
		if err := s.bus.Publish(ctx, event.NewCharacterLevelUpEvent(
			character.ID, oldLevel, character.Level, result.NewTitle, source)); err != nil {
			log.Warn("Failed to publish level up event", "error", err)
		}
		log.Info("Character leveled up",
			"character_id", character.ID,
			"old_level", oldLevel,
			"new_level", character.Level)
	}

	return result, nil
}

// AssignAttributePoints spends banked points on assignable attributes.
// All-or-nothing: an invalid key or overspend leaves the character untouched.
func (s *service) AssignAttributePoints(ctx context.Context, discordID string, allocations map[domain.StatKey]int) (*domain.Character, error) {
	if len(allocations) == 0 {
		return nil, domain.ErrInvalidInput
	}

	total := 0
	for key, amount := range allocations {
		if !key.IsValid() {
			return nil, domain.ErrInvalidStat
		}
		if amount <= 0 {
			return nil, domain.ErrInvalidInput
		}
		total += amount
	}

	character, err := s.repo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	if total > character.AttributePoints {
		return nil, domain.ErrInsufficientPoints
	}

	for key, amount := range allocations {
		character.Stats.Add(key, amount)
	}
	character.AttributePoints -= total

	if err := s.repo.Update(ctx, character); err != nil {
		return nil, err
	}
	s.cache.Invalidate(discordID)
	return character, nil
}

// RecalculateStats rebuilds the stat block from creation baselines plus
// per-level growth. Admin utility for characters touched by balance changes
// or a manually edited level. Allocations reset: the full attribute-point
// pool for the level comes back unspent, and the title is refreshed.
func (s *service) RecalculateStats(ctx context.Context, discordID string) (*domain.Character, error) {
	character, err := s.repo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}

	stats := domain.CombatStats{
		Strength:     domain.BaseStatValue,
		Intelligence: domain.BaseStatValue,
		Dexterity:    domain.BaseStatValue,
		Constitution: domain.BaseStatValue,
		Wisdom:       domain.BaseStatValue,
		Luck:         domain.BaseStatValue,
	}
	for key, amount := range gamedata.HouseBonuses(character.House) {
		stats.Add(key, amount)
	}
	for key, amount := range gamedata.WandBonuses(character.Wand) {
		stats.Add(key, amount)
	}

	levelsGained := character.Level - domain.MinLevel
	growth := gamedata.HouseLevelGrowth(character.House)
	for key, amount := range growth {
		stats.Add(key, amount*levelsGained)
	}

	stats.MaxHP = domain.BaseMaxHP + domain.LevelUpMaxHPGain*levelsGained
	stats.MaxMP = domain.BaseMaxMP + domain.LevelUpMaxMPGain*levelsGained
	stats.HP = stats.MaxHP
	stats.MP = stats.MaxMP

	character.Stats = stats
	character.AttributePoints = levelsGained * domain.LevelUpStatPoints
	character.Title = gamedata.TitleForLevel(character.Level)
	if err := s.repo.Update(ctx, character); err != nil {
		return nil, err
	}
	s.cache.Invalidate(discordID)
	return character, nil
}

// Rest restores hp/mp to full
func (s *service) Rest(ctx context.Context, discordID string) (*domain.Character, error) {
	character, err := s.repo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}

	character.Rest()
	if err := s.repo.Update(ctx, character); err != nil {
		return nil, err
	}
	s.cache.Invalidate(discordID)

	if err := s.bus.Publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.CharacterRested,
		Payload: map[string]interface{}{"character_id": character.ID},
	}); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish rest event", "error", err)
	}
	return character, nil
}

// TakeDamage applies damage; at 0 hp the character is marked dead
func (s *service) TakeDamage(ctx context.Context, discordID string, amount int) (*domain.Character, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidInput
	}

	character, err := s.repo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}

	character.Stats.HP -= amount
	if character.Stats.HP <= 0 {
		character.Stats.HP = 0
		character.Status.IsAlive = false
	}
	character.GameStats.TotalDamageReceived += amount

	if err := s.repo.Update(ctx, character); err != nil {
		return nil, err
	}
	s.cache.Invalidate(discordID)
	return character, nil
}

// Heal restores hp, clamped to the maximum
func (s *service) Heal(ctx context.Context, discordID string, amount int) (*domain.Character, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidInput
	}

	character, err := s.repo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}

	healed := amount
	if character.Stats.HP+healed > character.Stats.MaxHP {
		healed = character.Stats.MaxHP - character.Stats.HP
	}
	character.Stats.HP += healed
	character.GameStats.TotalHealing += healed

	if err := s.repo.Update(ctx, character); err != nil {
		return nil, err
	}
	s.cache.Invalidate(discordID)
	return character, nil
}

// AddGalleons moves the balance by amount (negative spends). Earnings count
// toward the lifetime gold counter.
func (s *service) AddGalleons(ctx context.Context, discordID string, amount int) (*domain.Character, error) {
	if amount == 0 {
		return nil, domain.ErrInvalidInput
	}

	character, err := s.repo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}

	if character.Galleons+amount < 0 {
		return nil, domain.ErrInsufficientFunds
	}
	character.Galleons += amount
	if amount > 0 {
		character.GameStats.GoldEarned += amount
	}

	if err := s.repo.Update(ctx, character); err != nil {
		return nil, err
	}
	s.cache.Invalidate(discordID)
	return character, nil
}

// GetLeaderboard returns the global top characters
func (s *service) GetLeaderboard(ctx context.Context, limit int) ([]domain.Character, error) {
	if limit <= 0 || limit > MaxLeaderboardSize {
		limit = DefaultLeaderboardSize
	}
	return s.repo.GetLeaderboard(ctx, limit)
}

// GetHouseLeaderboard returns the top characters of one house
func (s *service) GetHouseLeaderboard(ctx context.Context, house domain.House, limit int) ([]domain.Character, error) {
	if !house.IsValid() {
		return nil, domain.ErrInvalidHouse
	}
	if limit <= 0 || limit > MaxLeaderboardSize {
		limit = DefaultLeaderboardSize
	}
	return s.repo.GetHouseLeaderboard(ctx, house, limit)
}
