package domain

import (
	"math"
	"time"
)

// Level bounds for character progression.
const (
	MinLevel = 1
	MaxLevel = 100
)

// Creation-time baselines.
const (
	BaseStatValue      = 10
	BaseMaxHP          = 100
	BaseMaxMP          = 80
	StartingGalleons   = 50
	BaseInventorySlots = 20
)

// Per-level gains applied on every level-up.
const (
	LevelUpMaxHPGain  = 10
	LevelUpMaxMPGain  = 8
	LevelUpStatPoints = 3
)

// Wand describes a character's wand. Generated once at creation and never
// mutated afterwards.
type Wand struct {
	Wood        string `json:"wood"`
	Core        string `json:"core"`
	Length      int    `json:"length"`
	Flexibility string `json:"flexibility"`
}

// CombatStats holds the mutable stat block of a character.
type CombatStats struct {
	HP           int `json:"hp"`
	MaxHP        int `json:"max_hp"`
	MP           int `json:"mp"`
	MaxMP        int `json:"max_mp"`
	Strength     int `json:"strength"`
	Intelligence int `json:"intelligence"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Wisdom       int `json:"wisdom"`
	Luck         int `json:"luck"`
}

// Get returns the value of an assignable attribute.
func (s *CombatStats) Get(key StatKey) int {
	switch key {
	case StatStrength:
		return s.Strength
	case StatIntelligence:
		return s.Intelligence
	case StatDexterity:
		return s.Dexterity
	case StatConstitution:
		return s.Constitution
	case StatWisdom:
		return s.Wisdom
	case StatLuck:
		return s.Luck
	}
	return 0
}

// Add increments an assignable attribute. Unknown keys are ignored; callers
// validate with StatKey.IsValid at the boundary.
func (s *CombatStats) Add(key StatKey, amount int) {
	switch key {
	case StatStrength:
		s.Strength += amount
	case StatIntelligence:
		s.Intelligence += amount
	case StatDexterity:
		s.Dexterity += amount
	case StatConstitution:
		s.Constitution += amount
	case StatWisdom:
		s.Wisdom += amount
	case StatLuck:
		s.Luck += amount
	}
}

// GameStats tracks lifetime counters for a character.
type GameStats struct {
	BattlesWon          int `json:"battles_won"`
	BattlesLost         int `json:"battles_lost"`
	EnemiesDefeated     int `json:"enemies_defeated"`
	QuestsCompleted     int `json:"quests_completed"`
	SpellsCast          int `json:"spells_cast"`
	CriticalHits        int `json:"critical_hits"`
	TotalDamageDealt    int `json:"total_damage_dealt"`
	TotalDamageReceived int `json:"total_damage_received"`
	TotalHealing        int `json:"total_healing"`
	GoldEarned          int `json:"gold_earned"`
	ItemsCollected      int `json:"items_collected"`
}

// Status holds the character's world state.
type Status struct {
	IsAlive         bool      `json:"is_alive"`
	InCombat        bool      `json:"in_combat"`
	CurrentLocation string    `json:"current_location"`
	LastRest        time.Time `json:"last_rest"`
}

// Equipment holds references to equipped inventory records, one per slot.
// A nil entry means the slot is empty. Set entries must point at a record
// owned by the same character with IsEquipped true.
type Equipment struct {
	Wand      *string `json:"wand"`
	Robe      *string `json:"robe"`
	Accessory *string `json:"accessory"`
	Pet       *string `json:"pet"`
}

// Get returns the record ID equipped in a slot, if any.
func (e *Equipment) Get(slot EquipSlot) *string {
	switch slot {
	case SlotWand:
		return e.Wand
	case SlotRobe:
		return e.Robe
	case SlotAccessory:
		return e.Accessory
	case SlotPet:
		return e.Pet
	}
	return nil
}

// Set stores (or clears, with nil) the record ID for a slot.
func (e *Equipment) Set(slot EquipSlot, recordID *string) {
	switch slot {
	case SlotWand:
		e.Wand = recordID
	case SlotRobe:
		e.Robe = recordID
	case SlotAccessory:
		e.Accessory = recordID
	case SlotPet:
		e.Pet = recordID
	}
}

// Character is a player account, one per Discord identity.
type Character struct {
	ID              string      `json:"character_id"`
	DiscordID       string      `json:"discord_id"`
	DiscordUsername string      `json:"discord_username"`
	Name            string      `json:"name"`
	House           House       `json:"house"`
	Title           string      `json:"title"`
	Wand            Wand        `json:"wand"`
	Stats           CombatStats `json:"stats"`
	AttributePoints int         `json:"attribute_points"`
	Level           int         `json:"level"`
	Experience      int         `json:"experience"`
	TotalExperience int         `json:"total_experience"`
	Galleons        int         `json:"galleons"`
	InventorySlots  int         `json:"inventory_slots"`
	Equipment       Equipment   `json:"equipment"`
	GameStats       GameStats   `json:"game_stats"`
	Status          Status      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// ExpToNextLevel returns the experience threshold for leaving the current
// level: floor(100 * level^1.5).
func (c *Character) ExpToNextLevel() int {
	return int(math.Floor(100 * math.Pow(float64(c.Level), 1.5)))
}

// CanLevelUp reports whether the character has banked enough experience to
// advance a level.
func (c *Character) CanLevelUp() bool {
	return c.Level < MaxLevel && c.Experience >= c.ExpToNextLevel()
}

// LevelUp advances the character one level, consuming the threshold
// experience and applying the per-house growth table. Returns false without
// mutating when the character cannot level up.
func (c *Character) LevelUp(growth StatGrowth) bool {
	if !c.CanLevelUp() {
		return false
	}

	c.Experience -= c.ExpToNextLevel()
	c.Level++
	c.Stats.MaxHP += LevelUpMaxHPGain
	c.Stats.MaxMP += LevelUpMaxMPGain
	c.Stats.HP = c.Stats.MaxHP
	c.Stats.MP = c.Stats.MaxMP
	c.AttributePoints += LevelUpStatPoints

	for key, amount := range growth {
		c.Stats.Add(key, amount)
	}

	return true
}

// AddExperience banks experience and applies as many level-ups as the new
// total allows, re-evaluating the (now higher) threshold each iteration.
// Returns the number of levels gained.
func (c *Character) AddExperience(amount int, growth StatGrowth) int {
	c.Experience += amount
	c.TotalExperience += amount

	levelsGained := 0
	for c.CanLevelUp() {
		c.LevelUp(growth)
		levelsGained++
	}

	return levelsGained
}

// Rest restores hp/mp to their maxima and stamps the rest time. The engine
// applies it unconditionally; cooldowns are a command-layer concern.
func (c *Character) Rest() {
	c.Stats.HP = c.Stats.MaxHP
	c.Stats.MP = c.Stats.MaxMP
	c.Status.LastRest = time.Now()
}

// Derived combat values. Read-only; never persisted.

func (c *Character) MagicPower() int {
	return int(math.Floor(float64(c.Stats.Intelligence)*2 + float64(c.Stats.Wisdom)*0.5 + float64(c.Level)*3))
}

func (c *Character) PhysicalPower() int {
	return int(math.Floor(float64(c.Stats.Strength)*2 + float64(c.Stats.Dexterity)*0.5 + float64(c.Level)*2))
}

func (c *Character) Defense() int {
	return int(math.Floor(float64(c.Stats.Constitution)*1.5 + float64(c.Stats.Wisdom)*0.5 + float64(c.Level)))
}

func (c *Character) Speed() int {
	return int(math.Floor(float64(c.Stats.Dexterity)*1.5 + float64(c.Stats.Luck)*0.3))
}

func (c *Character) CritChance() float64 {
	return math.Min(5+float64(c.Stats.Luck)*0.5+float64(c.Stats.Dexterity)*0.2, 50)
}
