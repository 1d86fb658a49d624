package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Common event types
const (
	CharacterCreated Type = "character.created"
	CharacterLevelUp Type = "character.level_up"
	CharacterDeleted Type = "character.deleted"
	CharacterRested  Type = "character.rested"

	ItemAcquired Type = "item.acquired"
	ItemUsed     Type = "item.used"
	ItemTraded   Type = "item.traded"
	MarketSold   Type = "market.sold"

	SpellLearned Type = "spell.learned"
	SpellCast    Type = "spell.cast"

	ArtifactClaimed     Type = "artifact.claimed"
	ArtifactTransferred Type = "artifact.transferred"
	ArtifactLost        Type = "artifact.lost"

	SortingCompleted Type = "sorting.completed"
)

// Typed event payloads for type safety

// CharacterCreatedPayloadV1 is the typed payload for character creation events
type CharacterCreatedPayloadV1 struct {
	CharacterID string `json:"character_id"`
	DiscordID   string `json:"discord_id"`
	Name        string `json:"name"`
	House       string `json:"house"`
	Timestamp   int64  `json:"timestamp"`
}

// CharacterLevelUpPayloadV1 is the typed payload for level-up events
type CharacterLevelUpPayloadV1 struct {
	CharacterID  string `json:"character_id"`
	OldLevel     int    `json:"old_level"`
	NewLevel     int    `json:"new_level"`
	LevelsGained int    `json:"levels_gained"`
	NewTitle     string `json:"new_title,omitempty"`
	Source       string `json:"source,omitempty"`
}

// ItemTradedPayloadV1 is the typed payload for trade and purchase events
type ItemTradedPayloadV1 struct {
	FromCharacterID string `json:"from_character_id"`
	ToCharacterID   string `json:"to_character_id"`
	ItemID          string `json:"item_id"`
	Quantity        int    `json:"quantity"`
	Price           int    `json:"price,omitempty"`
	Timestamp       int64  `json:"timestamp"`
}

// SpellCastPayloadV1 is the typed payload for spell usage events
type SpellCastPayloadV1 struct {
	CharacterID string `json:"character_id"`
	SpellID     string `json:"spell_id"`
	Mastery     int    `json:"mastery"`
	MasteryGain bool   `json:"mastery_gain"`
}

// ArtifactPayloadV1 is the typed payload for world artifact events
type ArtifactPayloadV1 struct {
	ItemID    string `json:"item_id"`
	FromOwner string `json:"from_owner,omitempty"`
	ToOwner   string `json:"to_owner,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// SortingCompletedPayloadV1 is the typed payload for completed sorting quizzes
type SortingCompletedPayloadV1 struct {
	DiscordID string `json:"discord_id"`
	House     string `json:"house"`
	Scores    []int  `json:"scores"`
	TieBreak  bool   `json:"tie_break"`
}

// NewCharacterCreatedEvent builds a character creation event
func NewCharacterCreatedEvent(characterID, discordID, name, house string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CharacterCreated,
		Payload: CharacterCreatedPayloadV1{
			CharacterID: characterID,
			DiscordID:   discordID,
			Name:        name,
			House:       house,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewCharacterLevelUpEvent builds a level-up event
func NewCharacterLevelUpEvent(characterID string, oldLevel, newLevel int, newTitle, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CharacterLevelUp,
		Payload: CharacterLevelUpPayloadV1{
			CharacterID:  characterID,
			OldLevel:     oldLevel,
			NewLevel:     newLevel,
			LevelsGained: newLevel - oldLevel,
			NewTitle:     newTitle,
			Source:       source,
		},
	}
}

// NewItemTradedEvent builds a trade event. Price is zero for gifts.
func NewItemTradedEvent(fromID, toID, itemID string, quantity, price int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemTraded,
		Payload: ItemTradedPayloadV1{
			FromCharacterID: fromID,
			ToCharacterID:   toID,
			ItemID:          itemID,
			Quantity:        quantity,
			Price:           price,
			Timestamp:       time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// a failing handler does not stop the others.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
