package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBusDeliversToSubscriber(t *testing.T) {
	bus := NewMemoryBus()

	var got Event
	bus.Subscribe(CharacterLevelUp, func(ctx context.Context, e Event) error {
		got = e
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: EventSchemaVersion,
		Type:    CharacterLevelUp,
		Payload: map[string]interface{}{"character_id": "c-1", "level": 2},
	})
	require.NoError(t, err)

	assert.Equal(t, CharacterLevelUp, got.Type)
	payload, ok := got.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "c-1", payload["character_id"])
}

func TestMemoryBusFansOut(t *testing.T) {
	bus := NewMemoryBus()

	calls := 0
	handler := func(ctx context.Context, e Event) error {
		calls++
		return nil
	}
	bus.Subscribe(ItemAcquired, handler)
	bus.Subscribe(ItemAcquired, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{
		Version: EventSchemaVersion,
		Type:    ItemAcquired,
	}))
	assert.Equal(t, 2, calls)

	// Unrelated types do not reach the subscribers
	require.NoError(t, bus.Publish(context.Background(), Event{
		Version: EventSchemaVersion,
		Type:    SpellCast,
	}))
	assert.Equal(t, 2, calls)
}

func TestMemoryBusSurfacesHandlerError(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(SortingCompleted, func(ctx context.Context, e Event) error {
		return errors.New("handler failed")
	})

	err := bus.Publish(context.Background(), Event{
		Version: EventSchemaVersion,
		Type:    SortingCompleted,
	})
	assert.Error(t, err)
}

func TestDecodePayloadTypedAndMap(t *testing.T) {
	typed := SpellCastPayloadV1{CharacterID: "c-1", SpellID: "lumos", Mastery: 3}

	// Concrete struct passes through untouched
	out, err := DecodePayload[SpellCastPayloadV1](typed)
	require.NoError(t, err)
	assert.Equal(t, typed, out)

	// Generic map takes the JSON path
	out, err = DecodePayload[SpellCastPayloadV1](map[string]interface{}{
		"character_id": "c-1",
		"spell_id":     "lumos",
		"mastery":      3,
	})
	require.NoError(t, err)
	assert.Equal(t, typed, out)
}
