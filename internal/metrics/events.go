package metrics

import (
	"context"

	"github.com/mirefall/GrimoireBot_Go/internal/event"
	"github.com/mirefall/GrimoireBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records business metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events the collector cares about
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.CharacterCreated,
		event.CharacterLevelUp,
		event.SortingCompleted,
		event.ItemTraded,
		event.MarketSold,
		event.ItemUsed,
		event.SpellCast,
		event.ArtifactClaimed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.CharacterCreated:
		if p, err := event.DecodePayload[event.CharacterCreatedPayloadV1](evt.Payload); err == nil {
			CharactersCreated.WithLabelValues(p.House).Inc()
		}

	case event.CharacterLevelUp:
		if p, err := event.DecodePayload[event.CharacterLevelUpPayloadV1](evt.Payload); err == nil {
			LevelUps.Add(float64(p.LevelsGained))
		}

	case event.SortingCompleted:
		if p, err := event.DecodePayload[event.SortingCompletedPayloadV1](evt.Payload); err == nil {
			QuizzesCompleted.WithLabelValues(p.House).Inc()
		}

	case event.ItemTraded:
		if p, err := event.DecodePayload[event.ItemTradedPayloadV1](evt.Payload); err == nil {
			ItemsTraded.WithLabelValues(p.ItemID).Add(float64(p.Quantity))
		}

	case event.MarketSold:
		if p, err := event.DecodePayload[event.ItemTradedPayloadV1](evt.Payload); err == nil {
			ItemsTraded.WithLabelValues(p.ItemID).Add(float64(p.Quantity))
			MarketSales.Inc()
			GalleonsTraded.Add(float64(p.Price))
		}

	case event.ItemUsed:
		if p, err := event.DecodePayload[itemUsedPayload](evt.Payload); err == nil && p.ItemID != "" {
			ItemsUsed.WithLabelValues(p.ItemID).Inc()
		}

	case event.SpellCast:
		if p, err := event.DecodePayload[event.SpellCastPayloadV1](evt.Payload); err == nil {
			SpellsCast.WithLabelValues(p.SpellID).Inc()
		}

	case event.ArtifactClaimed:
		if p, err := event.DecodePayload[event.ArtifactPayloadV1](evt.Payload); err == nil {
			ArtifactsClaimed.WithLabelValues(p.ItemID).Inc()
		}
	}

	log.Debug(LogMsgMetricsRecorded, "type", string(evt.Type))
	return nil
}

// itemUsedPayload covers the loosely-typed item usage payload.
type itemUsedPayload struct {
	ItemID string `json:"item_id"`
}
