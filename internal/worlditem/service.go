package worlditem

import (
	"context"
	"time"

	"github.com/mirefall/GrimoireBot_Go/internal/domain"
	"github.com/mirefall/GrimoireBot_Go/internal/event"
	"github.com/mirefall/GrimoireBot_Go/internal/logger"
	"github.com/mirefall/GrimoireBot_Go/internal/repository"
)

// Service defines the unique-artifact registry business logic.
// Every ownership change appends exactly one history entry, and the owner
// field and status move together: an artifact has an owner exactly when its
// status is owned.
type Service interface {
	Claim(ctx context.Context, discordID, itemID string) (*domain.WorldItem, error)
	Transfer(ctx context.Context, fromDiscordID, toDiscordID, itemID string) (*domain.WorldItem, error)
	// Lose drops an artifact back into the world as lost. The notes land in
	// the history entry.
	Lose(ctx context.Context, discordID, itemID, notes string) (*domain.WorldItem, error)

	GetArtifact(ctx context.Context, itemID string) (*domain.WorldItem, error)
	GetAll(ctx context.Context) ([]domain.WorldItem, error)
	GetUnclaimed(ctx context.Context) ([]domain.WorldItem, error)
	GetOwnedBy(ctx context.Context, discordID string) ([]domain.WorldItem, error)
}

type service struct {
	repo       repository.WorldItem
	characters repository.Character
	bus        event.Bus
}

// NewService creates a new world artifact service
func NewService(repo repository.WorldItem, characters repository.Character, bus event.Bus) Service {
	return &service{
		repo:       repo,
		characters: characters,
		bus:        bus,
	}
}

// Claim takes an unowned artifact for a character, gated by the artifact's
// claim requirements.
func (s *service) Claim(ctx context.Context, discordID, itemID string) (*domain.WorldItem, error) {
	character, err := s.characters.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	artifact, err := s.repo.GetByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if artifact.Status == domain.WorldItemOwned {
		return nil, domain.ErrNotAvailable
	}
	if err := checkClaimRequirements(character, artifact.ClaimRequirements); err != nil {
		return nil, err
	}

	kind := domain.WorldEventClaimed
	if artifact.Status == domain.WorldItemLost {
		kind = domain.WorldEventFound
	}

	artifact.CurrentOwner = character.ID
	artifact.Status = domain.WorldItemOwned
	artifact.History = append(artifact.History, domain.WorldItemEvent{
		Event:   kind,
		ToOwner: character.ID,
		Date:    time.Now(),
	})
	if err := s.repo.Update(ctx, artifact); err != nil {
		return nil, err
	}

	s.publish(ctx, event.ArtifactClaimed, event.ArtifactPayloadV1{
		ItemID:    itemID,
		ToOwner:   character.ID,
		Timestamp: time.Now().Unix(),
	})
	return artifact, nil
}

// Transfer hands an artifact to another character. Only transferable
// artifacts can change hands this way.
func (s *service) Transfer(ctx context.Context, fromDiscordID, toDiscordID, itemID string) (*domain.WorldItem, error) {
	if fromDiscordID == toDiscordID {
		return nil, domain.ErrInvalidInput
	}

	from, err := s.characters.GetByDiscordID(ctx, fromDiscordID)
	if err != nil {
		return nil, err
	}
	to, err := s.characters.GetByDiscordID(ctx, toDiscordID)
	if err != nil {
		return nil, err
	}
	artifact, err := s.repo.GetByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if artifact.Status != domain.WorldItemOwned || artifact.CurrentOwner != from.ID {
		return nil, domain.ErrNotAvailable
	}
	if !artifact.IsTransferable {
		return nil, domain.ErrNotTradeable
	}
	if err := checkClaimRequirements(to, artifact.ClaimRequirements); err != nil {
		return nil, err
	}

	artifact.CurrentOwner = to.ID
	artifact.History = append(artifact.History, domain.WorldItemEvent{
		Event:     domain.WorldEventTransferred,
		FromOwner: from.ID,
		ToOwner:   to.ID,
		Date:      time.Now(),
	})
	if err := s.repo.Update(ctx, artifact); err != nil {
		return nil, err
	}

	s.publish(ctx, event.ArtifactTransferred, event.ArtifactPayloadV1{
		ItemID:    itemID,
		FromOwner: from.ID,
		ToOwner:   to.ID,
		Timestamp: time.Now().Unix(),
	})
	return artifact, nil
}

func (s *service) Lose(ctx context.Context, discordID, itemID, notes string) (*domain.WorldItem, error) {
	character, err := s.characters.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	artifact, err := s.repo.GetByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if artifact.Status != domain.WorldItemOwned || artifact.CurrentOwner != character.ID {
		return nil, domain.ErrNotAvailable
	}

	artifact.CurrentOwner = ""
	artifact.Status = domain.WorldItemLost
	artifact.History = append(artifact.History, domain.WorldItemEvent{
		Event:     domain.WorldEventLost,
		FromOwner: character.ID,
		Date:      time.Now(),
		Notes:     notes,
	})
	if err := s.repo.Update(ctx, artifact); err != nil {
		return nil, err
	}

	s.publish(ctx, event.ArtifactLost, event.ArtifactPayloadV1{
		ItemID:    itemID,
		FromOwner: character.ID,
		Timestamp: time.Now().Unix(),
	})
	return artifact, nil
}

func (s *service) GetArtifact(ctx context.Context, itemID string) (*domain.WorldItem, error) {
	return s.repo.GetByItemID(ctx, itemID)
}

func (s *service) GetAll(ctx context.Context) ([]domain.WorldItem, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetUnclaimed(ctx context.Context) ([]domain.WorldItem, error) {
	return s.repo.GetUnclaimed(ctx)
}

func (s *service) GetOwnedBy(ctx context.Context, discordID string) ([]domain.WorldItem, error) {
	character, err := s.characters.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetOwnedBy(ctx, character.ID)
}

func (s *service) publish(ctx context.Context, eventType event.Type, payload event.ArtifactPayloadV1) {
	err := s.bus.Publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    eventType,
		Payload: payload,
	})
	if err != nil {
		logger.FromContext(ctx).Warn("Failed to publish artifact event", "type", string(eventType), "error", err)
	}
}

func checkClaimRequirements(character *domain.Character, req domain.ClaimRequirements) error {
	if req.MinLevel > 0 && character.Level < req.MinLevel {
		return domain.ErrRequirementNotMet
	}
	if req.House != "" && character.House != req.House {
		return domain.ErrRequirementNotMet
	}
	return nil
}
