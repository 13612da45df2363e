package app

import (
	"context"
	"strings"

	apperrors "github.com/louisbranch/hearthbound/internal/platform/errors"
	"github.com/louisbranch/hearthbound/internal/platform/id"
	"github.com/louisbranch/hearthbound/internal/platform/telemetry"
	"github.com/louisbranch/hearthbound/internal/services/progression/domain/daggerheart"
	"github.com/louisbranch/hearthbound/internal/services/progression/storage"
)

// CreateCharacterInput carries the fields needed to create a character.
type CreateCharacterInput struct {
	OwnerUserID string
	Name        string
	ClassID     string
	// Experiences seeds the starting experience names. Duplicates are
	// allowed.
	Experiences []string
	// StartingCardIDs seeds the initial domain cards.
	StartingCardIDs []string
}

// CharacterView is a character record plus the caller's access level.
type CharacterView struct {
	Character storage.CharacterRecord
	// Writable is true when the caller presented the private key.
	Writable bool
}

// CreateCharacter creates a level 1 character with six zeroed traits and
// both access keys.
func (s *Service) CreateCharacter(ctx context.Context, input CreateCharacterInput) (storage.CharacterRecord, error) {
	ctx, span := s.tracer.Start(ctx, "progression.CreateCharacter")
	defer span.End()

	if strings.TrimSpace(input.Name) == "" {
		return storage.CharacterRecord{}, apperrors.New(apperrors.CodeCharacterEmptyName, "character name is required")
	}
	if strings.TrimSpace(input.OwnerUserID) == "" {
		return storage.CharacterRecord{}, apperrors.New(apperrors.CodeCharacterEmptyOwner, "owner user id is required")
	}
	class, ok := s.catalog.Class(input.ClassID)
	if !ok {
		return storage.CharacterRecord{}, apperrors.WithMetadata(
			apperrors.CodeCharacterInvalidClass,
			"unknown class",
			map[string]string{"class": input.ClassID},
		)
	}

	characterID, err := id.NewID()
	if err != nil {
		return storage.CharacterRecord{}, err
	}
	privateKey, err := id.NewID()
	if err != nil {
		return storage.CharacterRecord{}, err
	}
	publicKey, err := id.NewID()
	if err != nil {
		return storage.CharacterRecord{}, err
	}

	now := s.now()
	record := storage.CharacterRecord{
		ID:          characterID,
		PrivateKey:  privateKey,
		PublicKey:   publicKey,
		OwnerUserID: input.OwnerUserID,
		Name:        strings.TrimSpace(input.Name),
		ClassID:     class.ID,
		Level:       daggerheart.LevelMin,
		Proficiency: daggerheart.ProficiencyBase(daggerheart.LevelMin),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.PutCharacter(ctx, record); err != nil {
		return storage.CharacterRecord{}, err
	}

	for _, trait := range daggerheart.TraitNames() {
		if err := s.store.PutTrait(ctx, storage.TraitRecord{
			CharacterID: characterID,
			Trait:       string(trait),
			UpdatedAt:   now,
		}); err != nil {
			return storage.CharacterRecord{}, err
		}
	}

	for _, name := range input.Experiences {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		experienceID, err := id.NewID()
		if err != nil {
			return storage.CharacterRecord{}, err
		}
		if err := s.store.PutExperience(ctx, storage.ExperienceRecord{
			ID:          experienceID,
			CharacterID: characterID,
			Name:        name,
			Modifier:    daggerheart.TierExperienceModifier,
			CreatedAt:   now,
			UpdatedAt:   now,
		}); err != nil {
			return storage.CharacterRecord{}, err
		}
	}

	for _, cardID := range input.StartingCardIDs {
		card, ok := s.catalog.Card(cardID)
		if !ok {
			return storage.CharacterRecord{}, apperrors.WithMetadata(
				apperrors.CodeContentUnknownCard,
				"starting card is not in the catalogue",
				map[string]string{"card": cardID},
			)
		}
		rowID, err := id.NewID()
		if err != nil {
			return storage.CharacterRecord{}, err
		}
		if err := s.store.PutDomainCard(ctx, storage.DomainCardRecord{
			ID:          rowID,
			CharacterID: characterID,
			CardID:      card.ID,
			Domain:      card.Domain,
			Level:       card.Level,
			Source:      storage.CardSourceCreation,
			CreatedAt:   now,
		}); err != nil {
			return storage.CharacterRecord{}, err
		}
	}

	_ = s.emitter.Emit(ctx, storage.TelemetryEvent{
		CharacterID: characterID,
		EventType:   telemetry.EventCharacterCreate,
	})

	return record, nil
}

// GetCharacter resolves a character by its ID.
func (s *Service) GetCharacter(ctx context.Context, characterID string) (storage.CharacterRecord, error) {
	return s.store.GetCharacter(ctx, characterID)
}

// GetCharacterByKey resolves a character by either access key and reports
// whether the key grants writes.
func (s *Service) GetCharacterByKey(ctx context.Context, key string) (CharacterView, error) {
	record, writable, err := s.store.GetCharacterByKey(ctx, key)
	if err != nil {
		return CharacterView{}, err
	}
	return CharacterView{Character: record, Writable: writable}, nil
}

// ListCharacters returns every character owned by a user.
func (s *Service) ListCharacters(ctx context.Context, ownerUserID string) ([]storage.CharacterRecord, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return nil, apperrors.New(apperrors.CodeCharacterEmptyOwner, "owner user id is required")
	}
	return s.store.ListCharactersByOwner(ctx, ownerUserID)
}
