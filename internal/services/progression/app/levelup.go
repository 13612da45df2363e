package app

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/louisbranch/hearthbound/internal/platform/errors"
	"github.com/louisbranch/hearthbound/internal/platform/id"
	"github.com/louisbranch/hearthbound/internal/platform/telemetry"
	"github.com/louisbranch/hearthbound/internal/services/progression/domain/daggerheart"
	"github.com/louisbranch/hearthbound/internal/services/progression/storage"
)

// StartLevelUp opens a level-up draft toward the character's next level. The
// draft is held by the caller; nothing persists until ConfirmLevelUp.
func (s *Service) StartLevelUp(ctx context.Context, characterID string) (daggerheart.Draft, error) {
	ctx, span := s.tracer.Start(ctx, "progression.StartLevelUp")
	defer span.End()

	sheet, err := s.Sheet(ctx, characterID)
	if err != nil {
		return daggerheart.Draft{}, err
	}
	if sheet.Level >= daggerheart.LevelMax {
		return daggerheart.Draft{}, apperrors.New(apperrors.CodeCharacterAtMaxLevel, "character is already at the maximum level")
	}

	ok, err := s.CanLevelUp(ctx, characterID)
	if err != nil {
		return daggerheart.Draft{}, err
	}
	if !ok {
		return daggerheart.Draft{}, apperrors.WithMetadata(
			apperrors.CodeCharacterNoSlotsAtTier,
			"not enough free advancement slots to level up",
			map[string]string{"level": strconv.Itoa(sheet.Level)},
		)
	}

	return daggerheart.NewDraft(characterID, sheet.Level+1), nil
}

// ValidateSelections runs the full rule set against a draft without applying
// it. Clients call this after each step for early feedback.
func (s *Service) ValidateSelections(ctx context.Context, draft daggerheart.Draft) error {
	ctx, span := s.tracer.Start(ctx, "progression.ValidateSelections")
	defer span.End()

	sheet, err := s.Sheet(ctx, draft.CharacterID)
	if err != nil {
		return err
	}
	return s.validator.ValidateDraft(sheet, draft)
}

// ConfirmLevelUp validates a completed draft and applies it in one
// transaction. A concurrent confirm losing the race returns an error carrying
// the aborted-conflict code; the character is unchanged.
func (s *Service) ConfirmLevelUp(ctx context.Context, draft daggerheart.Draft) (storage.CharacterRecord, error) {
	ctx, span := s.tracer.Start(ctx, "progression.ConfirmLevelUp")
	defer span.End()
	span.SetAttributes(
		attribute.String("character.id", draft.CharacterID),
		attribute.Int("level.target", draft.TargetLevel),
	)

	sheet, err := s.Sheet(ctx, draft.CharacterID)
	if err != nil {
		return storage.CharacterRecord{}, err
	}
	if err := s.validator.ValidateDraft(sheet, draft); err != nil {
		return storage.CharacterRecord{}, err
	}

	application, err := s.buildApplication(sheet, draft)
	if err != nil {
		return storage.CharacterRecord{}, err
	}

	if err := s.store.ApplyLevelUp(ctx, application); err != nil {
		if errors.Is(err, storage.ErrAdvancementSlotTaken) {
			_ = s.emitter.Emit(ctx, storage.TelemetryEvent{
				CharacterID: draft.CharacterID,
				EventType:   telemetry.EventLevelUpConflict,
				PayloadJSON: levelUpEventPayload(sheet.Level, draft.TargetLevel),
			})
			return storage.CharacterRecord{}, apperrors.Wrap(
				apperrors.CodeLevelUpConflict,
				"character was already leveled by a concurrent request",
				err,
			)
		}
		if errors.Is(err, storage.ErrNotFound) {
			return storage.CharacterRecord{}, apperrors.Wrap(
				apperrors.CodeCharacterGone,
				"character no longer exists",
				err,
			)
		}
		return storage.CharacterRecord{}, err
	}

	return s.store.GetCharacter(ctx, draft.CharacterID)
}

// buildApplication turns a validated draft into the transactional write set.
func (s *Service) buildApplication(sheet daggerheart.CharacterSheet, draft daggerheart.Draft) (storage.LevelUpApplication, error) {
	targetTier := daggerheart.TierForLevel(draft.TargetLevel)

	application := storage.LevelUpApplication{
		CharacterID:          draft.CharacterID,
		FromLevel:            sheet.Level,
		ToLevel:              draft.TargetLevel,
		ExperienceIncrements: map[string]int{},
		TraitIncrements:      map[string]int{},
		ClearTraitMarks:      daggerheart.ClearsTraitMarks(draft.TargetLevel),
	}

	proficiencyExtra := 0
	proficiencyGrant := 0

	if draft.RequiresTierAchievements() {
		// Entering a new tier grants +1 proficiency automatically,
		// recorded on the reserved slot 0 of the tier.
		grant := daggerheart.ProficiencyChoice{Bonus: 1}
		payload, err := daggerheart.EncodePayload(grant)
		if err != nil {
			return storage.LevelUpApplication{}, err
		}
		rowID, err := id.NewID()
		if err != nil {
			return storage.LevelUpApplication{}, err
		}
		application.Advancements = append(application.Advancements, storage.AdvancementRecord{
			ID:                rowID,
			CharacterID:       draft.CharacterID,
			Tier:              int(targetTier),
			AdvancementNumber: daggerheart.TierAchievementSlot,
			Level:             draft.TargetLevel,
			AdvancementType:   string(daggerheart.AdvancementProficiency),
			Description:       grant.Describe(),
			PayloadJSON:       payload,
		})
		proficiencyGrant = 1

		experienceID, err := id.NewID()
		if err != nil {
			return storage.LevelUpApplication{}, err
		}
		application.NewExperiences = append(application.NewExperiences, storage.ExperienceRecord{
			ID:          experienceID,
			CharacterID: draft.CharacterID,
			Name:        draft.TierExperienceName,
			Modifier:    daggerheart.TierExperienceModifier,
		})

		tierCard, _ := s.catalog.Card(draft.TierCardID)
		cardRowID, err := id.NewID()
		if err != nil {
			return storage.LevelUpApplication{}, err
		}
		application.NewCards = append(application.NewCards, storage.DomainCardRecord{
			ID:          cardRowID,
			CharacterID: draft.CharacterID,
			CardID:      tierCard.ID,
			Domain:      tierCard.Domain,
			Level:       tierCard.Level,
			Source:      storage.CardSourceTierAchievement,
		})
	}

	// Slot picks land on the lowest free slot of their option tier.
	nextSlots := map[daggerheart.Tier][]int{}
	for tier := daggerheart.TierTwo; tier <= targetTier; tier++ {
		nextSlots[tier] = sheet.FreeSlots(tier)
	}

	for _, selection := range draft.Selections() {
		free := nextSlots[selection.OptionTier]
		if len(free) == 0 {
			return storage.LevelUpApplication{}, apperrors.WithMetadata(
				apperrors.CodeCharacterNoSlotsAtTier,
				"no advancement slots remain at this tier",
				map[string]string{"tier": strconv.Itoa(int(selection.OptionTier))},
			)
		}
		slot := free[0]
		nextSlots[selection.OptionTier] = free[1:]

		payload, err := daggerheart.EncodePayload(selection.Choice)
		if err != nil {
			return storage.LevelUpApplication{}, err
		}
		rowID, err := id.NewID()
		if err != nil {
			return storage.LevelUpApplication{}, err
		}
		application.Advancements = append(application.Advancements, storage.AdvancementRecord{
			ID:                rowID,
			CharacterID:       draft.CharacterID,
			Tier:              int(selection.OptionTier),
			AdvancementNumber: slot,
			Level:             draft.TargetLevel,
			AdvancementType:   string(selection.Choice.AdvancementType()),
			Description:       selection.Choice.Describe(),
			PayloadJSON:       payload,
		})

		switch choice := selection.Choice.(type) {
		case daggerheart.TraitBonusChoice:
			for _, trait := range choice.Traits {
				application.TraitIncrements[string(trait)] += bonusOrOne(choice.Bonus)
			}
		case daggerheart.ExperienceBonusChoice:
			for _, name := range choice.Experiences {
				application.ExperienceIncrements[name] += bonusOrOne(choice.Bonus)
			}
		case daggerheart.DomainCardChoice:
			card, _ := s.catalog.Card(choice.CardID)
			cardRowID, err := id.NewID()
			if err != nil {
				return storage.LevelUpApplication{}, err
			}
			application.NewCards = append(application.NewCards, storage.DomainCardRecord{
				ID:          cardRowID,
				CharacterID: draft.CharacterID,
				CardID:      card.ID,
				Domain:      card.Domain,
				Level:       card.Level,
				Source:      storage.CardSourceAdvancement,
			})
		case daggerheart.ProficiencyChoice:
			proficiencyExtra += bonusOrOne(choice.Bonus)
		case daggerheart.SubclassChoice:
			subclass := choice.SubclassID
			application.SubclassID = &subclass
		}
	}

	// Proficiency is stored as an absolute value: the level-derived base
	// plus every proficiency row ever granted or picked. The stored value
	// already carries the prior rows, so rebase it to the new level.
	application.Proficiency = daggerheart.ProficiencyBase(draft.TargetLevel) +
		(sheet.Proficiency - daggerheart.ProficiencyBase(sheet.Level)) +
		proficiencyGrant + proficiencyExtra

	levelCard, _ := s.catalog.Card(draft.LevelCardID)
	levelCardRowID, err := id.NewID()
	if err != nil {
		return storage.LevelUpApplication{}, err
	}
	application.NewCards = append(application.NewCards, storage.DomainCardRecord{
		ID:          levelCardRowID,
		CharacterID: draft.CharacterID,
		CardID:      levelCard.ID,
		Domain:      levelCard.Domain,
		Level:       levelCard.Level,
		Source:      storage.CardSourceLevel,
	})

	eventID, err := id.NewID()
	if err != nil {
		return storage.LevelUpApplication{}, err
	}
	application.Events = append(application.Events, storage.TelemetryEvent{
		ID:          eventID,
		CharacterID: draft.CharacterID,
		EventType:   telemetry.EventLevelUpApplied,
		PayloadJSON: levelUpEventPayload(sheet.Level, draft.TargetLevel),
	})

	return application, nil
}

func levelUpEventPayload(fromLevel, toLevel int) string {
	payload, err := json.Marshal(map[string]int{"from": fromLevel, "to": toLevel})
	if err != nil {
		return "{}"
	}
	return string(payload)
}
