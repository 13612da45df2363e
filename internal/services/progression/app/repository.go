package app

import (
	"context"

	"github.com/louisbranch/hearthbound/internal/services/progression/domain/daggerheart"
	"github.com/louisbranch/hearthbound/internal/services/progression/storage"
)

// Sheet loads the full advancement read-model for a character: identity,
// derived stats, experiences, cards, and slot occupancy.
func (s *Service) Sheet(ctx context.Context, characterID string) (daggerheart.CharacterSheet, error) {
	ctx, span := s.tracer.Start(ctx, "progression.Sheet")
	defer span.End()

	character, err := s.store.GetCharacter(ctx, characterID)
	if err != nil {
		return daggerheart.CharacterSheet{}, err
	}

	traits, err := s.store.ListTraits(ctx, characterID)
	if err != nil {
		return daggerheart.CharacterSheet{}, err
	}
	experiences, err := s.store.ListExperiences(ctx, characterID)
	if err != nil {
		return daggerheart.CharacterSheet{}, err
	}
	cards, err := s.store.ListDomainCards(ctx, characterID)
	if err != nil {
		return daggerheart.CharacterSheet{}, err
	}
	advancements, err := s.store.ListAdvancements(ctx, characterID)
	if err != nil {
		return daggerheart.CharacterSheet{}, err
	}

	sheet := daggerheart.CharacterSheet{
		CharacterID: character.ID,
		ClassID:     character.ClassID,
		SubclassID:  character.SubclassID,
		Level:       character.Level,
		Proficiency: character.Proficiency,
		TakenCounts: map[daggerheart.AdvancementType]int{},
		SlotsUsed:   map[daggerheart.Tier]map[int]bool{},
	}

	if domains, ok := s.catalog.ClassDomains(character.ClassID); ok {
		sheet.Domains = domains
	}

	for _, trait := range traits {
		sheet.Traits = append(sheet.Traits, daggerheart.TraitState{
			Trait:  daggerheart.Trait(trait.Trait),
			Bonus:  trait.Bonus,
			Marked: trait.IsMarked,
		})
	}
	for _, experience := range experiences {
		sheet.Experiences = append(sheet.Experiences, daggerheart.Experience{
			Name:     experience.Name,
			Modifier: experience.Modifier,
		})
	}
	for _, card := range cards {
		sheet.OwnedCardIDs = append(sheet.OwnedCardIDs, card.CardID)
	}

	for _, advancement := range advancements {
		advancementType := daggerheart.AdvancementType(advancement.AdvancementType)
		// Automatic tier-achievement grants never count against selection
		// caps; only player-chosen rows do.
		if advancement.AdvancementNumber != daggerheart.TierAchievementSlot {
			sheet.TakenCounts[advancementType]++
		}
		if advancementType == daggerheart.AdvancementMulticlass {
			if choice, err := daggerheart.DecodePayload(advancementType, advancement.PayloadJSON); err == nil {
				if multiclass, ok := choice.(daggerheart.MulticlassChoice); ok && multiclass.Domain != "" {
					sheet.Domains = append(sheet.Domains, multiclass.Domain)
				}
			}
		}
		// The tier achievement sentinel never occupies a player slot.
		if advancement.AdvancementNumber == daggerheart.TierAchievementSlot {
			continue
		}
		tier := daggerheart.Tier(advancement.Tier)
		if sheet.SlotsUsed[tier] == nil {
			sheet.SlotsUsed[tier] = map[int]bool{}
		}
		sheet.SlotsUsed[tier][advancement.AdvancementNumber] = true
	}

	return sheet, nil
}

// SlotAvailability reports the free advancement slot numbers per selectable
// tier for a target level.
type SlotAvailability struct {
	Tier      daggerheart.Tier
	FreeSlots []int
}

// AvailableSlots returns the free slots of every tier the character may draw
// from at its next level.
func (s *Service) AvailableSlots(ctx context.Context, characterID string) ([]SlotAvailability, error) {
	character, err := s.store.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}
	targetTier := daggerheart.TierForLevel(character.Level + 1)

	var availability []SlotAvailability
	for tier := daggerheart.TierTwo; tier <= targetTier; tier++ {
		free, err := s.freeSlots(ctx, characterID, tier)
		if err != nil {
			return nil, err
		}
		availability = append(availability, SlotAvailability{Tier: tier, FreeSlots: free})
	}
	return availability, nil
}

// freeSlots queries one tier's ledger rows for unoccupied player slots.
// The tier achievement sentinel never occupies one.
func (s *Service) freeSlots(ctx context.Context, characterID string, tier daggerheart.Tier) ([]int, error) {
	advancements, err := s.store.ListAdvancementsByTier(ctx, characterID, int(tier))
	if err != nil {
		return nil, err
	}
	used := map[int]bool{}
	for _, advancement := range advancements {
		if advancement.AdvancementNumber != daggerheart.TierAchievementSlot {
			used[advancement.AdvancementNumber] = true
		}
	}
	free := make([]int, 0, daggerheart.SlotCount)
	for slot := 1; slot <= daggerheart.SlotCount; slot++ {
		if !used[slot] {
			free = append(free, slot)
		}
	}
	return free, nil
}

// CanLevelUp reports whether the character can start a level-up: below the
// level cap with at least one free slot at the next level's tier.
func (s *Service) CanLevelUp(ctx context.Context, characterID string) (bool, error) {
	sheet, err := s.Sheet(ctx, characterID)
	if err != nil {
		return false, err
	}
	if sheet.Level >= daggerheart.LevelMax {
		return false, nil
	}

	targetTier := daggerheart.TierForLevel(sheet.Level + 1)
	return len(sheet.FreeSlots(targetTier)) > 0, nil
}

// AdvancementCounts tallies ledger rows per advancement type.
func (s *Service) AdvancementCounts(ctx context.Context, characterID string) (map[daggerheart.AdvancementType]int, error) {
	sheet, err := s.Sheet(ctx, characterID)
	if err != nil {
		return nil, err
	}
	return sheet.TakenCounts, nil
}

// MarkedTraits lists the traits currently marked by trait advancements.
func (s *Service) MarkedTraits(ctx context.Context, characterID string) ([]daggerheart.Trait, error) {
	traits, err := s.store.ListTraits(ctx, characterID)
	if err != nil {
		return nil, err
	}
	var marked []daggerheart.Trait
	for _, trait := range traits {
		if trait.IsMarked {
			marked = append(marked, daggerheart.Trait(trait.Trait))
		}
	}
	return marked, nil
}

// HitPointBonus sums the permanent Hit Point slots gained from advancements.
func (s *Service) HitPointBonus(ctx context.Context, characterID string) (int, error) {
	return s.sumPayloadBonuses(ctx, characterID, daggerheart.AdvancementHitPoint)
}

// StressBonus sums the permanent Stress slots gained from advancements.
func (s *Service) StressBonus(ctx context.Context, characterID string) (int, error) {
	return s.sumPayloadBonuses(ctx, characterID, daggerheart.AdvancementStress)
}

// EvasionBonus sums the permanent Evasion gained from advancements.
func (s *Service) EvasionBonus(ctx context.Context, characterID string) (int, error) {
	return s.sumPayloadBonuses(ctx, characterID, daggerheart.AdvancementEvasion)
}

// ProficiencyBonus returns the character's total proficiency: the
// level-derived base plus every proficiency advancement.
func (s *Service) ProficiencyBonus(ctx context.Context, characterID string) (int, error) {
	character, err := s.store.GetCharacter(ctx, characterID)
	if err != nil {
		return 0, err
	}
	extra, err := s.sumPayloadBonuses(ctx, characterID, daggerheart.AdvancementProficiency)
	if err != nil {
		return 0, err
	}
	return daggerheart.ProficiencyBase(character.Level) + extra, nil
}

// TraitBonuses returns each trait's accumulated bonus.
func (s *Service) TraitBonuses(ctx context.Context, characterID string) (map[daggerheart.Trait]int, error) {
	traits, err := s.store.ListTraits(ctx, characterID)
	if err != nil {
		return nil, err
	}
	bonuses := make(map[daggerheart.Trait]int, len(traits))
	for _, trait := range traits {
		bonuses[daggerheart.Trait(trait.Trait)] = trait.Bonus
	}
	return bonuses, nil
}

func (s *Service) sumPayloadBonuses(ctx context.Context, characterID string, advancementType daggerheart.AdvancementType) (int, error) {
	advancements, err := s.store.ListAdvancements(ctx, characterID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, advancement := range advancements {
		if daggerheart.AdvancementType(advancement.AdvancementType) != advancementType {
			continue
		}
		choice, err := daggerheart.DecodePayload(advancementType, advancement.PayloadJSON)
		if err != nil {
			return 0, err
		}
		switch value := choice.(type) {
		case daggerheart.HitPointChoice:
			total += bonusOrOne(value.Bonus)
		case daggerheart.StressChoice:
			total += bonusOrOne(value.Bonus)
		case daggerheart.EvasionChoice:
			total += bonusOrOne(value.Bonus)
		case daggerheart.ProficiencyChoice:
			total += bonusOrOne(value.Bonus)
		}
	}
	return total, nil
}

func bonusOrOne(bonus int) int {
	if bonus == 0 {
		return 1
	}
	return bonus
}

// Advancements returns the character's full ledger in tier and slot order.
func (s *Service) Advancements(ctx context.Context, characterID string) ([]storage.AdvancementRecord, error) {
	return s.store.ListAdvancements(ctx, characterID)
}
