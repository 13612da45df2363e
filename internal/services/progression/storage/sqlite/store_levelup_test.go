package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/louisbranch/hearthbound/internal/platform/errors"
	"github.com/louisbranch/hearthbound/internal/services/progression/storage"
)

func levelTwoApplication(characterID string) storage.LevelUpApplication {
	return storage.LevelUpApplication{
		CharacterID: characterID,
		FromLevel:   1,
		ToLevel:     2,
		Proficiency: 2,
		Advancements: []storage.AdvancementRecord{
			{
				ID:                "adv-0",
				CharacterID:       characterID,
				Tier:              2,
				AdvancementNumber: 0,
				Level:             2,
				AdvancementType:   "proficiency",
				Description:       "Gained +1 proficiency",
				PayloadJSON:       `{"bonus":1}`,
			},
			{
				ID:                "adv-1",
				CharacterID:       characterID,
				Tier:              2,
				AdvancementNumber: 1,
				Level:             2,
				AdvancementType:   "trait_bonus",
				Description:       "Gained +1 to agility and strength",
				PayloadJSON:       `{"traits":["agility","strength"],"bonus":1}`,
			},
			{
				ID:                "adv-2",
				CharacterID:       characterID,
				Tier:              2,
				AdvancementNumber: 2,
				Level:             2,
				AdvancementType:   "hit_point",
				Description:       "Gained +1 Hit Point slot",
				PayloadJSON:       `{"bonus":1}`,
			},
		},
		NewExperiences: []storage.ExperienceRecord{
			{ID: "exp-1", CharacterID: characterID, Name: "Blacksmith", Modifier: 2},
		},
		NewCards: []storage.DomainCardRecord{
			{ID: "dc-1", CharacterID: characterID, CardID: "bone-2-strategic-approach", Domain: "bone", Level: 2, Source: storage.CardSourceTierAchievement},
			{ID: "dc-2", CharacterID: characterID, CardID: "blade-2-reckless", Domain: "blade", Level: 2, Source: storage.CardSourceLevel},
		},
		TraitIncrements: map[string]int{"agility": 1, "strength": 1},
		Events: []storage.TelemetryEvent{
			{ID: "ev-1", CharacterID: characterID, EventType: "level_up.applied"},
		},
	}
}

func TestApplyLevelUp(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	seedCharacter(t, store, "char-1")

	if err := store.ApplyLevelUp(ctx, levelTwoApplication("char-1")); err != nil {
		t.Fatalf("ApplyLevelUp: %v", err)
	}

	character, err := store.GetCharacter(ctx, "char-1")
	if err != nil {
		t.Fatalf("GetCharacter: %v", err)
	}
	if character.Level != 2 || character.Proficiency != 2 {
		t.Errorf("character = level %d proficiency %d, want 2/2", character.Level, character.Proficiency)
	}

	advancements, err := store.ListAdvancements(ctx, "char-1")
	if err != nil {
		t.Fatalf("ListAdvancements: %v", err)
	}
	if len(advancements) != 3 {
		t.Fatalf("got %d advancements, want 3", len(advancements))
	}
	if advancements[0].AdvancementNumber != 0 {
		t.Errorf("tier achievement should sort first, got number %d", advancements[0].AdvancementNumber)
	}

	traits, err := store.ListTraits(ctx, "char-1")
	if err != nil {
		t.Fatalf("ListTraits: %v", err)
	}
	marked := 0
	for _, trait := range traits {
		if trait.Trait == "agility" || trait.Trait == "strength" {
			if trait.Bonus != 1 || !trait.IsMarked {
				t.Errorf("trait %s = bonus %d marked %v", trait.Trait, trait.Bonus, trait.IsMarked)
			}
			marked++
		}
	}
	if marked != 2 {
		t.Errorf("marked %d traits, want 2", marked)
	}

	cards, err := store.ListDomainCards(ctx, "char-1")
	if err != nil {
		t.Fatalf("ListDomainCards: %v", err)
	}
	if len(cards) != 2 {
		t.Errorf("got %d cards, want 2", len(cards))
	}

	events, err := store.ListTelemetryEvents(ctx, "char-1", 10)
	if err != nil {
		t.Fatalf("ListTelemetryEvents: %v", err)
	}
	if len(events) != 1 || events[0].EventType != "level_up.applied" {
		t.Errorf("events = %+v", events)
	}
}

func TestApplyLevelUpRejectsInvalidSlotNumber(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	seedCharacter(t, store, "char-1")

	application := levelTwoApplication("char-1")
	application.Advancements[2].AdvancementNumber = 3

	err := store.ApplyLevelUp(ctx, application)
	if !errors.Is(err, apperrors.New(apperrors.CodeAdvancementInvalidSlot, "")) {
		t.Fatalf("expected %s, got %v", apperrors.CodeAdvancementInvalidSlot, err)
	}

	character, err := store.GetCharacter(ctx, "char-1")
	if err != nil {
		t.Fatalf("GetCharacter: %v", err)
	}
	if character.Level != 1 {
		t.Errorf("level = %d after rejected apply, want 1", character.Level)
	}
}

func TestApplyLevelUpConflictOnLevel(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	seedCharacter(t, store, "char-1")

	if err := store.ApplyLevelUp(ctx, levelTwoApplication("char-1")); err != nil {
		t.Fatalf("first ApplyLevelUp: %v", err)
	}

	// A second confirm built against the stale level loses the race.
	err := store.ApplyLevelUp(ctx, levelTwoApplication("char-1"))
	if !errors.Is(err, storage.ErrAdvancementSlotTaken) {
		t.Fatalf("expected ErrAdvancementSlotTaken, got %v", err)
	}

	// Nothing from the losing confirm may persist.
	advancements, err := store.ListAdvancements(ctx, "char-1")
	if err != nil {
		t.Fatalf("ListAdvancements: %v", err)
	}
	if len(advancements) != 3 {
		t.Errorf("got %d advancements after failed confirm, want 3", len(advancements))
	}
}

func TestApplyLevelUpConflictOnSlot(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	seedCharacter(t, store, "char-1")

	if err := store.ApplyLevelUp(ctx, levelTwoApplication("char-1")); err != nil {
		t.Fatalf("first ApplyLevelUp: %v", err)
	}

	// Same tier slot numbers with the correct from-level trip the ledger's
	// unique constraint instead.
	second := levelTwoApplication("char-1")
	second.FromLevel = 2
	second.ToLevel = 3
	for i := range second.Advancements {
		second.Advancements[i].ID = second.Advancements[i].ID + "-b"
		second.Advancements[i].Level = 3
	}
	second.NewExperiences = nil
	second.NewCards = nil

	err := store.ApplyLevelUp(ctx, second)
	if !errors.Is(err, storage.ErrAdvancementSlotTaken) {
		t.Fatalf("expected ErrAdvancementSlotTaken, got %v", err)
	}

	character, err := store.GetCharacter(ctx, "char-1")
	if err != nil {
		t.Fatalf("GetCharacter: %v", err)
	}
	if character.Level != 2 {
		t.Errorf("failed confirm moved level to %d", character.Level)
	}
}

func TestApplyLevelUpMissingCharacter(t *testing.T) {
	store := openTestStore(t)
	err := store.ApplyLevelUp(context.Background(), levelTwoApplication("ghost"))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplyLevelUpClearsTraitMarks(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	seedCharacter(t, store, "char-1")
	now := time.Now().UTC()

	if err := store.PutTrait(ctx, storage.TraitRecord{
		CharacterID: "char-1",
		Trait:       "presence",
		Bonus:       1,
		IsMarked:    true,
		UpdatedAt:   now,
	}); err != nil {
		t.Fatalf("PutTrait: %v", err)
	}

	application := storage.LevelUpApplication{
		CharacterID:     "char-1",
		FromLevel:       1,
		ToLevel:         2,
		Proficiency:     2,
		ClearTraitMarks: true,
		TraitIncrements: map[string]int{"agility": 1, "strength": 1},
		Advancements: []storage.AdvancementRecord{
			{ID: "adv-1", CharacterID: "char-1", Tier: 2, AdvancementNumber: 1, Level: 2, AdvancementType: "trait_bonus", PayloadJSON: "{}"},
		},
	}
	if err := store.ApplyLevelUp(ctx, application); err != nil {
		t.Fatalf("ApplyLevelUp: %v", err)
	}

	traits, err := store.ListTraits(ctx, "char-1")
	if err != nil {
		t.Fatalf("ListTraits: %v", err)
	}
	for _, trait := range traits {
		switch trait.Trait {
		case "agility", "strength":
			if !trait.IsMarked {
				t.Errorf("trait %s should be marked after increment", trait.Trait)
			}
		case "presence":
			if trait.IsMarked {
				t.Error("presence mark should have cleared")
			}
			if trait.Bonus != 1 {
				t.Errorf("presence bonus = %d, clearing marks must not touch bonuses", trait.Bonus)
			}
		default:
			if trait.IsMarked {
				t.Errorf("trait %s unexpectedly marked", trait.Trait)
			}
		}
	}
}

func TestApplyLevelUpSubclass(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	seedCharacter(t, store, "char-1")

	subclass := "call-of-the-slayer"
	application := storage.LevelUpApplication{
		CharacterID: "char-1",
		FromLevel:   1,
		ToLevel:     2,
		Proficiency: 2,
		SubclassID:  &subclass,
	}
	if err := store.ApplyLevelUp(ctx, application); err != nil {
		t.Fatalf("ApplyLevelUp: %v", err)
	}

	character, err := store.GetCharacter(ctx, "char-1")
	if err != nil {
		t.Fatalf("GetCharacter: %v", err)
	}
	if character.SubclassID != subclass {
		t.Errorf("SubclassID = %q, want %q", character.SubclassID, subclass)
	}
}
