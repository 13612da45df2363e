package daggerheart

import (
	"errors"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/hearthbound/internal/platform/errors"
)

func TestDraftStepProgression(t *testing.T) {
	draft := NewDraft("char-1", 2)
	if got := draft.Step(); got != StepTierAchievements {
		t.Fatalf("fresh draft at level 2: step = %s, want %s", got, StepTierAchievements)
	}

	draft, err := draft.WithTierAchievements("Blacksmith", "blade-1-whirlwind")
	if err != nil {
		t.Fatalf("WithTierAchievements: %v", err)
	}
	if got := draft.Step(); got != StepFirstAdvancement {
		t.Fatalf("after tier achievements: step = %s, want %s", got, StepFirstAdvancement)
	}

	draft, err = draft.WithFirstSelection(SlotSelection{OptionTier: TierTwo, Choice: HitPointChoice{Bonus: 1}})
	if err != nil {
		t.Fatalf("WithFirstSelection: %v", err)
	}
	if got := draft.Step(); got != StepSecondAdvancement {
		t.Fatalf("after first selection: step = %s, want %s", got, StepSecondAdvancement)
	}

	draft, err = draft.WithSecondSelection(SlotSelection{OptionTier: TierTwo, Choice: StressChoice{Bonus: 1}})
	if err != nil {
		t.Fatalf("WithSecondSelection: %v", err)
	}
	if got := draft.Step(); got != StepConfirmation {
		t.Fatalf("after second selection: step = %s, want %s", got, StepConfirmation)
	}

	if draft.Complete() {
		t.Fatal("draft without a level card should not be complete")
	}
	draft, err = draft.WithLevelCard("blade-2-reckless")
	if err != nil {
		t.Fatalf("WithLevelCard: %v", err)
	}
	if !draft.Complete() {
		t.Fatal("fully populated draft should be complete")
	}
	if err := draft.EnsureComplete(); err != nil {
		t.Fatalf("EnsureComplete: %v", err)
	}
}

func TestDraftSkipsTierAchievementsAtOrdinaryLevels(t *testing.T) {
	draft := NewDraft("char-1", 3)
	if got := draft.Step(); got != StepFirstAdvancement {
		t.Fatalf("fresh draft at level 3: step = %s, want %s", got, StepFirstAdvancement)
	}
	if _, err := draft.WithTierAchievements("Scout", "blade-1-whirlwind"); !isCode(err, apperrors.CodeLevelUpWrongStep) {
		t.Fatalf("expected %s, got %v", apperrors.CodeLevelUpWrongStep, err)
	}
}

func TestDraftRejectsOutOfOrderSelections(t *testing.T) {
	draft := NewDraft("char-1", 3)
	if _, err := draft.WithSecondSelection(SlotSelection{OptionTier: TierTwo, Choice: HitPointChoice{}}); !isCode(err, apperrors.CodeLevelUpWrongStep) {
		t.Fatalf("expected %s, got %v", apperrors.CodeLevelUpWrongStep, err)
	}

	draft, err := draft.WithFirstSelection(SlotSelection{OptionTier: TierTwo, Choice: HitPointChoice{}})
	if err != nil {
		t.Fatalf("WithFirstSelection: %v", err)
	}
	if _, err := draft.WithFirstSelection(SlotSelection{OptionTier: TierTwo, Choice: StressChoice{}}); !isCode(err, apperrors.CodeLevelUpWrongStep) {
		t.Fatalf("replacing a recorded selection: expected %s, got %v", apperrors.CodeLevelUpWrongStep, err)
	}
}

func TestDraftTierAchievementValidation(t *testing.T) {
	draft := NewDraft("char-1", 5)

	if _, err := draft.WithTierAchievements("   ", "bone-3-card"); !isCode(err, apperrors.CodeTierExperienceNameEmpty) {
		t.Fatalf("blank name: expected %s, got %v", apperrors.CodeTierExperienceNameEmpty, err)
	}
	long := strings.Repeat("x", ExperienceNameMax+1)
	if _, err := draft.WithTierAchievements(long, "bone-3-card"); !isCode(err, apperrors.CodeTierExperienceNameTooLong) {
		t.Fatalf("oversized name: expected %s, got %v", apperrors.CodeTierExperienceNameTooLong, err)
	}
	if _, err := draft.WithTierAchievements("Tracker", ""); !isCode(err, apperrors.CodeTierCardMissing) {
		t.Fatalf("missing card: expected %s, got %v", apperrors.CodeTierCardMissing, err)
	}

	got, err := draft.WithTierAchievements("  Tracker  ", "bone-3-card")
	if err != nil {
		t.Fatalf("WithTierAchievements: %v", err)
	}
	if got.TierExperienceName != "Tracker" {
		t.Errorf("name not trimmed: %q", got.TierExperienceName)
	}
}

func TestDraftTransitionsDoNotMutateReceiver(t *testing.T) {
	draft := NewDraft("char-1", 3)
	next, err := draft.WithFirstSelection(SlotSelection{OptionTier: TierTwo, Choice: HitPointChoice{}})
	if err != nil {
		t.Fatalf("WithFirstSelection: %v", err)
	}
	if draft.First != nil {
		t.Fatal("transition mutated the original draft")
	}
	if next.First == nil {
		t.Fatal("transition did not record the selection")
	}
}

func isCode(err error, code apperrors.Code) bool {
	return errors.Is(err, apperrors.New(code, ""))
}
