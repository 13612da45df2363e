package daggerheart

import (
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/hearthbound/internal/platform/errors"
)

// Step identifies the stage a level-up draft is in. Steps advance strictly
// forward; a draft never moves backwards.
type Step string

const (
	// StepTierAchievements collects the new experience and tier domain
	// card granted when a level crosses into a new tier.
	StepTierAchievements Step = "tier_achievements"
	// StepFirstAdvancement collects the first slot selection.
	StepFirstAdvancement Step = "first_advancement"
	// StepSecondAdvancement collects the second slot selection.
	StepSecondAdvancement Step = "second_advancement"
	// StepConfirmation means the draft is complete and ready to apply.
	StepConfirmation Step = "confirmation"
)

// SlotSelection is one of the two advancement picks a level grants. Cross-tier
// picks record the tier whose option table the choice came from, which may be
// below the character's current tier.
type SlotSelection struct {
	OptionTier Tier
	Choice     AdvancementChoice
}

// Draft is the in-progress state of a single level-up. It is a value type:
// transitions return a new Draft and never mutate the receiver, so a draft
// held by a caller stays consistent even if a transition fails.
type Draft struct {
	CharacterID string
	TargetLevel int

	// Tier achievement fields, only populated when TargetLevel is a tier
	// achievement level.
	TierExperienceName string
	TierCardID         string

	// LevelCardID is the domain card granted by the level itself,
	// independent of any domain_card slot picks.
	LevelCardID string

	First  *SlotSelection
	Second *SlotSelection
}

// NewDraft starts a level-up toward the given target level.
func NewDraft(characterID string, targetLevel int) Draft {
	return Draft{CharacterID: characterID, TargetLevel: targetLevel}
}

// RequiresTierAchievements reports whether this draft's target level grants
// tier achievements.
func (d Draft) RequiresTierAchievements() bool {
	return IsTierAchievementLevel(d.TargetLevel)
}

// Step derives the draft's current stage from which fields are populated.
func (d Draft) Step() Step {
	if d.RequiresTierAchievements() && (d.TierExperienceName == "" || d.TierCardID == "") {
		return StepTierAchievements
	}
	if d.First == nil {
		return StepFirstAdvancement
	}
	if d.Second == nil {
		return StepSecondAdvancement
	}
	return StepConfirmation
}

// WithTierAchievements records the new experience and tier domain card. Only
// legal while the draft is at the tier achievements step.
func (d Draft) WithTierAchievements(experienceName, cardID string) (Draft, error) {
	if step := d.Step(); step != StepTierAchievements {
		return Draft{}, wrongStep(step, StepTierAchievements)
	}
	experienceName = strings.TrimSpace(experienceName)
	if experienceName == "" {
		return Draft{}, apperrors.New(apperrors.CodeTierExperienceNameEmpty, "tier experience name is required")
	}
	if len(experienceName) > ExperienceNameMax {
		return Draft{}, apperrors.WithMetadata(
			apperrors.CodeTierExperienceNameTooLong,
			"tier experience name exceeds the maximum length",
			map[string]string{"max": strconv.Itoa(ExperienceNameMax)},
		)
	}
	if cardID == "" {
		return Draft{}, apperrors.New(apperrors.CodeTierCardMissing, "tier domain card is required")
	}
	d.TierExperienceName = experienceName
	d.TierCardID = cardID
	return d, nil
}

// WithFirstSelection records the first slot pick.
func (d Draft) WithFirstSelection(selection SlotSelection) (Draft, error) {
	if step := d.Step(); step != StepFirstAdvancement {
		return Draft{}, wrongStep(step, StepFirstAdvancement)
	}
	d.First = &selection
	return d, nil
}

// WithSecondSelection records the second slot pick.
func (d Draft) WithSecondSelection(selection SlotSelection) (Draft, error) {
	if step := d.Step(); step != StepSecondAdvancement {
		return Draft{}, wrongStep(step, StepSecondAdvancement)
	}
	d.Second = &selection
	return d, nil
}

// WithLevelCard records the domain card granted by the level itself. Legal at
// any step before confirmation completes.
func (d Draft) WithLevelCard(cardID string) (Draft, error) {
	if cardID == "" {
		return Draft{}, apperrors.New(apperrors.CodeAdvancementCardRequired, "a domain card for the new level is required")
	}
	d.LevelCardID = cardID
	return d, nil
}

// Complete reports whether every field the target level requires is present.
func (d Draft) Complete() bool {
	return d.Step() == StepConfirmation && d.LevelCardID != ""
}

// EnsureComplete returns an error describing the first missing piece of an
// incomplete draft.
func (d Draft) EnsureComplete() error {
	if d.Complete() {
		return nil
	}
	missing := "level domain card"
	if step := d.Step(); step != StepConfirmation {
		missing = string(step)
	}
	return apperrors.WithMetadata(
		apperrors.CodeLevelUpDraftIncomplete,
		"level-up draft is incomplete",
		map[string]string{"missing": missing},
	)
}

// Selections returns the populated slot selections in pick order.
func (d Draft) Selections() []SlotSelection {
	selections := make([]SlotSelection, 0, 2)
	if d.First != nil {
		selections = append(selections, *d.First)
	}
	if d.Second != nil {
		selections = append(selections, *d.Second)
	}
	return selections
}

func wrongStep(current, expected Step) error {
	return apperrors.WithMetadata(
		apperrors.CodeLevelUpWrongStep,
		"operation is not valid at this step",
		map[string]string{"step": string(current), "expected": string(expected)},
	)
}
