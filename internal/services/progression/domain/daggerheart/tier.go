package daggerheart

// Level and tier bounds for player characters.
const (
	LevelMin = 1
	LevelMax = 10

	TierMin = 1
	TierMax = 4

	// SlotCount is the number of player-chosen advancement slots per level.
	SlotCount = 2

	// TierAchievementSlot marks the automatic tier-achievement grant. It
	// never occupies a player slot.
	TierAchievementSlot = 0

	// TierExperienceModifier is the starting modifier of experiences gained
	// at tier-achievement levels.
	TierExperienceModifier = 2

	// ExperienceNameMax bounds experience names after trimming.
	ExperienceNameMax = 100
)

// Tier groups character levels for advancement option access.
type Tier int

const (
	TierTwo   Tier = 2
	TierThree Tier = 3
	TierFour  Tier = 4
)

// TierForLevel maps a target level to its advancement tier. Level 1 is
// pre-tier; the first level-up already draws from the tier 2 table.
func TierForLevel(level int) Tier {
	switch {
	case level <= 4:
		return TierTwo
	case level <= 7:
		return TierThree
	default:
		return TierFour
	}
}

// IsTierAchievementLevel reports whether reaching level grants the automatic
// tier achievements: a new experience and a tier domain card, plus a
// trait-mark clear at levels 5 and 8.
func IsTierAchievementLevel(level int) bool {
	return level == 2 || level == 5 || level == 8
}

// ClearsTraitMarks reports whether reaching level resets all marked traits.
func ClearsTraitMarks(level int) bool {
	return level == 5 || level == 8
}

// MinLevelForTier returns the lowest target level at which options of the
// given tier become selectable.
func MinLevelForTier(tier Tier) int {
	switch tier {
	case TierTwo:
		return 2
	case TierThree:
		return 5
	case TierFour:
		return 7
	default:
		return LevelMax + 1
	}
}

// MaxDomainCardLevel returns the highest domain card level selectable when
// reaching targetLevel. Tiers 2 and 3 cap cards at the level being reached;
// tier 4 removes the ceiling.
func MaxDomainCardLevel(targetLevel int) int {
	if TierForLevel(targetLevel) == TierFour {
		return LevelMax
	}
	return targetLevel
}

// ProficiencyBase returns the level-derived portion of the proficiency
// bonus. The total adds the sum of all proficiency advancement rows.
func ProficiencyBase(level int) int {
	switch {
	case level <= 4:
		return 1
	case level <= 7:
		return 2
	default:
		return 3
	}
}

// AdvancementType discriminates the advancement ledger rows.
type AdvancementType string

const (
	AdvancementHitPoint        AdvancementType = "hit_point"
	AdvancementEvasion         AdvancementType = "evasion"
	AdvancementStress          AdvancementType = "stress"
	AdvancementTraitBonus      AdvancementType = "trait_bonus"
	AdvancementExperienceBonus AdvancementType = "experience_bonus"
	AdvancementDomainCard      AdvancementType = "domain_card"
	AdvancementTierDomainCard  AdvancementType = "tier_domain_card"
	AdvancementProficiency     AdvancementType = "proficiency"
	AdvancementSubclass        AdvancementType = "subclass"
	AdvancementMulticlass      AdvancementType = "multiclass"
)

// AdvancementOption is one entry of a tier's advancement table.
type AdvancementOption struct {
	Type AdvancementType
	Tier Tier
	// MaxSelections caps selections of the type. Only caps of 1 are
	// enforced, across the character's entire history; repeatable options
	// carry the SRD table value for display.
	MaxSelections int
	Description   string
}

// tierTwoOptions is the base advancement table. It stays selectable at
// every later tier.
var tierTwoOptions = []AdvancementOption{
	{Type: AdvancementTraitBonus, Tier: TierTwo, MaxSelections: 3, Description: "Gain a +1 bonus to two unmarked character traits and mark them"},
	{Type: AdvancementHitPoint, Tier: TierTwo, MaxSelections: 3, Description: "Permanently gain one Hit Point slot"},
	{Type: AdvancementStress, Tier: TierTwo, MaxSelections: 3, Description: "Permanently gain one Stress slot"},
	{Type: AdvancementExperienceBonus, Tier: TierTwo, MaxSelections: 3, Description: "Permanently gain a +1 bonus to two Experiences"},
	{Type: AdvancementDomainCard, Tier: TierTwo, MaxSelections: 3, Description: "Choose an additional domain card of your level or lower"},
	{Type: AdvancementEvasion, Tier: TierTwo, MaxSelections: 1, Description: "Permanently gain a +1 bonus to your Evasion"},
}

var tierThreeOptions = []AdvancementOption{
	{Type: AdvancementTraitBonus, Tier: TierThree, MaxSelections: 3, Description: "Gain a +1 bonus to two unmarked character traits and mark them"},
	{Type: AdvancementHitPoint, Tier: TierThree, MaxSelections: 3, Description: "Permanently gain one Hit Point slot"},
	{Type: AdvancementStress, Tier: TierThree, MaxSelections: 3, Description: "Permanently gain one Stress slot"},
	{Type: AdvancementExperienceBonus, Tier: TierThree, MaxSelections: 3, Description: "Permanently gain a +1 bonus to two Experiences"},
	{Type: AdvancementDomainCard, Tier: TierThree, MaxSelections: 3, Description: "Choose an additional domain card of your level or lower"},
	{Type: AdvancementEvasion, Tier: TierThree, MaxSelections: 1, Description: "Permanently gain a +1 bonus to your Evasion"},
}

var tierFourOptions = []AdvancementOption{
	{Type: AdvancementTraitBonus, Tier: TierFour, MaxSelections: 3, Description: "Gain a +1 bonus to two unmarked character traits and mark them"},
	{Type: AdvancementHitPoint, Tier: TierFour, MaxSelections: 3, Description: "Permanently gain one Hit Point slot"},
	{Type: AdvancementStress, Tier: TierFour, MaxSelections: 3, Description: "Permanently gain one Stress slot"},
	{Type: AdvancementExperienceBonus, Tier: TierFour, MaxSelections: 3, Description: "Permanently gain a +1 bonus to two Experiences"},
	{Type: AdvancementDomainCard, Tier: TierFour, MaxSelections: 3, Description: "Choose an additional domain card of your level or lower"},
	{Type: AdvancementEvasion, Tier: TierFour, MaxSelections: 1, Description: "Permanently gain a +1 bonus to your Evasion"},
	{Type: AdvancementSubclass, Tier: TierFour, MaxSelections: 1, Description: "Take an upgraded subclass card"},
	{Type: AdvancementProficiency, Tier: TierFour, MaxSelections: 1, Description: "Increase your Proficiency by +1"},
	{Type: AdvancementMulticlass, Tier: TierFour, MaxSelections: 1, Description: "Multiclass: choose an additional class and one of its domains"},
}

// OptionsForTier returns the advancement table for one tier. Characters may
// also draw from every lower tier's table; AvailableOptions flattens that.
func OptionsForTier(tier Tier) []AdvancementOption {
	switch tier {
	case TierTwo:
		return append([]AdvancementOption(nil), tierTwoOptions...)
	case TierThree:
		return append([]AdvancementOption(nil), tierThreeOptions...)
	case TierFour:
		return append([]AdvancementOption(nil), tierFourOptions...)
	default:
		return nil
	}
}

// AvailableOptions returns every option selectable when leveling into
// targetLevel: the target tier's table plus all lower tiers'.
func AvailableOptions(targetLevel int) []AdvancementOption {
	tier := TierForLevel(targetLevel)
	var options []AdvancementOption
	for t := TierTwo; t <= tier; t++ {
		options = append(options, OptionsForTier(t)...)
	}
	return options
}

// FindOption looks up the option entry for a tier/type pair.
func FindOption(tier Tier, advancementType AdvancementType) (AdvancementOption, bool) {
	for _, option := range OptionsForTier(tier) {
		if option.Type == advancementType {
			return option, true
		}
	}
	return AdvancementOption{}, false
}
