package daggerheart

import (
	"strconv"

	apperrors "github.com/louisbranch/hearthbound/internal/platform/errors"
)

// Validator checks a completed level-up draft against a character sheet and
// the content catalogue. Rules run in a fixed order so callers always see the
// most fundamental violation first: target level, then draft completeness,
// then tier achievements, then slot availability, then each selection's
// payload, then the per-level card.
type Validator struct {
	catalog Catalog
}

// NewValidator returns a validator backed by the given catalogue.
func NewValidator(catalog Catalog) *Validator {
	return &Validator{catalog: catalog}
}

// ValidateDraft runs the full rule set and returns the first violation found.
// A nil return means the draft can be applied as-is.
func (v *Validator) ValidateDraft(sheet CharacterSheet, draft Draft) error {
	if err := v.validateTargetLevel(sheet, draft); err != nil {
		return err
	}
	if err := draft.EnsureComplete(); err != nil {
		return err
	}

	// Cards seen so far in this draft. Used to reject duplicates across
	// the tier card, slot picks, and the per-level card.
	seenCards := map[string]bool{}

	// Domains granted mid-draft by a multiclass pick are usable by later
	// picks in the same draft.
	draftDomains := []string{}

	if draft.RequiresTierAchievements() {
		if err := v.validateTierAchievements(sheet, draft, seenCards); err != nil {
			return err
		}
	}

	if err := v.validateSlots(sheet, draft); err != nil {
		return err
	}

	markedInDraft := map[Trait]bool{}
	for _, selection := range draft.Selections() {
		if err := v.validateChoice(sheet, draft, selection, seenCards, &draftDomains, markedInDraft); err != nil {
			return err
		}
	}

	return v.validateLevelCard(sheet, draft, seenCards, draftDomains)
}

func (v *Validator) validateTargetLevel(sheet CharacterSheet, draft Draft) error {
	if sheet.Level >= LevelMax {
		return apperrors.New(apperrors.CodeCharacterAtMaxLevel, "character is already at the maximum level")
	}
	if draft.TargetLevel != sheet.Level+1 {
		return apperrors.WithMetadata(
			apperrors.CodeCharacterInvalidLevel,
			"target level must be exactly one above the current level",
			map[string]string{
				"current": strconv.Itoa(sheet.Level),
				"target":  strconv.Itoa(draft.TargetLevel),
			},
		)
	}
	return nil
}

func (v *Validator) validateTierAchievements(sheet CharacterSheet, draft Draft, seenCards map[string]bool) error {
	if draft.TierExperienceName == "" {
		return apperrors.New(apperrors.CodeTierExperienceNameEmpty, "tier experience name is required")
	}
	if len(draft.TierExperienceName) > ExperienceNameMax {
		return apperrors.New(apperrors.CodeTierExperienceNameTooLong, "tier experience name exceeds the maximum length")
	}
	if draft.TierCardID == "" {
		return apperrors.New(apperrors.CodeTierCardMissing, "tier domain card is required")
	}
	if err := v.validateCard(sheet, draft, draft.TierCardID, nil); err != nil {
		return err
	}
	seenCards[draft.TierCardID] = true
	return nil
}

// validateSlots checks that every selection draws from a legal option tier
// and that the tier has room, simulating occupancy as picks land.
func (v *Validator) validateSlots(sheet CharacterSheet, draft Draft) error {
	targetTier := TierForLevel(draft.TargetLevel)

	occupied := map[Tier]int{}
	for tier, slots := range sheet.SlotsUsed {
		occupied[tier] = len(slots)
	}

	for _, selection := range draft.Selections() {
		tier := selection.OptionTier
		if tier < TierTwo || tier > TierMax {
			return apperrors.WithMetadata(
				apperrors.CodeAdvancementInvalidTier,
				"advancement tier is out of range",
				map[string]string{"tier": strconv.Itoa(int(tier))},
			)
		}
		if tier > targetTier {
			return apperrors.WithMetadata(
				apperrors.CodeAdvancementLevelBelowTier,
				"character level is below the option's tier",
				map[string]string{
					"tier":  strconv.Itoa(int(tier)),
					"level": strconv.Itoa(draft.TargetLevel),
				},
			)
		}
		if selection.Choice == nil {
			return apperrors.New(apperrors.CodeAdvancementMalformedPayload, "advancement choice is required")
		}
		if _, ok := FindOption(tier, selection.Choice.AdvancementType()); !ok {
			return apperrors.WithMetadata(
				apperrors.CodeAdvancementUnknownOption,
				"advancement option is not offered at this tier",
				map[string]string{
					"tier": strconv.Itoa(int(tier)),
					"type": string(selection.Choice.AdvancementType()),
				},
			)
		}
		if occupied[tier] >= SlotCount {
			return apperrors.WithMetadata(
				apperrors.CodeCharacterNoSlotsAtTier,
				"no advancement slots remain at this tier",
				map[string]string{"tier": strconv.Itoa(int(tier))},
			)
		}
		occupied[tier]++
	}
	return nil
}

func (v *Validator) validateChoice(sheet CharacterSheet, draft Draft, selection SlotSelection, seenCards map[string]bool, draftDomains *[]string, markedInDraft map[Trait]bool) error {
	if err := validateBonus(selection.Choice); err != nil {
		return err
	}
	option, _ := FindOption(selection.OptionTier, selection.Choice.AdvancementType())
	if option.MaxSelections == 1 {
		taken := sheet.TakenCount(option.Type)
		for _, other := range draft.Selections() {
			if other.Choice != nil && other.Choice.AdvancementType() == option.Type {
				taken++
			}
		}
		// The loop above counts this selection itself.
		if taken > 1 {
			return apperrors.WithMetadata(
				apperrors.CodeAdvancementMaxSelections,
				"advancement can only be taken once",
				map[string]string{"type": string(option.Type)},
			)
		}
	}

	switch choice := selection.Choice.(type) {
	case TraitBonusChoice:
		return v.validateTraitBonus(sheet, draft, choice, markedInDraft)
	case ExperienceBonusChoice:
		return v.validateExperienceBonus(sheet, draft, choice)
	case DomainCardChoice:
		if choice.CardID == "" {
			return apperrors.New(apperrors.CodeAdvancementCardRequired, "a domain card is required")
		}
		if seenCards[choice.CardID] {
			return apperrors.WithMetadata(
				apperrors.CodeAdvancementCardDuplicate,
				"domain card already chosen in this level-up",
				map[string]string{"card": choice.CardID},
			)
		}
		if err := v.validateCard(sheet, draft, choice.CardID, *draftDomains); err != nil {
			return err
		}
		seenCards[choice.CardID] = true
		return nil
	case SubclassChoice:
		return v.validateSubclass(sheet, choice)
	case MulticlassChoice:
		if err := v.validateMulticlass(sheet, choice); err != nil {
			return err
		}
		*draftDomains = append(*draftDomains, choice.Domain)
		return nil
	case HitPointChoice, EvasionChoice, StressChoice, ProficiencyChoice:
		return nil
	default:
		return apperrors.WithMetadata(
			apperrors.CodeAdvancementUnknownType,
			"unrecognized advancement type",
			map[string]string{"type": string(selection.Choice.AdvancementType())},
		)
	}
}

func (v *Validator) validateTraitBonus(sheet CharacterSheet, draft Draft, choice TraitBonusChoice, markedInDraft map[Trait]bool) error {
	if len(choice.Traits) != 2 || choice.Traits[0] == choice.Traits[1] {
		return apperrors.New(apperrors.CodeAdvancementTraitCount, "exactly two distinct traits are required")
	}
	// Levels 5 and 8 clear every mark before new picks land, so existing
	// marks do not constrain this draft.
	cleared := ClearsTraitMarks(draft.TargetLevel)
	for _, trait := range choice.Traits {
		parsed, err := ParseTrait(string(trait))
		if err != nil {
			return err
		}
		state, ok := sheet.TraitByName(parsed)
		if !ok {
			return apperrors.WithMetadata(
				apperrors.CodeCharacterInvalidTrait,
				"trait is not on the character sheet",
				map[string]string{"trait": string(parsed)},
			)
		}
		if (state.Marked && !cleared) || markedInDraft[parsed] {
			return apperrors.WithMetadata(
				apperrors.CodeAdvancementTraitMarked,
				"trait was already raised this tier cycle",
				map[string]string{"trait": string(parsed)},
			)
		}
		markedInDraft[parsed] = true
	}
	return nil
}

func (v *Validator) validateExperienceBonus(sheet CharacterSheet, draft Draft, choice ExperienceBonusChoice) error {
	if len(choice.Experiences) < 2 {
		return apperrors.New(apperrors.CodeAdvancementExperienceCount, "at least two experiences are required")
	}
	for _, name := range choice.Experiences {
		// An experience created by this draft's tier achievement counts.
		if name == draft.TierExperienceName {
			continue
		}
		if !sheet.HasExperience(name) {
			return apperrors.WithMetadata(
				apperrors.CodeAdvancementExperienceMissing,
				"experience is not on the character sheet",
				map[string]string{"experience": name},
			)
		}
	}
	return nil
}

func (v *Validator) validateSubclass(sheet CharacterSheet, choice SubclassChoice) error {
	if choice.SubclassID == "" {
		return apperrors.New(apperrors.CodeAdvancementSubclassRequired, "a subclass is required")
	}
	subclasses, ok := v.catalog.Subclasses(sheet.ClassID)
	if !ok {
		return apperrors.WithMetadata(
			apperrors.CodeCharacterInvalidClass,
			"class has no subclasses in the catalogue",
			map[string]string{"class": sheet.ClassID},
		)
	}
	for _, id := range subclasses {
		if id == choice.SubclassID {
			return nil
		}
	}
	return apperrors.WithMetadata(
		apperrors.CodeAdvancementSubclassRequired,
		"subclass does not belong to the character's class",
		map[string]string{"class": sheet.ClassID, "subclass": choice.SubclassID},
	)
}

func (v *Validator) validateMulticlass(sheet CharacterSheet, choice MulticlassChoice) error {
	if choice.ClassID == "" {
		return apperrors.New(apperrors.CodeAdvancementClassRequired, "a class is required")
	}
	if choice.ClassID == sheet.ClassID {
		return apperrors.WithMetadata(
			apperrors.CodeCharacterInvalidClass,
			"multiclass must differ from the character's class",
			map[string]string{"class": choice.ClassID},
		)
	}
	domains, ok := v.catalog.ClassDomains(choice.ClassID)
	if !ok {
		return apperrors.WithMetadata(
			apperrors.CodeCharacterInvalidClass,
			"unknown class",
			map[string]string{"class": choice.ClassID},
		)
	}
	for _, domain := range domains {
		if domain == choice.Domain {
			return nil
		}
	}
	return apperrors.WithMetadata(
		apperrors.CodeAdvancementCardDomainForbidden,
		"domain is not granted by the chosen class",
		map[string]string{"class": choice.ClassID, "domain": choice.Domain},
	)
}

func (v *Validator) validateLevelCard(sheet CharacterSheet, draft Draft, seenCards map[string]bool, draftDomains []string) error {
	if draft.LevelCardID == "" {
		return apperrors.New(apperrors.CodeAdvancementCardRequired, "a domain card for the new level is required")
	}
	if seenCards[draft.LevelCardID] {
		return apperrors.WithMetadata(
			apperrors.CodeAdvancementCardDuplicate,
			"domain card already chosen in this level-up",
			map[string]string{"card": draft.LevelCardID},
		)
	}
	return v.validateCard(sheet, draft, draft.LevelCardID, draftDomains)
}

// validateCard runs the shared domain card checks: the card exists, its
// domain is reachable, its level is within reach of the target level, and
// the character does not own it yet.
func (v *Validator) validateCard(sheet CharacterSheet, draft Draft, cardID string, draftDomains []string) error {
	card, ok := v.catalog.Card(cardID)
	if !ok {
		return apperrors.WithMetadata(
			apperrors.CodeContentUnknownCard,
			"domain card is not in the catalogue",
			map[string]string{"card": cardID},
		)
	}
	if !sheet.HasDomain(card.Domain) && !containsString(draftDomains, card.Domain) {
		return apperrors.WithMetadata(
			apperrors.CodeAdvancementCardDomainForbidden,
			"character has no access to the card's domain",
			map[string]string{"card": cardID, "domain": card.Domain},
		)
	}
	maxLevel := MaxDomainCardLevel(draft.TargetLevel)
	if card.Level > maxLevel {
		return apperrors.WithMetadata(
			apperrors.CodeAdvancementCardLevelTooHigh,
			"domain card level exceeds what the character can take",
			map[string]string{
				"card":  cardID,
				"level": strconv.Itoa(card.Level),
				"max":   strconv.Itoa(maxLevel),
			},
		)
	}
	if sheet.OwnsCard(cardID) {
		return apperrors.WithMetadata(
			apperrors.CodeAdvancementCardOwned,
			"character already owns this domain card",
			map[string]string{"card": cardID},
		)
	}
	return nil
}

// validateBonus pins caller-supplied bonus fields to the fixed +1 grant.
// Zero is accepted and normalized to 1 when the payload is encoded.
func validateBonus(choice AdvancementChoice) error {
	bonus := 0
	switch c := choice.(type) {
	case HitPointChoice:
		bonus = c.Bonus
	case EvasionChoice:
		bonus = c.Bonus
	case StressChoice:
		bonus = c.Bonus
	case TraitBonusChoice:
		bonus = c.Bonus
	case ExperienceBonusChoice:
		bonus = c.Bonus
	case ProficiencyChoice:
		bonus = c.Bonus
	default:
		return nil
	}
	if bonus != 0 && bonus != 1 {
		return apperrors.WithMetadata(
			apperrors.CodeAdvancementMalformedPayload,
			"advancement bonus must be 1",
			map[string]string{
				"type":  string(choice.AdvancementType()),
				"bonus": strconv.Itoa(bonus),
			},
		)
	}
	return nil
}

func containsString(values []string, want string) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}
	return false
}
