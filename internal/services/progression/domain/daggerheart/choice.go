package daggerheart

import (
	"encoding/json"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/hearthbound/internal/platform/errors"
)

// AdvancementChoice is the tagged union of everything a player can record in
// an advancement slot. Each advancement type has exactly one variant carrying
// only its relevant fields, so payload shapes are checked by construction
// rather than at runtime.
type AdvancementChoice interface {
	// AdvancementType returns the ledger discriminator for this choice.
	AdvancementType() AdvancementType
	// Describe returns the human-readable ledger description.
	Describe() string
}

// HitPointChoice permanently adds one Hit Point slot.
type HitPointChoice struct {
	Bonus int `json:"bonus"`
}

// AdvancementType implements AdvancementChoice.
func (HitPointChoice) AdvancementType() AdvancementType { return AdvancementHitPoint }

// Describe implements AdvancementChoice.
func (c HitPointChoice) Describe() string {
	return fmt.Sprintf("Gained %+d Hit Point slot", normalizeBonus(c.Bonus))
}

// EvasionChoice permanently raises Evasion.
type EvasionChoice struct {
	Bonus int `json:"bonus"`
}

func (EvasionChoice) AdvancementType() AdvancementType { return AdvancementEvasion }

func (c EvasionChoice) Describe() string {
	return fmt.Sprintf("Gained %+d Evasion", normalizeBonus(c.Bonus))
}

// StressChoice permanently adds one Stress slot.
type StressChoice struct {
	Bonus int `json:"bonus"`
}

func (StressChoice) AdvancementType() AdvancementType { return AdvancementStress }

func (c StressChoice) Describe() string {
	return fmt.Sprintf("Gained %+d Stress slot", normalizeBonus(c.Bonus))
}

// TraitBonusChoice raises two unmarked traits and marks them for the rest of
// the tier cycle.
type TraitBonusChoice struct {
	Traits []Trait `json:"traits"`
	Bonus  int     `json:"bonus"`
}

func (TraitBonusChoice) AdvancementType() AdvancementType { return AdvancementTraitBonus }

func (c TraitBonusChoice) Describe() string {
	names := make([]string, 0, len(c.Traits))
	for _, trait := range c.Traits {
		names = append(names, string(trait))
	}
	return fmt.Sprintf("Gained %+d to %s", normalizeBonus(c.Bonus), strings.Join(names, " and "))
}

// ExperienceBonusChoice raises the modifier of two or more experiences.
type ExperienceBonusChoice struct {
	Experiences []string `json:"experiences"`
	Bonus       int      `json:"bonus"`
}

func (ExperienceBonusChoice) AdvancementType() AdvancementType { return AdvancementExperienceBonus }

func (c ExperienceBonusChoice) Describe() string {
	return fmt.Sprintf("Gained %+d to %s", normalizeBonus(c.Bonus), strings.Join(c.Experiences, " and "))
}

// DomainCardChoice acquires an extra domain card as a slot pick.
type DomainCardChoice struct {
	Domain string `json:"domain"`
	CardID string `json:"domain_card"`
}

func (DomainCardChoice) AdvancementType() AdvancementType { return AdvancementDomainCard }

func (c DomainCardChoice) Describe() string {
	return fmt.Sprintf("Acquired %s card %s", c.Domain, c.CardID)
}

// ProficiencyChoice records a proficiency increase: the automatic tier grant
// or the tier 4 extra-proficiency pick.
type ProficiencyChoice struct {
	Bonus int `json:"bonus"`
}

func (ProficiencyChoice) AdvancementType() AdvancementType { return AdvancementProficiency }

func (c ProficiencyChoice) Describe() string {
	return fmt.Sprintf("Gained %+d Proficiency", normalizeBonus(c.Bonus))
}

// SubclassChoice takes an upgraded subclass card.
type SubclassChoice struct {
	SubclassID string `json:"subclass"`
}

func (SubclassChoice) AdvancementType() AdvancementType { return AdvancementSubclass }

func (c SubclassChoice) Describe() string {
	return "Took subclass upgrade " + c.SubclassID
}

// MulticlassChoice takes an additional class and one of its domains.
type MulticlassChoice struct {
	ClassID string `json:"class"`
	Domain  string `json:"domain"`
}

func (MulticlassChoice) AdvancementType() AdvancementType { return AdvancementMulticlass }

func (c MulticlassChoice) Describe() string {
	return fmt.Sprintf("Multiclassed into %s (%s)", c.ClassID, c.Domain)
}

// normalizeBonus defaults unset bonuses to +1, the SRD grant size.
func normalizeBonus(bonus int) int {
	if bonus == 0 {
		return 1
	}
	return bonus
}

// EncodePayload serializes a choice for the advancement ledger's payload
// column.
func EncodePayload(choice AdvancementChoice) (string, error) {
	if choice == nil {
		return "", apperrors.New(apperrors.CodeAdvancementMalformedPayload, "advancement choice is required")
	}
	raw, err := json.Marshal(choice)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeAdvancementMalformedPayload, "encode advancement payload", err)
	}
	return string(raw), nil
}

// DecodePayload reverses EncodePayload for a persisted ledger row. Unknown
// advancement types and malformed payloads fail hard: silently coercing them
// would corrupt the ledger's auditability.
func DecodePayload(advancementType AdvancementType, payloadJSON string) (AdvancementChoice, error) {
	var target AdvancementChoice
	switch advancementType {
	case AdvancementHitPoint:
		target = &HitPointChoice{}
	case AdvancementEvasion:
		target = &EvasionChoice{}
	case AdvancementStress:
		target = &StressChoice{}
	case AdvancementTraitBonus:
		target = &TraitBonusChoice{}
	case AdvancementExperienceBonus:
		target = &ExperienceBonusChoice{}
	case AdvancementDomainCard, AdvancementTierDomainCard:
		target = &DomainCardChoice{}
	case AdvancementProficiency:
		target = &ProficiencyChoice{}
	case AdvancementSubclass:
		target = &SubclassChoice{}
	case AdvancementMulticlass:
		target = &MulticlassChoice{}
	default:
		return nil, apperrors.WithMetadata(
			apperrors.CodeAdvancementUnknownType,
			"unrecognized advancement type "+string(advancementType),
			map[string]string{"type": string(advancementType)},
		)
	}

	if err := json.Unmarshal([]byte(payloadJSON), target); err != nil {
		return nil, apperrors.WrapWithMetadata(
			apperrors.CodeAdvancementMalformedPayload,
			"decode advancement payload",
			map[string]string{"type": string(advancementType)},
			err,
		)
	}

	switch value := target.(type) {
	case *HitPointChoice:
		return *value, nil
	case *EvasionChoice:
		return *value, nil
	case *StressChoice:
		return *value, nil
	case *TraitBonusChoice:
		return *value, nil
	case *ExperienceBonusChoice:
		return *value, nil
	case *DomainCardChoice:
		return *value, nil
	case *ProficiencyChoice:
		return *value, nil
	case *SubclassChoice:
		return *value, nil
	case *MulticlassChoice:
		return *value, nil
	default:
		return nil, apperrors.New(apperrors.CodeAdvancementUnknownType, "unrecognized advancement choice")
	}
}
