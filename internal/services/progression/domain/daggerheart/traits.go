package daggerheart

import (
	apperrors "github.com/louisbranch/hearthbound/internal/platform/errors"
)

// Trait identifies one of the six Daggerheart character traits.
type Trait string

const (
	TraitAgility   Trait = "agility"
	TraitStrength  Trait = "strength"
	TraitFinesse   Trait = "finesse"
	TraitInstinct  Trait = "instinct"
	TraitPresence  Trait = "presence"
	TraitKnowledge Trait = "knowledge"
)

// TraitNames lists all six traits in SRD sheet order.
func TraitNames() []Trait {
	return []Trait{
		TraitAgility,
		TraitStrength,
		TraitFinesse,
		TraitInstinct,
		TraitPresence,
		TraitKnowledge,
	}
}

// ParseTrait validates a trait name.
func ParseTrait(name string) (Trait, error) {
	switch Trait(name) {
	case TraitAgility, TraitStrength, TraitFinesse, TraitInstinct, TraitPresence, TraitKnowledge:
		return Trait(name), nil
	default:
		return "", apperrors.WithMetadata(
			apperrors.CodeCharacterInvalidTrait,
			"unknown trait "+name,
			map[string]string{"trait": name},
		)
	}
}
