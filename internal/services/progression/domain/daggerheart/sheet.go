package daggerheart

// CardInfo is the slice of the content catalogue the level-up rules need:
// which domain a card belongs to and the minimum character level to take it.
type CardInfo struct {
	ID     string
	Domain string
	Level  int
}

// Catalog resolves SRD content referenced by advancement selections. The
// content package provides the production implementation; tests substitute
// small fixed catalogues.
type Catalog interface {
	// Card looks up a domain card by ID.
	Card(id string) (CardInfo, bool)
	// ClassDomains returns the two domains granted by a class.
	ClassDomains(classID string) ([]string, bool)
	// Subclasses returns the subclass IDs available to a class.
	Subclasses(classID string) ([]string, bool)
}

// Experience is a named narrative competency with a numeric modifier.
type Experience struct {
	Name     string
	Modifier int
}

// TraitState carries a trait's current bonus and whether it is marked as
// used by a trait advancement this tier cycle.
type TraitState struct {
	Trait  Trait
	Bonus  int
	Marked bool
}

// CharacterSheet is the read-model snapshot the validator and repository work
// against: current identity, derived stats, and everything selections can
// reference. It never touches storage.
type CharacterSheet struct {
	CharacterID string
	ClassID     string
	SubclassID  string
	Level       int
	Proficiency int

	// Domains the character can legally draw cards from: class domains
	// plus any domain granted by a multiclass advancement.
	Domains []string

	Traits      []TraitState
	Experiences []Experience

	// OwnedCardIDs covers every domain card already on the sheet,
	// regardless of how it was acquired.
	OwnedCardIDs []string

	// TakenCounts tallies how many times each advancement type appears in
	// the character's ledger, across all tiers.
	TakenCounts map[AdvancementType]int

	// SlotsUsed maps tier to the set of occupied advancement slot numbers.
	// The tier achievement sentinel slot is excluded.
	SlotsUsed map[Tier]map[int]bool
}

// HasDomain reports whether the sheet can draw cards from the given domain.
func (s CharacterSheet) HasDomain(domain string) bool {
	for _, d := range s.Domains {
		if d == domain {
			return true
		}
	}
	return false
}

// OwnsCard reports whether the card is already on the sheet.
func (s CharacterSheet) OwnsCard(cardID string) bool {
	for _, id := range s.OwnedCardIDs {
		if id == cardID {
			return true
		}
	}
	return false
}

// TraitByName finds a trait's state on the sheet.
func (s CharacterSheet) TraitByName(trait Trait) (TraitState, bool) {
	for _, state := range s.Traits {
		if state.Trait == trait {
			return state, true
		}
	}
	return TraitState{}, false
}

// HasExperience reports whether the sheet carries an experience with the
// given name. Duplicate names are permitted, so this is membership only.
func (s CharacterSheet) HasExperience(name string) bool {
	for _, exp := range s.Experiences {
		if exp.Name == name {
			return true
		}
	}
	return false
}

// FreeSlots returns the unoccupied advancement slot numbers for a tier, in
// ascending order.
func (s CharacterSheet) FreeSlots(tier Tier) []int {
	used := s.SlotsUsed[tier]
	free := make([]int, 0, SlotCount)
	for slot := 1; slot <= SlotCount; slot++ {
		if !used[slot] {
			free = append(free, slot)
		}
	}
	return free
}

// TakenCount returns how many ledger entries of the given type the character
// has across all tiers.
func (s CharacterSheet) TakenCount(advancementType AdvancementType) int {
	if s.TakenCounts == nil {
		return 0
	}
	return s.TakenCounts[advancementType]
}
