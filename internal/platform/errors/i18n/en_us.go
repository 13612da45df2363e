package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeCharacterEmptyName     = "CHARACTER_EMPTY_NAME"
	CodeCharacterEmptyOwner    = "CHARACTER_EMPTY_OWNER"
	CodeCharacterInvalidClass  = "CHARACTER_INVALID_CLASS"
	CodeCharacterInvalidLevel  = "CHARACTER_INVALID_LEVEL"
	CodeCharacterGone          = "CHARACTER_GONE"
	CodeCharacterInvalidTrait  = "CHARACTER_INVALID_TRAIT"
	CodeCharacterAtMaxLevel    = "CHARACTER_AT_MAX_LEVEL"
	CodeCharacterNoSlotsAtTier = "CHARACTER_NO_SLOTS_AT_TIER"

	CodeAdvancementInvalidTier         = "ADVANCEMENT_INVALID_TIER"
	CodeAdvancementInvalidSlot         = "ADVANCEMENT_INVALID_SLOT"
	CodeAdvancementSlotTaken           = "ADVANCEMENT_SLOT_TAKEN"
	CodeAdvancementLevelBelowTier      = "ADVANCEMENT_LEVEL_BELOW_TIER"
	CodeAdvancementMaxSelections       = "ADVANCEMENT_MAX_SELECTIONS"
	CodeAdvancementUnknownOption       = "ADVANCEMENT_UNKNOWN_OPTION"
	CodeAdvancementUnknownType         = "ADVANCEMENT_UNKNOWN_TYPE"
	CodeAdvancementMalformedPayload    = "ADVANCEMENT_MALFORMED_PAYLOAD"
	CodeAdvancementTraitCount          = "ADVANCEMENT_TRAIT_COUNT"
	CodeAdvancementTraitMarked         = "ADVANCEMENT_TRAIT_MARKED"
	CodeAdvancementExperienceCount     = "ADVANCEMENT_EXPERIENCE_COUNT"
	CodeAdvancementExperienceMissing   = "ADVANCEMENT_EXPERIENCE_MISSING"
	CodeAdvancementCardRequired        = "ADVANCEMENT_CARD_REQUIRED"
	CodeAdvancementCardLevelTooHigh    = "ADVANCEMENT_CARD_LEVEL_TOO_HIGH"
	CodeAdvancementCardDomainForbidden = "ADVANCEMENT_CARD_DOMAIN_FORBIDDEN"
	CodeAdvancementCardOwned           = "ADVANCEMENT_CARD_OWNED"
	CodeAdvancementCardDuplicate       = "ADVANCEMENT_CARD_DUPLICATE"
	CodeAdvancementClassRequired       = "ADVANCEMENT_CLASS_REQUIRED"
	CodeAdvancementSubclassRequired    = "ADVANCEMENT_SUBCLASS_REQUIRED"

	CodeTierExperienceNameEmpty   = "TIER_EXPERIENCE_NAME_EMPTY"
	CodeTierExperienceNameTooLong = "TIER_EXPERIENCE_NAME_TOO_LONG"
	CodeTierCardMissing           = "TIER_CARD_MISSING"

	CodeLevelUpWrongStep       = "LEVEL_UP_WRONG_STEP"
	CodeLevelUpDraftIncomplete = "LEVEL_UP_DRAFT_INCOMPLETE"
	CodeLevelUpConflict        = "LEVEL_UP_CONFLICT"

	CodeContentUnknownCard   = "CONTENT_UNKNOWN_CARD"
	CodeContentInvalidFilter = "CONTENT_INVALID_FILTER"

	CodeNotFound = "NOT_FOUND"
)

// enUSMessages holds the en-US message templates for domain error codes.
var enUSMessages = map[Code]string{
	CodeCharacterEmptyName:     "Character name is required.",
	CodeCharacterEmptyOwner:    "Character owner is required.",
	CodeCharacterInvalidClass:  "Unknown class {{.class}}.",
	CodeCharacterInvalidLevel:  "Cannot level up beyond 10.",
	CodeCharacterGone:          "Character no longer exists.",
	CodeCharacterInvalidTrait:  "Unknown trait {{.trait}}.",
	CodeCharacterAtMaxLevel:    "Character is already at the maximum level.",
	CodeCharacterNoSlotsAtTier: "No advancement slots remain at tier {{.tier}}.",

	CodeAdvancementInvalidTier:         "Tier must be between 1 and 4.",
	CodeAdvancementInvalidSlot:         "Advancement number must be 1 or 2.",
	CodeAdvancementSlotTaken:           "Advancement slot already taken.",
	CodeAdvancementLevelBelowTier:      "Character level insufficient for tier {{.tier}}.",
	CodeAdvancementMaxSelections:       "Advancement {{.type}} has already been selected the maximum number of times.",
	CodeAdvancementUnknownOption:       "Unknown advancement option.",
	CodeAdvancementUnknownType:         "Unrecognized advancement type {{.type}}.",
	CodeAdvancementMalformedPayload:    "Advancement payload is malformed.",
	CodeAdvancementTraitCount:          "Exactly two traits must be selected.",
	CodeAdvancementTraitMarked:         "Trait {{.trait}} is already marked this tier.",
	CodeAdvancementExperienceCount:     "At least two experiences must be selected.",
	CodeAdvancementExperienceMissing:   "Experience {{.name}} does not exist.",
	CodeAdvancementCardRequired:        "A domain card selection is required.",
	CodeAdvancementCardLevelTooHigh:    "Domain card {{.card}} is above level {{.max}}.",
	CodeAdvancementCardDomainForbidden: "Domain {{.domain}} is not available to this class.",
	CodeAdvancementCardOwned:           "Domain card {{.card}} is already owned.",
	CodeAdvancementCardDuplicate:       "Domain card {{.card}} is selected more than once.",
	CodeAdvancementClassRequired:       "A class selection is required.",
	CodeAdvancementSubclassRequired:    "A subclass selection is required.",

	CodeTierExperienceNameEmpty:   "A new experience name is required at this level.",
	CodeTierExperienceNameTooLong: "Experience names are limited to {{.max}} characters.",
	CodeTierCardMissing:           "A tier domain card selection is required at this level.",

	CodeLevelUpWrongStep:       "This selection is not valid for the current step.",
	CodeLevelUpDraftIncomplete: "The level-up draft is incomplete.",
	CodeLevelUpConflict:        "This character was already leveled up. Refresh and try again.",

	CodeContentUnknownCard:   "Unknown domain card {{.card}}.",
	CodeContentInvalidFilter: "Invalid card filter.",

	CodeNotFound: "Record not found.",
}
