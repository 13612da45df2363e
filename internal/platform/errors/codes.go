// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Character errors
	CodeCharacterEmptyName     Code = "CHARACTER_EMPTY_NAME"
	CodeCharacterEmptyOwner    Code = "CHARACTER_EMPTY_OWNER"
	CodeCharacterInvalidClass  Code = "CHARACTER_INVALID_CLASS"
	CodeCharacterInvalidLevel  Code = "CHARACTER_INVALID_LEVEL"
	CodeCharacterGone          Code = "CHARACTER_GONE"
	CodeCharacterInvalidTrait  Code = "CHARACTER_INVALID_TRAIT"
	CodeCharacterAtMaxLevel    Code = "CHARACTER_AT_MAX_LEVEL"
	CodeCharacterNoSlotsAtTier Code = "CHARACTER_NO_SLOTS_AT_TIER"

	// Advancement errors
	CodeAdvancementInvalidTier         Code = "ADVANCEMENT_INVALID_TIER"
	CodeAdvancementInvalidSlot         Code = "ADVANCEMENT_INVALID_SLOT"
	CodeAdvancementSlotTaken           Code = "ADVANCEMENT_SLOT_TAKEN"
	CodeAdvancementLevelBelowTier      Code = "ADVANCEMENT_LEVEL_BELOW_TIER"
	CodeAdvancementMaxSelections       Code = "ADVANCEMENT_MAX_SELECTIONS"
	CodeAdvancementUnknownOption       Code = "ADVANCEMENT_UNKNOWN_OPTION"
	CodeAdvancementUnknownType         Code = "ADVANCEMENT_UNKNOWN_TYPE"
	CodeAdvancementMalformedPayload    Code = "ADVANCEMENT_MALFORMED_PAYLOAD"
	CodeAdvancementTraitCount          Code = "ADVANCEMENT_TRAIT_COUNT"
	CodeAdvancementTraitMarked         Code = "ADVANCEMENT_TRAIT_MARKED"
	CodeAdvancementExperienceCount     Code = "ADVANCEMENT_EXPERIENCE_COUNT"
	CodeAdvancementExperienceMissing   Code = "ADVANCEMENT_EXPERIENCE_MISSING"
	CodeAdvancementCardRequired        Code = "ADVANCEMENT_CARD_REQUIRED"
	CodeAdvancementCardLevelTooHigh    Code = "ADVANCEMENT_CARD_LEVEL_TOO_HIGH"
	CodeAdvancementCardDomainForbidden Code = "ADVANCEMENT_CARD_DOMAIN_FORBIDDEN"
	CodeAdvancementCardOwned           Code = "ADVANCEMENT_CARD_OWNED"
	CodeAdvancementCardDuplicate       Code = "ADVANCEMENT_CARD_DUPLICATE"
	CodeAdvancementClassRequired       Code = "ADVANCEMENT_CLASS_REQUIRED"
	CodeAdvancementSubclassRequired    Code = "ADVANCEMENT_SUBCLASS_REQUIRED"

	// Tier-achievement errors
	CodeTierExperienceNameEmpty   Code = "TIER_EXPERIENCE_NAME_EMPTY"
	CodeTierExperienceNameTooLong Code = "TIER_EXPERIENCE_NAME_TOO_LONG"
	CodeTierCardMissing           Code = "TIER_CARD_MISSING"

	// Level-up workflow errors
	CodeLevelUpWrongStep       Code = "LEVEL_UP_WRONG_STEP"
	CodeLevelUpDraftIncomplete Code = "LEVEL_UP_DRAFT_INCOMPLETE"
	CodeLevelUpConflict        Code = "LEVEL_UP_CONFLICT"

	// Content errors
	CodeContentUnknownCard   Code = "CONTENT_UNKNOWN_CARD"
	CodeContentInvalidFilter Code = "CONTENT_INVALID_FILTER"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeCharacterEmptyName,
		CodeCharacterEmptyOwner,
		CodeCharacterInvalidClass,
		CodeCharacterInvalidLevel,
		CodeCharacterInvalidTrait,
		CodeAdvancementInvalidTier,
		CodeAdvancementInvalidSlot,
		CodeAdvancementLevelBelowTier,
		CodeAdvancementUnknownOption,
		CodeAdvancementTraitCount,
		CodeAdvancementExperienceCount,
		CodeAdvancementExperienceMissing,
		CodeAdvancementCardRequired,
		CodeAdvancementCardLevelTooHigh,
		CodeAdvancementCardDomainForbidden,
		CodeAdvancementCardDuplicate,
		CodeAdvancementClassRequired,
		CodeAdvancementSubclassRequired,
		CodeTierExperienceNameEmpty,
		CodeTierExperienceNameTooLong,
		CodeTierCardMissing,
		CodeLevelUpDraftIncomplete,
		CodeContentInvalidFilter:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeCharacterAtMaxLevel,
		CodeCharacterNoSlotsAtTier,
		CodeAdvancementMaxSelections,
		CodeAdvancementTraitMarked,
		CodeAdvancementCardOwned,
		CodeLevelUpWrongStep:
		return codes.FailedPrecondition

	// Aborted - a concurrent confirm won the race
	case CodeAdvancementSlotTaken,
		CodeLevelUpConflict:
		return codes.Aborted

	// NotFound - resource doesn't exist
	case CodeNotFound,
		CodeCharacterGone,
		CodeContentUnknownCard:
		return codes.NotFound

	default:
		// Unrecognized advancement types and malformed payloads land here
		// on purpose: they are programmer/data bugs, not user input.
		return codes.Internal
	}
}
