// Package storage defines the persistence contracts for the progression
// service.
package storage

import (
	"context"
	"time"

	"github.com/louisbranch/hearthbound/internal/platform/errors"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New(errors.CodeNotFound, "record not found")

// ErrAdvancementSlotTaken indicates a concurrent level-up already occupied
// one of the advancement slots this application needed.
var ErrAdvancementSlotTaken = errors.New(errors.CodeAdvancementSlotTaken, "advancement slot already taken")

// CharacterRecord is a persisted character. PrivateKey authorizes writes,
// PublicKey grants read-only access.
type CharacterRecord struct {
	ID          string
	PrivateKey  string
	PublicKey   string
	OwnerUserID string
	Name        string
	ClassID     string
	SubclassID  string
	Level       int
	Proficiency int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TraitRecord is one of a character's six trait rows.
type TraitRecord struct {
	CharacterID string
	Trait       string
	Bonus       int
	IsMarked    bool
	UpdatedAt   time.Time
}

// AdvancementRecord is one row of a character's advancement ledger.
// AdvancementNumber 0 records an automatic tier achievement; numbers 1 and 2
// are the player-chosen slots.
type AdvancementRecord struct {
	ID                string
	CharacterID       string
	Tier              int
	AdvancementNumber int
	Level             int
	AdvancementType   string
	Description       string
	PayloadJSON       string
	CreatedAt         time.Time
}

// ExperienceRecord is a character experience. Names are not unique per
// character.
type ExperienceRecord struct {
	ID          string
	CharacterID string
	Name        string
	Modifier    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DomainCardRecord is a domain card on a character's sheet.
type DomainCardRecord struct {
	ID          string
	CharacterID string
	CardID      string
	Domain      string
	Level       int
	Source      string
	CreatedAt   time.Time
}

// Domain card acquisition sources.
const (
	CardSourceCreation        = "creation"
	CardSourceLevel           = "level"
	CardSourceTierAchievement = "tier_achievement"
	CardSourceAdvancement     = "advancement"
)

// TelemetryEvent is an operational event recorded alongside state changes.
type TelemetryEvent struct {
	ID          string
	CharacterID string
	EventType   string
	PayloadJSON string
	CreatedAt   time.Time
}

// CharacterStore persists character identity and derived stats.
type CharacterStore interface {
	PutCharacter(ctx context.Context, record CharacterRecord) error
	GetCharacter(ctx context.Context, id string) (CharacterRecord, error)
	GetCharacterByKey(ctx context.Context, key string) (CharacterRecord, bool, error)
	ListCharactersByOwner(ctx context.Context, ownerUserID string) ([]CharacterRecord, error)
}

// TraitStore persists character trait rows.
type TraitStore interface {
	PutTrait(ctx context.Context, record TraitRecord) error
	ListTraits(ctx context.Context, characterID string) ([]TraitRecord, error)
}

// AdvancementStore reads the advancement ledger. Writes happen only through
// ApplyLevelUp.
type AdvancementStore interface {
	ListAdvancements(ctx context.Context, characterID string) ([]AdvancementRecord, error)
	ListAdvancementsByTier(ctx context.Context, characterID string, tier int) ([]AdvancementRecord, error)
}

// ExperienceStore persists character experiences.
type ExperienceStore interface {
	PutExperience(ctx context.Context, record ExperienceRecord) error
	ListExperiences(ctx context.Context, characterID string) ([]ExperienceRecord, error)
}

// DomainCardStore persists the character's domain card collection.
type DomainCardStore interface {
	PutDomainCard(ctx context.Context, record DomainCardRecord) error
	ListDomainCards(ctx context.Context, characterID string) ([]DomainCardRecord, error)
}

// TelemetryStore records operational events.
type TelemetryStore interface {
	PutTelemetryEvent(ctx context.Context, event TelemetryEvent) error
	ListTelemetryEvents(ctx context.Context, characterID string, limit int) ([]TelemetryEvent, error)
}

// LevelUpApplication is the full set of writes a confirmed level-up produces.
// The store applies it in a single transaction.
type LevelUpApplication struct {
	CharacterID string
	// FromLevel guards against concurrent confirms: the character row is
	// only updated if its level still matches.
	FromLevel int
	ToLevel   int

	// Proficiency is the absolute value after the level-up.
	Proficiency int
	SubclassID  *string

	Advancements []AdvancementRecord

	NewExperiences []ExperienceRecord
	// ExperienceIncrements raises the modifier of every experience row
	// with a matching name.
	ExperienceIncrements map[string]int

	NewCards []DomainCardRecord

	// ClearTraitMarks resets every mark before increments land, so picks
	// made at the clearing level still mark their traits.
	ClearTraitMarks bool
	// TraitIncrements raises trait bonuses and marks the traits.
	TraitIncrements map[string]int

	Events []TelemetryEvent
}

// LevelUpStore applies a confirmed level-up atomically. Implementations
// return ErrAdvancementSlotTaken when a concurrent confirm won the race.
type LevelUpStore interface {
	ApplyLevelUp(ctx context.Context, application LevelUpApplication) error
}

// Store aggregates every persistence concern of the progression service.
type Store interface {
	CharacterStore
	TraitStore
	AdvancementStore
	ExperienceStore
	DomainCardStore
	TelemetryStore
	LevelUpStore
}
