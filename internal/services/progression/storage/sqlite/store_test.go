package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/hearthbound/internal/services/progression/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "progression.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func seedCharacter(t *testing.T, store *Store, id string) storage.CharacterRecord {
	t.Helper()
	now := time.Now().UTC()
	record := storage.CharacterRecord{
		ID:          id,
		PrivateKey:  "priv-" + id,
		PublicKey:   "pub-" + id,
		OwnerUserID: "user-1",
		Name:        "Riza",
		ClassID:     "warrior",
		Level:       1,
		Proficiency: 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := store.PutCharacter(context.Background(), record); err != nil {
		t.Fatalf("PutCharacter: %v", err)
	}
	for _, trait := range []string{"agility", "strength", "finesse", "instinct", "presence", "knowledge"} {
		if err := store.PutTrait(context.Background(), storage.TraitRecord{
			CharacterID: id,
			Trait:       trait,
			UpdatedAt:   now,
		}); err != nil {
			t.Fatalf("PutTrait(%s): %v", trait, err)
		}
	}
	return record
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestOpenAppliesMigrations(t *testing.T) {
	store := openTestStore(t)

	for _, table := range []string{"characters", "character_traits", "character_advancements", "character_experiences", "character_domain_cards", "telemetry_events"} {
		var name string
		err := store.DB().QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing after open: %v", table, err)
		}
	}
}

func TestCharacterRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	seeded := seedCharacter(t, store, "char-1")

	got, err := store.GetCharacter(ctx, "char-1")
	if err != nil {
		t.Fatalf("GetCharacter: %v", err)
	}
	if got.Name != seeded.Name || got.ClassID != "warrior" || got.Level != 1 {
		t.Errorf("got %+v", got)
	}

	if _, err := store.GetCharacter(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetCharacterByKey(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	seedCharacter(t, store, "char-1")

	got, writable, err := store.GetCharacterByKey(ctx, "priv-char-1")
	if err != nil {
		t.Fatalf("GetCharacterByKey(private): %v", err)
	}
	if got.ID != "char-1" || !writable {
		t.Errorf("private key lookup: id=%s writable=%v", got.ID, writable)
	}

	got, writable, err = store.GetCharacterByKey(ctx, "pub-char-1")
	if err != nil {
		t.Fatalf("GetCharacterByKey(public): %v", err)
	}
	if got.ID != "char-1" || writable {
		t.Errorf("public key lookup: id=%s writable=%v", got.ID, writable)
	}

	if _, _, err := store.GetCharacterByKey(ctx, "nope"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListCharactersByOwner(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	seedCharacter(t, store, "char-1")
	seedCharacter(t, store, "char-2")

	records, err := store.ListCharactersByOwner(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListCharactersByOwner: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d characters, want 2", len(records))
	}
}

func TestTraitRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	seedCharacter(t, store, "char-1")

	traits, err := store.ListTraits(ctx, "char-1")
	if err != nil {
		t.Fatalf("ListTraits: %v", err)
	}
	if len(traits) != 6 {
		t.Fatalf("got %d traits, want 6", len(traits))
	}
	for _, trait := range traits {
		if trait.Bonus != 0 || trait.IsMarked {
			t.Errorf("fresh trait %s has bonus=%d marked=%v", trait.Trait, trait.Bonus, trait.IsMarked)
		}
	}
}

func TestExperienceDuplicateNames(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	seedCharacter(t, store, "char-1")
	now := time.Now().UTC()

	for _, id := range []string{"exp-1", "exp-2"} {
		if err := store.PutExperience(ctx, storage.ExperienceRecord{
			ID:          id,
			CharacterID: "char-1",
			Name:        "Scout",
			Modifier:    2,
			CreatedAt:   now,
			UpdatedAt:   now,
		}); err != nil {
			t.Fatalf("PutExperience(%s): %v", id, err)
		}
	}

	experiences, err := store.ListExperiences(ctx, "char-1")
	if err != nil {
		t.Fatalf("ListExperiences: %v", err)
	}
	if len(experiences) != 2 {
		t.Fatalf("got %d experiences, want 2", len(experiences))
	}
}

func TestDomainCardUniquePerCharacter(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	seedCharacter(t, store, "char-1")
	now := time.Now().UTC()

	card := storage.DomainCardRecord{
		ID:          "dc-1",
		CharacterID: "char-1",
		CardID:      "blade-1-whirlwind",
		Domain:      "blade",
		Level:       1,
		Source:      storage.CardSourceCreation,
		CreatedAt:   now,
	}
	if err := store.PutDomainCard(ctx, card); err != nil {
		t.Fatalf("PutDomainCard: %v", err)
	}
	card.ID = "dc-2"
	if err := store.PutDomainCard(ctx, card); err == nil {
		t.Fatal("expected unique violation for duplicate card")
	}
}

func TestTelemetryEvents(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	seedCharacter(t, store, "char-1")

	for i, id := range []string{"ev-1", "ev-2"} {
		if err := store.PutTelemetryEvent(ctx, storage.TelemetryEvent{
			ID:          id,
			CharacterID: "char-1",
			EventType:   "level_up.applied",
			CreatedAt:   time.Now().UTC().Add(time.Duration(i) * time.Millisecond),
		}); err != nil {
			t.Fatalf("PutTelemetryEvent(%s): %v", id, err)
		}
	}

	events, err := store.ListTelemetryEvents(ctx, "char-1", 10)
	if err != nil {
		t.Fatalf("ListTelemetryEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].PayloadJSON != "{}" {
		t.Errorf("empty payload not defaulted: %q", events[0].PayloadJSON)
	}
}
