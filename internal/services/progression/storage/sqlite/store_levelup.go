package sqlite

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/hearthbound/internal/platform/errors"
	"github.com/louisbranch/hearthbound/internal/services/progression/storage"
)

// ApplyLevelUp commits every write a confirmed level-up produces in a single
// transaction. Two guards catch concurrent confirms: the character row update
// is conditional on the pre-confirm level, and the advancement ledger's
// unique slot constraint rejects double occupancy. Either failure rolls the
// whole transaction back and surfaces ErrAdvancementSlotTaken.
func (s *Store) ApplyLevelUp(ctx context.Context, application storage.LevelUpApplication) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(application.CharacterID) == "" {
		return fmt.Errorf("character id is required")
	}
	for _, advancement := range application.Advancements {
		if advancement.AdvancementNumber < 0 || advancement.AdvancementNumber > 2 {
			return errors.WithMetadata(
				errors.CodeAdvancementInvalidSlot,
				"advancement number must be 0, 1, or 2",
				map[string]string{"number": strconv.Itoa(advancement.AdvancementNumber)},
			)
		}
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := toMillis(time.Now())

	subclassClause := ""
	args := []any{application.ToLevel, application.Proficiency, now}
	if application.SubclassID != nil {
		subclassClause = ", subclass_id = ?"
		args = append(args, *application.SubclassID)
	}
	args = append(args, application.CharacterID, application.FromLevel)

	result, err := tx.ExecContext(ctx, `
UPDATE characters
SET level = ?, proficiency = ?, updated_at = ?`+subclassClause+`
WHERE id = ? AND level = ?`, args...)
	if err != nil {
		return fmt.Errorf("update character level: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update character level: %w", err)
	}
	if affected == 0 {
		// Either the character vanished or another confirm moved the
		// level first. Distinguish for the caller.
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM characters WHERE id = ?`, application.CharacterID).Scan(&count); err != nil {
			return fmt.Errorf("check character: %w", err)
		}
		if count == 0 {
			return storage.ErrNotFound
		}
		return storage.ErrAdvancementSlotTaken
	}

	for _, advancement := range application.Advancements {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO character_advancements (id, character_id, tier, advancement_number, level, advancement_type, description, payload_json, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			advancement.ID,
			advancement.CharacterID,
			advancement.Tier,
			advancement.AdvancementNumber,
			advancement.Level,
			advancement.AdvancementType,
			advancement.Description,
			advancement.PayloadJSON,
			now,
		); err != nil {
			if isUniqueViolation(err) {
				return storage.ErrAdvancementSlotTaken
			}
			return fmt.Errorf("insert advancement: %w", err)
		}
	}

	for _, experience := range application.NewExperiences {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO character_experiences (id, character_id, name, modifier, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`,
			experience.ID,
			experience.CharacterID,
			experience.Name,
			experience.Modifier,
			now,
			now,
		); err != nil {
			return fmt.Errorf("insert experience: %w", err)
		}
	}

	// Duplicate experience names are allowed, so increments update every
	// row carrying the name.
	for name, bonus := range application.ExperienceIncrements {
		if _, err := tx.ExecContext(ctx, `
UPDATE character_experiences
SET modifier = modifier + ?, updated_at = ?
WHERE character_id = ? AND name = ?`,
			bonus, now, application.CharacterID, name,
		); err != nil {
			return fmt.Errorf("increment experience: %w", err)
		}
	}

	for _, card := range application.NewCards {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO character_domain_cards (id, character_id, card_id, domain, level, source, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
			card.ID,
			card.CharacterID,
			card.CardID,
			card.Domain,
			card.Level,
			card.Source,
			now,
		); err != nil {
			if isUniqueViolation(err) {
				return storage.ErrAdvancementSlotTaken
			}
			return fmt.Errorf("insert domain card: %w", err)
		}
	}

	if application.ClearTraitMarks {
		if _, err := tx.ExecContext(ctx, `
UPDATE character_traits
SET is_marked = 0, updated_at = ?
WHERE character_id = ?`, now, application.CharacterID); err != nil {
			return fmt.Errorf("clear trait marks: %w", err)
		}
	}

	for trait, bonus := range application.TraitIncrements {
		if _, err := tx.ExecContext(ctx, `
UPDATE character_traits
SET bonus = bonus + ?, is_marked = 1, updated_at = ?
WHERE character_id = ? AND trait = ?`,
			bonus, now, application.CharacterID, trait,
		); err != nil {
			return fmt.Errorf("increment trait: %w", err)
		}
	}

	for _, event := range application.Events {
		payload := event.PayloadJSON
		if payload == "" {
			payload = "{}"
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO telemetry_events (id, character_id, event_type, payload_json, created_at)
VALUES (?, ?, ?, ?, ?)`,
			event.ID,
			event.CharacterID,
			event.EventType,
			payload,
			now,
		); err != nil {
			return fmt.Errorf("insert telemetry event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAdvancementSlotTaken
		}
		return fmt.Errorf("commit level-up: %w", err)
	}
	return nil
}

// isUniqueViolation detects SQLite unique constraint failures.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") ||
		strings.Contains(message, "constraint failed: unique")
}
