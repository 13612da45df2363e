package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/hearthbound/internal/services/progression/storage"
)

func (s *Store) PutTrait(ctx context.Context, record storage.TraitRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.CharacterID) == "" {
		return fmt.Errorf("character id is required")
	}
	if strings.TrimSpace(record.Trait) == "" {
		return fmt.Errorf("trait is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO character_traits (character_id, trait, bonus, is_marked, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(character_id, trait) DO UPDATE SET
    bonus = excluded.bonus,
    is_marked = excluded.is_marked,
    updated_at = excluded.updated_at`,
		record.CharacterID,
		record.Trait,
		record.Bonus,
		boolToInt(record.IsMarked),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put trait: %w", err)
	}
	return nil
}

func (s *Store) ListTraits(ctx context.Context, characterID string) ([]storage.TraitRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT character_id, trait, bonus, is_marked, updated_at
FROM character_traits
WHERE character_id = ?
ORDER BY trait`, characterID)
	if err != nil {
		return nil, fmt.Errorf("list traits: %w", err)
	}
	defer rows.Close()

	var records []storage.TraitRecord
	for rows.Next() {
		var record storage.TraitRecord
		var marked int
		var updatedAt int64
		if err := rows.Scan(&record.CharacterID, &record.Trait, &record.Bonus, &marked, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan trait: %w", err)
		}
		record.IsMarked = marked != 0
		record.UpdatedAt = fromMillis(updatedAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list traits: %w", err)
	}
	return records, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
