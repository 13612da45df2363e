package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/hearthbound/internal/services/progression/storage"
)

func (s *Store) PutExperience(ctx context.Context, record storage.ExperienceRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("experience id is required")
	}
	if strings.TrimSpace(record.Name) == "" {
		return fmt.Errorf("experience name is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO character_experiences (id, character_id, name, modifier, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    modifier = excluded.modifier,
    updated_at = excluded.updated_at`,
		record.ID,
		record.CharacterID,
		record.Name,
		record.Modifier,
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put experience: %w", err)
	}
	return nil
}

func (s *Store) ListExperiences(ctx context.Context, characterID string) ([]storage.ExperienceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, character_id, name, modifier, created_at, updated_at
FROM character_experiences
WHERE character_id = ?
ORDER BY created_at, id`, characterID)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	defer rows.Close()

	var records []storage.ExperienceRecord
	for rows.Next() {
		var record storage.ExperienceRecord
		var createdAt, updatedAt int64
		if err := rows.Scan(&record.ID, &record.CharacterID, &record.Name, &record.Modifier, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		record.CreatedAt = fromMillis(createdAt)
		record.UpdatedAt = fromMillis(updatedAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	return records, nil
}
