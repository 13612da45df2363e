package sqlite

import (
	"context"
	"fmt"

	"github.com/louisbranch/hearthbound/internal/services/progression/storage"
)

const advancementColumns = `id, character_id, tier, advancement_number, level, advancement_type, description, payload_json, created_at`

func (s *Store) ListAdvancements(ctx context.Context, characterID string) ([]storage.AdvancementRecord, error) {
	return s.listAdvancements(ctx, `
SELECT `+advancementColumns+`
FROM character_advancements
WHERE character_id = ?
ORDER BY tier, advancement_number`, characterID)
}

func (s *Store) ListAdvancementsByTier(ctx context.Context, characterID string, tier int) ([]storage.AdvancementRecord, error) {
	return s.listAdvancements(ctx, `
SELECT `+advancementColumns+`
FROM character_advancements
WHERE character_id = ? AND tier = ?
ORDER BY advancement_number`, characterID, tier)
}

func (s *Store) listAdvancements(ctx context.Context, query string, args ...any) ([]storage.AdvancementRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list advancements: %w", err)
	}
	defer rows.Close()

	var records []storage.AdvancementRecord
	for rows.Next() {
		var record storage.AdvancementRecord
		var createdAt int64
		if err := rows.Scan(
			&record.ID,
			&record.CharacterID,
			&record.Tier,
			&record.AdvancementNumber,
			&record.Level,
			&record.AdvancementType,
			&record.Description,
			&record.PayloadJSON,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan advancement: %w", err)
		}
		record.CreatedAt = fromMillis(createdAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list advancements: %w", err)
	}
	return records, nil
}
