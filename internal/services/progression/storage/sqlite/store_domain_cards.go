package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/hearthbound/internal/services/progression/storage"
)

func (s *Store) PutDomainCard(ctx context.Context, record storage.DomainCardRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("domain card id is required")
	}
	if strings.TrimSpace(record.CardID) == "" {
		return fmt.Errorf("card id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO character_domain_cards (id, character_id, card_id, domain, level, source, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.CharacterID,
		record.CardID,
		record.Domain,
		record.Level,
		record.Source,
		toMillis(record.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("put domain card: %w", err)
	}
	return nil
}

func (s *Store) ListDomainCards(ctx context.Context, characterID string) ([]storage.DomainCardRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, character_id, card_id, domain, level, source, created_at
FROM character_domain_cards
WHERE character_id = ?
ORDER BY created_at, id`, characterID)
	if err != nil {
		return nil, fmt.Errorf("list domain cards: %w", err)
	}
	defer rows.Close()

	var records []storage.DomainCardRecord
	for rows.Next() {
		var record storage.DomainCardRecord
		var createdAt int64
		if err := rows.Scan(&record.ID, &record.CharacterID, &record.CardID, &record.Domain, &record.Level, &record.Source, &createdAt); err != nil {
			return nil, fmt.Errorf("scan domain card: %w", err)
		}
		record.CreatedAt = fromMillis(createdAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list domain cards: %w", err)
	}
	return records, nil
}
