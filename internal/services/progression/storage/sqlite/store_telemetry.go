package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/hearthbound/internal/services/progression/storage"
)

func (s *Store) PutTelemetryEvent(ctx context.Context, event storage.TelemetryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(event.ID) == "" {
		return fmt.Errorf("event id is required")
	}
	if strings.TrimSpace(event.EventType) == "" {
		return fmt.Errorf("event type is required")
	}

	payload := event.PayloadJSON
	if payload == "" {
		payload = "{}"
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO telemetry_events (id, character_id, event_type, payload_json, created_at)
VALUES (?, ?, ?, ?, ?)`,
		event.ID,
		event.CharacterID,
		event.EventType,
		payload,
		toMillis(event.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("put telemetry event: %w", err)
	}
	return nil
}

func (s *Store) ListTelemetryEvents(ctx context.Context, characterID string, limit int) ([]storage.TelemetryEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, character_id, event_type, payload_json, created_at
FROM telemetry_events
WHERE character_id = ?
ORDER BY created_at DESC, id DESC
LIMIT ?`, characterID, limit)
	if err != nil {
		return nil, fmt.Errorf("list telemetry events: %w", err)
	}
	defer rows.Close()

	var events []storage.TelemetryEvent
	for rows.Next() {
		var event storage.TelemetryEvent
		var createdAt int64
		if err := rows.Scan(&event.ID, &event.CharacterID, &event.EventType, &event.PayloadJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scan telemetry event: %w", err)
		}
		event.CreatedAt = fromMillis(createdAt)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list telemetry events: %w", err)
	}
	return events, nil
}
