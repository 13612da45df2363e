package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/hearthbound/internal/services/progression/storage"
)

const characterColumns = `id, private_key, public_key, owner_user_id, name, class_id, subclass_id, level, proficiency, created_at, updated_at`

func (s *Store) PutCharacter(ctx context.Context, record storage.CharacterRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("character id is required")
	}
	if strings.TrimSpace(record.OwnerUserID) == "" {
		return fmt.Errorf("owner user id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO characters (`+characterColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    class_id = excluded.class_id,
    subclass_id = excluded.subclass_id,
    level = excluded.level,
    proficiency = excluded.proficiency,
    updated_at = excluded.updated_at`,
		record.ID,
		record.PrivateKey,
		record.PublicKey,
		record.OwnerUserID,
		record.Name,
		record.ClassID,
		record.SubclassID,
		record.Level,
		record.Proficiency,
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put character: %w", err)
	}
	return nil
}

func (s *Store) GetCharacter(ctx context.Context, id string) (storage.CharacterRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.CharacterRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.CharacterRecord{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT `+characterColumns+`
FROM characters
WHERE id = ?`, id)

	record, err := scanCharacter(row)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.CharacterRecord{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.CharacterRecord{}, fmt.Errorf("get character: %w", err)
	}
	return record, nil
}

// GetCharacterByKey resolves either access key. The bool reports whether the
// key was the private one.
func (s *Store) GetCharacterByKey(ctx context.Context, key string) (storage.CharacterRecord, bool, error) {
	if err := ctx.Err(); err != nil {
		return storage.CharacterRecord{}, false, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.CharacterRecord{}, false, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT `+characterColumns+`
FROM characters
WHERE private_key = ? OR public_key = ?`, key, key)

	record, err := scanCharacter(row)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.CharacterRecord{}, false, storage.ErrNotFound
	}
	if err != nil {
		return storage.CharacterRecord{}, false, fmt.Errorf("get character by key: %w", err)
	}
	return record, record.PrivateKey == key, nil
}

func (s *Store) ListCharactersByOwner(ctx context.Context, ownerUserID string) ([]storage.CharacterRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT `+characterColumns+`
FROM characters
WHERE owner_user_id = ?
ORDER BY created_at`, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer rows.Close()

	var records []storage.CharacterRecord
	for rows.Next() {
		record, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("scan character: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCharacter(row rowScanner) (storage.CharacterRecord, error) {
	var record storage.CharacterRecord
	var createdAt, updatedAt int64
	if err := row.Scan(
		&record.ID,
		&record.PrivateKey,
		&record.PublicKey,
		&record.OwnerUserID,
		&record.Name,
		&record.ClassID,
		&record.SubclassID,
		&record.Level,
		&record.Proficiency,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.CharacterRecord{}, err
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}
