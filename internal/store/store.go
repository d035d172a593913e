// Package store is a generic namespaced key/value JSON store over SQLite.
// The engine serializes snapshots through it; it holds no game logic.
// Missing and corrupt data are indistinguishable to callers: both load as
// "no data" and never as an error.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// KV reads and writes JSON documents under a fixed namespace.
type KV struct {
	db        *sql.DB
	namespace string
}

func New(db *sql.DB, namespace string) *KV {
	return &KV{db: db, namespace: namespace}
}

// Save marshals v and upserts it under key. Last write wins.
func (s *KV) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s/%s: %w", s.namespace, key, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (namespace, key, data, updated_at)
		VALUES (?, ?, jsonb(?), strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (namespace, key) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`, s.namespace, key, string(data))
	if err != nil {
		return fmt.Errorf("saving %s/%s: %w", s.namespace, key, err)
	}
	return nil
}

// Load unmarshals the document under key into dest. The boolean reports
// whether usable data was found; a missing row and a row that fails to
// unmarshal both report false with a nil error.
func (s *KV) Load(ctx context.Context, key string, dest any) (bool, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `
		SELECT json(data) FROM snapshots WHERE namespace = ? AND key = ?
	`, s.namespace, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading %s/%s: %w", s.namespace, key, err)
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		// Corrupt stored data is treated as absent.
		return false, nil
	}
	return true, nil
}

// Delete removes the document under key. Deleting a missing key is a no-op.
func (s *KV) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM snapshots WHERE namespace = ? AND key = ?
	`, s.namespace, key)
	if err != nil {
		return fmt.Errorf("deleting %s/%s: %w", s.namespace, key, err)
	}
	return nil
}

// Keys lists the stored keys in the namespace.
func (s *KV) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key FROM snapshots WHERE namespace = ? ORDER BY key
	`, s.namespace)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.namespace, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
