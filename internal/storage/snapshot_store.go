// Package storage persists document snapshots to the local sqlite store,
// keyed by a single logical storage key. It is the engine's stand-in for the
// browser-local key-value store of the original product.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nairav/billentry/internal/document"
	"github.com/nairav/billentry/internal/domain/entity"
	"github.com/nairav/billentry/pkg/database"
)

// Verify interface compliance
var _ document.Store = (*SnapshotStore)(nil)

// DefaultKey is the logical key the form persists under. Injected rather than
// read from a package global so tests can isolate stores.
const DefaultKey = "purchase-bill-form-data"

// SnapshotStore stores at most one serialized document per storage key.
type SnapshotStore struct {
	db     *database.DB
	key    string
	logger *zap.Logger
}

// NewSnapshotStore creates the snapshot table if needed and returns a store
// bound to the given key.
func NewSnapshotStore(db *database.DB, key string, logger *zap.Logger) (*SnapshotStore, error) {
	schema := `
		CREATE TABLE IF NOT EXISTS form_snapshots (
			storage_key TEXT PRIMARY KEY,
			body        TEXT NOT NULL,
			updated_at  TIMESTAMP NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create snapshot table: %w", err)
	}

	return &SnapshotStore{
		db:     db,
		key:    key,
		logger: logger,
	}, nil
}

// Load returns the stored document, if any. A missing row and a snapshot
// that no longer parses both read as absent; a draft the engine cannot
// decode is no better than no draft at all.
func (s *SnapshotStore) Load() (*entity.Document, bool, error) {
	var body string
	err := s.db.QueryRow(
		`SELECT body FROM form_snapshots WHERE storage_key = ?`, s.key,
	).Scan(&body)

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		s.logger.Error("Failed to load snapshot", zap.Error(err))
		return nil, false, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var doc entity.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		s.logger.Warn("Stored snapshot is malformed, treating as absent", zap.Error(err))
		return nil, false, nil
	}

	return &doc, true, nil
}

// Save upserts the document snapshot under the store's key.
func (s *SnapshotStore) Save(doc *entity.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	err = s.db.WithTransaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO form_snapshots (storage_key, body, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(storage_key) DO UPDATE SET
				body = excluded.body,
				updated_at = excluded.updated_at
		`, s.key, string(body), time.Now().UTC())
		return err
	})
	if err != nil {
		s.logger.Error("Failed to save snapshot", zap.Error(err))
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// Clear removes any stored snapshot for the key.
func (s *SnapshotStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM form_snapshots WHERE storage_key = ?`, s.key); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}
