// Package store holds the three client-state containers: session, favorites
// and UI state. Session and favorites persist across restarts as two named
// JSON documents in a local sqlite database; UI state is ephemeral.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Blob names. Each store owns exactly one document; there are no
// cross-store transactions.
const (
	AuthBlobName      = "auth-storage"
	FavoritesBlobName = "favorites-storage"
)

// BlobStore persists named JSON documents in a single sqlite table.
type BlobStore struct {
	db *sql.DB
}

// OpenBlobStore opens (and if needed creates) the state database at path.
func OpenBlobStore(path string) (*BlobStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS blobs (
		name TEXT PRIMARY KEY,
		doc  TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init state db: %w", err)
	}

	return &BlobStore{db: db}, nil
}

// Load reads the named document into out. It returns false with no error
// when the document does not exist yet.
func (s *BlobStore) Load(name string, out any) (bool, error) {
	var doc string
	err := s.db.QueryRow(`SELECT doc FROM blobs WHERE name = ?`, name).Scan(&doc)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load blob %q: %w", name, err)
	}
	if err := json.Unmarshal([]byte(doc), out); err != nil {
		return false, fmt.Errorf("decode blob %q: %w", name, err)
	}
	return true, nil
}

// Save writes the named document, replacing any previous version.
func (s *BlobStore) Save(name string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode blob %q: %w", name, err)
	}
	if _, err := s.db.Exec(`INSERT OR REPLACE INTO blobs (name, doc) VALUES (?, ?)`, name, string(doc)); err != nil {
		return fmt.Errorf("save blob %q: %w", name, err)
	}
	return nil
}

// Delete removes the named document if it exists.
func (s *BlobStore) Delete(name string) error {
	if _, err := s.db.Exec(`DELETE FROM blobs WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete blob %q: %w", name, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *BlobStore) Close() error {
	return s.db.Close()
}
