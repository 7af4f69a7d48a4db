// Package cache persists extracted story content between runs so unchanged
// stories do not need a live browser round-trip.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"storydoc/internal/extract"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a SQLite-backed content cache keyed by (source, story id).
type Store struct {
	db *sql.DB
}

// Open creates or opens the cache database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init cache schema: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS story_content (
		source TEXT NOT NULL,
		story_id TEXT NOT NULL,
		payload JSON NOT NULL,
		fetched_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (source, story_id)
	);`)
	return err
}

// Get returns the cached content for a story, or ok=false on a miss.
func (s *Store) Get(ctx context.Context, source, storyID string) (*extract.Content, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM story_content WHERE source = ? AND story_id = ?`,
		source, storyID,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var content extract.Content
	if err := json.Unmarshal(payload, &content); err != nil {
		// A corrupt row is treated as a miss; the live extractor will
		// overwrite it.
		return nil, false, nil
	}
	return &content, true, nil
}

// Put stores or replaces the content for a story.
func (s *Store) Put(ctx context.Context, source, storyID string, content *extract.Content) error {
	payload, err := json.Marshal(content)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO story_content (source, story_id, payload)
		VALUES (?, ?, ?)
		ON CONFLICT(source, story_id) DO UPDATE SET
			payload=excluded.payload,
			fetched_at=CURRENT_TIMESTAMP
	`, source, storyID, payload)
	return err
}
