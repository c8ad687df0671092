package cache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Cache is a SQLite-backed build cache. Entries are keyed by content hash,
// so stale values are unreachable rather than expired; Purge exists to keep
// the file from growing across many builds.
type Cache struct {
	db *sqlx.DB
}

// New opens (or creates) the build cache at the given file path and ensures
// the schema exists.
func New(filePath string) (*Cache, error) {
	db, err := sqlx.Connect("sqlite", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open build cache: %w", err)
	}

	_, err = db.Exec("PRAGMA journal_mode=WAL;")
	if err != nil {
		return nil, fmt.Errorf("failed to set WAL mode on build cache: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS build_cache (
		key TEXT PRIMARY KEY,
		value BLOB,
		created_at INTEGER
	);
	CREATE INDEX IF NOT EXISTS idx_created_at ON build_cache (created_at);
	`
	_, err = db.Exec(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create build cache schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Get retrieves an entry. A miss is (nil, nil), not an error.
func (c *Cache) Get(key string) ([]byte, error) {
	var value []byte
	query := `SELECT value FROM build_cache WHERE key = ?`
	if err := c.db.Get(&value, query, key); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item from build cache: %w", err)
	}
	return value, nil
}

// Set stores an entry, replacing any previous value under the same key.
func (c *Cache) Set(key string, value []byte) error {
	query := `INSERT OR REPLACE INTO build_cache (key, value, created_at) VALUES (?, ?, ?)`
	if _, err := c.db.Exec(query, key, value, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to set item in build cache: %w", err)
	}
	return nil
}

// Delete removes an entry.
func (c *Cache) Delete(key string) error {
	query := `DELETE FROM build_cache WHERE key = ?`
	if _, err := c.db.Exec(query, key); err != nil {
		return fmt.Errorf("failed to delete item from build cache: %w", err)
	}
	return nil
}

// Purge drops entries older than the given age.
func (c *Cache) Purge(olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan).Unix()
	query := `DELETE FROM build_cache WHERE created_at < ?`
	if _, err := c.db.Exec(query, cutoff); err != nil {
		return fmt.Errorf("failed to purge build cache: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
