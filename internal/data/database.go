package data

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"driving-theory-web/internal/i18n"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ErrStoreUnavailable is returned when a locale's store file is missing or
// cannot be opened. This is fatal to a build: a missing locale means the site
// cannot be generated correctly.
var ErrStoreUnavailable = errors.New("locale store unavailable")

// Store provides read-only access to the per-locale SQLite question stores.
// Handles are opened lazily and memoized for the lifetime of the process.
// The stores are populated by an offline authoring pipeline and are never
// written to here.
type Store struct {
	dir string

	mu  sync.Mutex
	dbs map[i18n.Locale]*sqlx.DB
}

// NewStore creates a Store over a directory holding one
// database_<locale>.db file per supported locale.
func NewStore(dir string) *Store {
	return &Store{
		dir: dir,
		dbs: make(map[i18n.Locale]*sqlx.DB),
	}
}

// Path returns the store file path for a locale.
func (s *Store) Path(locale i18n.Locale) string {
	return filepath.Join(s.dir, fmt.Sprintf("database_%s.db", locale))
}

// DB returns the memoized read-only handle for a locale, opening it on first
// use. A missing or unopenable file yields ErrStoreUnavailable.
func (s *Store) DB(locale i18n.Locale) (*sqlx.DB, error) {
	if !i18n.IsValid(locale) {
		return nil, fmt.Errorf("%w: unsupported locale %q", ErrStoreUnavailable, locale)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if db, ok := s.dbs[locale]; ok {
		return db, nil
	}

	path := s.Path(locale)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, path, err)
	}

	// mode=ro keeps the driver from ever creating or mutating the file;
	// immutable skips locking, which is safe for a single-owner batch read.
	dsn := fmt.Sprintf("file:%s?mode=ro&immutable=1", path)
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, path, err)
	}

	s.dbs[locale] = db
	return db, nil
}

// Close closes all opened locale handles.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for locale, db := range s.dbs {
		if err := db.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing store for %s: %w", locale, err)
		}
		delete(s.dbs, locale)
	}
	return firstErr
}
