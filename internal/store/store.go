// Package store persists users and per-user favorites in SQLite.
// The database path is injected at construction; DefaultPath resolves the
// conventional per-user data file location.
package store

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "chime"
	dbFileName = "chime.db"
)

// Store owns the database handle shared by the user and favorites stores.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the per-user location of the database file.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// Open opens (creating if needed) the database at the given path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the handle for the scoped stores.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Users returns the user store backed by this database.
func (s *Store) Users() *UserStore {
	return &UserStore{db: s.db}
}

// Favorites returns the favorites store backed by this database.
func (s *Store) Favorites() *FavoritesStore {
	return &FavoritesStore{db: s.db}
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS user (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			login TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS audiofile (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES user(id),
			title TEXT NOT NULL,
			author TEXT,
			file_path TEXT NOT NULL,
			UNIQUE(user_id, file_path)
		);

		CREATE INDEX IF NOT EXISTS idx_audiofile_user ON audiofile(user_id);
	`)
	return err
}
