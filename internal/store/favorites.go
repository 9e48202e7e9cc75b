package store

import (
	"database/sql"
	"fmt"
)

// FavoriteEntry is one liked track, scoped to the user who liked it.
type FavoriteEntry struct {
	ID       int64
	UserID   int64
	Title    string
	Author   string
	FilePath string
}

// FavoritesStore persists liked tracks with per-user dedup.
type FavoritesStore struct {
	db *sql.DB
}

// Save records a liked track. Liking the same path twice for the same user
// is an idempotent no-op: the first row stands and no error is returned.
func (s *FavoritesStore) Save(userID int64, title, author, path string) error {
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO audiofile (user_id, title, author, file_path)
		VALUES (?, ?, ?, ?)
	`, userID, title, author, path)
	if err != nil {
		return fmt.Errorf("save favorite: %w", err)
	}
	return nil
}

// Delete removes entries matching the path.
// Deletion is not scoped to a user: a path shared across accounts is removed
// everywhere. Kept for compatibility with the calling code, which always
// passes the current session's track.
func (s *FavoritesStore) Delete(path string) error {
	_, err := s.db.Exec(`DELETE FROM audiofile WHERE file_path = ?`, path)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}

// ListAll returns every favorite for the user in insertion order.
func (s *FavoritesStore) ListAll(userID int64) ([]FavoriteEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, title, author, file_path
		FROM audiofile
		WHERE user_id = ?
		ORDER BY id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	var entries []FavoriteEntry
	for rows.Next() {
		var e FavoriteEntry
		var author sql.NullString
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &author, &e.FilePath); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		e.Author = author.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
