package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrLoginExists is returned by CreateUnique when the login is already taken.
var ErrLoginExists = errors.New("login already exists")

// User is a registered account. The stored password is a bcrypt hash.
type User struct {
	ID       int64
	Name     string
	Login    string
	Password string
}

// UserStore persists registered accounts.
type UserStore struct {
	db *sql.DB
}

// Create inserts a new user and returns its id.
func (s *UserStore) Create(name, login, passwordHash string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO user (name, login, password) VALUES (?, ?, ?)
	`, name, login, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create user id: %w", err)
	}
	return id, nil
}

// CreateUnique inserts a new user unless the login is already taken.
// The existence check and the insert run in one transaction.
func (s *UserStore) CreateUnique(name, login, passwordHash string) (int64, error) {
	var id int64
	err := WithTx(s.db, func(tx *sql.Tx) error {
		var n int
		if err := tx.QueryRow(`SELECT COUNT(*) FROM user WHERE login = ?`, login).Scan(&n); err != nil {
			return fmt.Errorf("check login: %w", err)
		}
		if n > 0 {
			return ErrLoginExists
		}
		res, err := tx.Exec(`
			INSERT INTO user (name, login, password) VALUES (?, ?, ?)
		`, name, login, passwordHash)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("create user id: %w", err)
		}
		return nil
	})
	return id, err
}

// GetByLogin returns the user with the given login, or nil if none exists.
func (s *UserStore) GetByLogin(login string) (*User, error) {
	row := s.db.QueryRow(`
		SELECT id, name, login, password FROM user WHERE login = ?
	`, login)

	u := &User{}
	err := row.Scan(&u.ID, &u.Name, &u.Login, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by login: %w", err)
	}
	return u, nil
}

// Count returns the number of registered users.
func (s *UserStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM user`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
