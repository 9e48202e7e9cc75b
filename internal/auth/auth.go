// Package auth implements registration and login on top of the user store.
// Passwords are stored as bcrypt hashes, never in the clear.
package auth

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/mveldt/chime/internal/store"
)

// Credential length rules, inclusive bounds.
const (
	MinLoginLen    = 3
	MaxLoginLen    = 20
	MinPasswordLen = 8
	MaxPasswordLen = 30
)

var (
	// ErrInvalidCredentials is returned when login or password do not match.
	ErrInvalidCredentials = errors.New("invalid login or password")
	// ErrLoginTaken is returned when registering with an occupied login.
	ErrLoginTaken = errors.New("this login is already occupied")
)

// ValidationError reports a credential that breaks a length rule.
// It blocks the action; nothing is written.
type ValidationError struct {
	Rule string
}

func (e *ValidationError) Error() string {
	return e.Rule
}

// Service validates and authenticates accounts.
type Service struct {
	users *store.UserStore
}

// New creates an auth service over the given user store.
func New(users *store.UserStore) *Service {
	return &Service{users: users}
}

// Register validates the credentials, creates the account and returns it.
// The account name defaults to the login.
func (s *Service) Register(login, password string) (*store.User, error) {
	if err := ValidateLogin(login); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.CreateUnique(login, login, string(hash))
	if errors.Is(err, store.ErrLoginExists) {
		return nil, ErrLoginTaken
	}
	if err != nil {
		return nil, err
	}

	return &store.User{ID: id, Name: login, Login: login, Password: string(hash)}, nil
}

// Login returns the user matching the credentials, or ErrInvalidCredentials.
func (s *Service) Login(login, password string) (*store.User, error) {
	u, err := s.users.GetByLogin(login)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// ValidateLogin enforces the login length rule. Lengths count characters,
// not bytes.
func ValidateLogin(login string) error {
	if n := utf8.RuneCountInString(login); n < MinLoginLen || n > MaxLoginLen {
		return &ValidationError{Rule: fmt.Sprintf("Login must be %d to %d characters long.", MinLoginLen, MaxLoginLen)}
	}
	return nil
}

// ValidatePassword enforces the password length rule. Lengths count
// characters, not bytes.
func ValidatePassword(password string) error {
	if n := utf8.RuneCountInString(password); n < MinPasswordLen || n > MaxPasswordLen {
		return &ValidationError{Rule: fmt.Sprintf("Password must be %d to %d characters long.", MinPasswordLen, MaxPasswordLen)}
	}
	return nil
}
