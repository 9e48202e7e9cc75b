//nolint:goconst // test file with repeated string literals
package auth

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mveldt/chime/internal/store"
)

func newService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "chime.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return New(st.Users()), st
}

func TestRegister_ShortLoginRejectedWithoutWrite(t *testing.T) {
	svc, st := newService(t)

	_, err := svc.Register("ab", "password123")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Rule, "Login")

	n, err := st.Users().Count()
	require.NoError(t, err)
	require.Zero(t, n, "validation failure must not write a row")
}

func TestRegister_LoginLengthBounds(t *testing.T) {
	tests := []struct {
		login string
		ok    bool
	}{
		{"ab", false},
		{"abc", true},
		{strings.Repeat("a", 20), true},
		{strings.Repeat("a", 21), false},
		// Multibyte logins count characters, not bytes.
		{"éé", false},
		{"ééé", true},
		{strings.Repeat("é", 20), true},
		{strings.Repeat("é", 21), false},
	}

	for _, tt := range tests {
		err := ValidateLogin(tt.login)
		if tt.ok {
			require.NoError(t, err, "login %q", tt.login)
		} else {
			require.Error(t, err, "login %q", tt.login)
		}
	}
}

func TestRegister_PasswordLengthBounds(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{"1234567", false},
		{"12345678", true},
		{strings.Repeat("p", 30), true},
		{strings.Repeat("p", 31), false},
		{strings.Repeat("é", 7), false},
		{strings.Repeat("é", 8), true},
	}

	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if tt.ok {
			require.NoError(t, err, "password %q", tt.password)
		} else {
			require.Error(t, err, "password %q", tt.password)
		}
	}
}

func TestRegister_ThenLogin(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.Register("alice", "password123")
	require.NoError(t, err)
	require.Equal(t, "alice", created.Login)
	require.Equal(t, "alice", created.Name)
	require.NotEqual(t, "password123", created.Password, "password must be stored hashed")

	u, err := svc.Login("alice", "password123")
	require.NoError(t, err)
	require.Equal(t, created.ID, u.ID)
}

func TestRegister_TakenLogin(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Register("alice", "password123")
	require.NoError(t, err)

	_, err = svc.Register("alice", "otherpassword")
	require.ErrorIs(t, err, ErrLoginTaken)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Register("alice", "password123")
	require.NoError(t, err)

	_, err = svc.Login("alice", "wrongpassword")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login("nobody", "password123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidationError_Message(t *testing.T) {
	err := ValidateLogin("x")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ValidateLogin error = %T, want *ValidationError", err)
	}
	if verr.Error() != "Login must be 3 to 20 characters long." {
		t.Errorf("Error() = %q", verr.Error())
	}
}
