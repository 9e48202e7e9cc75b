package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "chime.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func createUser(t *testing.T, s *Store, login string) int64 {
	t.Helper()
	id, err := s.Users().Create(login, login, "hash")
	require.NoError(t, err)
	return id
}

func TestFavorites_SaveAndList(t *testing.T) {
	s := openTestStore(t)
	userID := createUser(t, s, "alice")
	fav := s.Favorites()

	require.NoError(t, fav.Save(userID, "First", "A", "/music/first.mp3"))
	require.NoError(t, fav.Save(userID, "Second", "B", "/music/second.mp3"))

	entries, err := fav.ListAll(userID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Stable order: insertion order, row id ascending.
	require.Equal(t, "First", entries[0].Title)
	require.Equal(t, "Second", entries[1].Title)
	require.Equal(t, userID, entries[0].UserID)
}

func TestFavorites_DuplicateSaveIsNoOp(t *testing.T) {
	s := openTestStore(t)
	userID := createUser(t, s, "alice")
	fav := s.Favorites()

	require.NoError(t, fav.Save(userID, "Track", "A", "/music/track.mp3"))
	require.NoError(t, fav.Save(userID, "Track", "A", "/music/track.mp3"))

	entries, err := fav.ListAll(userID)
	require.NoError(t, err)
	require.Len(t, entries, 1, "duplicate like must leave exactly one row")
}

func TestFavorites_SamePathDifferentUsers(t *testing.T) {
	s := openTestStore(t)
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")
	fav := s.Favorites()

	require.NoError(t, fav.Save(alice, "Track", "A", "/music/track.mp3"))
	require.NoError(t, fav.Save(bob, "Track", "A", "/music/track.mp3"))

	aliceEntries, err := fav.ListAll(alice)
	require.NoError(t, err)
	require.Len(t, aliceEntries, 1)

	bobEntries, err := fav.ListAll(bob)
	require.NoError(t, err)
	require.Len(t, bobEntries, 1)
}

func TestFavorites_DeleteIsUnscopedByUser(t *testing.T) {
	// Known limitation: delete matches by path across the whole table.
	s := openTestStore(t)
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")
	fav := s.Favorites()

	require.NoError(t, fav.Save(alice, "Track", "A", "/music/track.mp3"))
	require.NoError(t, fav.Save(bob, "Track", "A", "/music/track.mp3"))

	require.NoError(t, fav.Delete("/music/track.mp3"))

	aliceEntries, err := fav.ListAll(alice)
	require.NoError(t, err)
	require.Empty(t, aliceEntries)

	bobEntries, err := fav.ListAll(bob)
	require.NoError(t, err)
	require.Empty(t, bobEntries)
}

func TestUsers_CreateAndGetByLogin(t *testing.T) {
	s := openTestStore(t)

	id, err := s.Users().Create("Alice", "alice", "hash")
	require.NoError(t, err)

	u, err := s.Users().GetByLogin("alice")
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, id, u.ID)
	require.Equal(t, "Alice", u.Name)
	require.Equal(t, "hash", u.Password)
}

func TestUsers_GetByLogin_Missing(t *testing.T) {
	s := openTestStore(t)

	u, err := s.Users().GetByLogin("nobody")
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestUsers_LoginUnique(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Users().Create("Alice", "alice", "hash")
	require.NoError(t, err)

	_, err = s.Users().Create("Other", "alice", "hash")
	require.Error(t, err, "second insert with the same login must fail")
}

func TestUsers_CreateUnique(t *testing.T) {
	s := openTestStore(t)

	id, err := s.Users().CreateUnique("Alice", "alice", "hash")
	require.NoError(t, err)
	require.Positive(t, id)

	_, err = s.Users().CreateUnique("Other", "alice", "otherhash")
	require.ErrorIs(t, err, ErrLoginExists)

	// The failed attempt must not leave a row behind.
	n, err := s.Users().Count()
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "chime.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	n, err := s.Users().Count()
	require.NoError(t, err)
	require.Zero(t, n)
}
