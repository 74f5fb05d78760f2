package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func statePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestLoginDefaultsProfileFields(t *testing.T) {
	s := NewStore(statePath(t))
	require.False(t, s.Authenticated())

	s.Login(User{ID: 1, Name: "Writer", Email: "writer@example.com"})

	require.True(t, s.Authenticated())
	u, ok := s.User()
	require.True(t, ok)
	require.Equal(t, "", u.Bio)
	require.Equal(t, "", u.ProfileImage)
}

func TestPersistedFormAlwaysCarriesProfileKeys(t *testing.T) {
	path := statePath(t)
	s := NewStore(path)
	s.Login(User{ID: 1, Name: "Writer", Email: "writer@example.com"})

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Contains(t, raw, "bio")
	require.Contains(t, raw, "userprofile")
}

func TestReloadSeedsFromPersistedFile(t *testing.T) {
	path := statePath(t)

	first := NewStore(path)
	first.Login(User{ID: 7, Name: "Returning", Email: "back@example.com", Bio: "was here"})

	second := NewStore(path)
	require.True(t, second.Authenticated())
	u, ok := second.User()
	require.True(t, ok)
	require.Equal(t, uint(7), u.ID)
	require.Equal(t, "was here", u.Bio)
}

func TestReloadWithCorruptFileIsSignedOut(t *testing.T) {
	path := statePath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := NewStore(path)
	require.False(t, s.Authenticated())
	_, ok := s.User()
	require.False(t, ok)
}

func TestUpdateProfileMergesAndPersists(t *testing.T) {
	path := statePath(t)
	s := NewStore(path)
	s.Login(User{ID: 1, Name: "Writer", Email: "writer@example.com", Bio: "old", ProfileImage: "img-1"})

	bio := "new"
	s.UpdateProfile(ProfileUpdate{Bio: &bio})

	u, ok := s.User()
	require.True(t, ok)
	require.Equal(t, "new", u.Bio)
	require.Equal(t, "img-1", u.ProfileImage, "unset field stays put")

	reloaded := NewStore(path)
	ru, ok := reloaded.User()
	require.True(t, ok)
	require.Equal(t, "new", ru.Bio)
}

func TestUpdateProfileWhileSignedOutIsNoOp(t *testing.T) {
	path := statePath(t)
	s := NewStore(path)

	bio := "ghost"
	s.UpdateProfile(ProfileUpdate{Bio: &bio})

	require.False(t, s.Authenticated())
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestLogoutClearsStateAndFile(t *testing.T) {
	path := statePath(t)
	s := NewStore(path)
	s.Login(User{ID: 1, Name: "Writer", Email: "writer@example.com"})

	s.Logout()

	require.False(t, s.Authenticated())
	_, ok := s.User()
	require.False(t, ok)
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	restarted := NewStore(path)
	require.False(t, restarted.Authenticated())
}
