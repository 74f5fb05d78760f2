// Package session holds the client-side auth state: whether a user is
// signed in and who they are. The server is the source of truth; this
// store is a cache, persisted to a single JSON file so state survives
// process restarts.
package session

import (
	"encoding/json"
	"os"
	"sync"
)

// User is the record mirrored from the server. Bio and ProfileImage are
// always present in the persisted form, defaulted to "" when the server
// record omits them.
type User struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"userprofile"`
}

// ProfileUpdate carries the partial fields a profile edit can change.
// Nil means "leave unchanged".
type ProfileUpdate struct {
	Bio          *string
	ProfileImage *string
}

// Store is a reducer-style auth state holder with exactly three
// mutations: Login, UpdateProfile and Logout. Nothing else may write it;
// all mutations happen in response to auth call outcomes.
type Store struct {
	mu            sync.Mutex
	path          string
	authenticated bool
	user          *User
}

// NewStore creates a store seeded from the persisted file at path, when
// one exists. A missing or unreadable file just means "signed out".
func NewStore(path string) *Store {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return s
	}
	s.authenticated = true
	s.user = &u
	return s
}

// Login records a signed-in user and persists it.
func (s *Store) Login(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authenticated = true
	s.user = &u
	s.persist()
}

// UpdateProfile merges the partial fields into the current user record,
// if one is present, and persists the result.
func (s *Store) UpdateProfile(p ProfileUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	if p.Bio != nil {
		s.user.Bio = *p.Bio
	}
	if p.ProfileImage != nil {
		s.user.ProfileImage = *p.ProfileImage
	}
	s.persist()
}

// Logout clears the state and removes the persisted copy.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authenticated = false
	s.user = nil
	_ = os.Remove(s.path)
}

// Authenticated reports whether a user is signed in.
func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// User returns a copy of the current user record, and whether one exists.
func (s *Store) User() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

func (s *Store) persist() {
	data, err := json.Marshal(s.user)
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o600)
}
