// Package session holds the client's authenticated identity: an opaque token
// and a user profile snapshot, both persisted on a storage Disk so they
// survive restarts within the same storage scope.
//
// The token is never parsed, validated, or expiry-checked here — it is
// carried as-is on authorized calls, and a stale token is only discovered
// when the backend rejects it.
package session

import (
	"encoding/json"
	"sync"

	"github.com/shashiranjanraj/shopeasy/config"
	"github.com/shashiranjanraj/shopeasy/pkg/event"
	"github.com/shashiranjanraj/shopeasy/pkg/storage"
)

// EventCleared fires after Clear with the login URL as payload — the
// user-agent redirect belongs to whoever listens.
const EventCleared = "session.cleared"

const (
	tokenKey = "session/token"
	userKey  = "session/user"
)

// Store is the persisted session state. The Disk is the source of truth;
// nothing is cached in memory, so concurrent readers always see what a page
// reload would see.
type Store struct {
	mu   sync.Mutex
	disk storage.Disk
}

// New returns a Store persisting to disk.
func New(disk storage.Disk) *Store {
	return &Store{disk: disk}
}

// Establish persists the token and user snapshot and marks the client
// authenticated. The token shape is not validated.
func (s *Store) Establish(token string, user interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.disk.Put(tokenKey, []byte(token)); err != nil {
		return err
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.disk.Put(userKey, raw)
}

// Clear removes the token and user snapshot, then announces the logout so
// the presentation layer can move the user agent to the login view.
// Clearing an empty session is not an error.
func (s *Store) Clear() {
	s.mu.Lock()
	_ = s.disk.Delete(tokenKey)
	_ = s.disk.Delete(userKey)
	s.mu.Unlock()

	event.Fire(EventCleared, config.LoginURL())
}

// IsAuthenticated reports whether a token is present in persisted storage.
// It says nothing about whether the backend still accepts that token.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Token returns the persisted token, or "" when none is stored.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.disk.Exists(tokenKey) {
		return ""
	}
	raw, err := s.disk.Get(tokenKey)
	if err != nil {
		return ""
	}
	return string(raw)
}

// Current decodes the persisted user snapshot into dest. Returns false when
// no snapshot exists. The backend is never contacted.
func (s *Store) Current(dest interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.disk.Exists(userKey) {
		return false
	}
	raw, err := s.disk.Get(userKey)
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}
