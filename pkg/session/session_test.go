package session_test

import (
	"testing"

	"github.com/shashiranjanraj/shopeasy/pkg/event"
	"github.com/shashiranjanraj/shopeasy/pkg/session"
	"github.com/shashiranjanraj/shopeasy/pkg/storage"
)

type profile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newStore(t *testing.T) *session.Store {
	t.Helper()
	return session.New(storage.NewLocal(t.TempDir(), ""))
}

func TestEstablishAndCurrent(t *testing.T) {
	s := newStore(t)
	u := profile{ID: 1, Name: "Shashi", Email: "shashi@example.com"}

	if err := s.Establish("t1", u); err != nil {
		t.Fatalf("establish: %v", err)
	}

	if !s.IsAuthenticated() {
		t.Error("expected IsAuthenticated after Establish")
	}
	if got := s.Token(); got != "t1" {
		t.Errorf("expected token t1, got %q", got)
	}

	var got profile
	if !s.Current(&got) {
		t.Fatal("expected a persisted user snapshot")
	}
	if got != u {
		t.Errorf("expected %+v, got %+v", u, got)
	}
}

func TestClearRemovesBothEntries(t *testing.T) {
	defer event.Flush()

	s := newStore(t)
	if err := s.Establish("t1", profile{ID: 1}); err != nil {
		t.Fatalf("establish: %v", err)
	}

	var redirected string
	event.Listen(session.EventCleared, func(payload interface{}) {
		redirected, _ = payload.(string)
	})

	s.Clear()

	if s.IsAuthenticated() {
		t.Error("expected unauthenticated after Clear")
	}
	if s.Token() != "" {
		t.Error("expected empty token after Clear")
	}
	var got profile
	if s.Current(&got) {
		t.Error("expected no user snapshot after Clear")
	}
	if redirected == "" {
		t.Error("expected session.cleared to carry the login URL")
	}
}

func TestClearOnEmptySessionIsSilent(t *testing.T) {
	s := newStore(t)
	s.Clear() // nothing stored — must not panic or error
	if s.IsAuthenticated() {
		t.Error("expected unauthenticated")
	}
}

func TestSurvivesReload(t *testing.T) {
	dir := t.TempDir()

	first := session.New(storage.NewLocal(dir, ""))
	if err := first.Establish("t2", profile{ID: 9, Name: "x"}); err != nil {
		t.Fatalf("establish: %v", err)
	}

	// A fresh store over the same disk sees the same session.
	second := session.New(storage.NewLocal(dir, ""))
	if !second.IsAuthenticated() || second.Token() != "t2" {
		t.Error("expected session to survive a reload within the same storage scope")
	}
}
