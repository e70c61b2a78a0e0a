package session

import (
	"testing"

	"github.com/ad92co/FKMap/api/models"
)

func TestManager_BeginEnd(t *testing.T) {
	m := NewManager()
	if m.CurrentUser() != nil {
		t.Fatal("expected no user before Begin")
	}

	user := &models.User{Email: "alice@example.com"}
	m.Begin(user)
	if got := m.CurrentUser(); got != user {
		t.Fatalf("expected current user after Begin, got %v", got)
	}

	m.End()
	if m.CurrentUser() != nil {
		t.Fatal("expected no user after End")
	}
}

func TestManager_SubscribeDeliversTransitions(t *testing.T) {
	m := NewManager()
	ch := m.Subscribe()

	user := &models.User{Email: "alice@example.com"}
	m.Begin(user)
	if got := <-ch; got != user {
		t.Fatalf("expected sign-in notification, got %v", got)
	}

	m.End()
	if got := <-ch; got != nil {
		t.Fatalf("expected nil on sign-out, got %v", got)
	}
}

func TestManager_SlowSubscriberSeesLatestState(t *testing.T) {
	m := NewManager()
	ch := m.Subscribe()

	// Two transitions before the subscriber reads: only the latest matters.
	m.Begin(&models.User{Email: "alice@example.com"})
	m.End()

	if got := <-ch; got != nil {
		t.Fatalf("expected latest state (signed out), got %v", got)
	}
}
