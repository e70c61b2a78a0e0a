// Package session tracks the authenticated user for one running client of
// the journal and broadcasts sign-in/sign-out transitions. Stores that
// mirror remote state consume the stream to know when to subscribe and
// when to tear down.
package session

import (
	"sync"

	"github.com/ad92co/FKMap/api/models"
)

type Manager struct {
	mu      sync.Mutex
	current *models.User
	subs    []chan *models.User
}

func NewManager() *Manager {
	return &Manager{}
}

// CurrentUser returns the signed-in user, or nil when signed out.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Begin marks a session as started and notifies subscribers.
func (m *Manager) Begin(user *models.User) {
	m.broadcast(user)
}

// End marks the session as finished and notifies subscribers with nil.
func (m *Manager) End() {
	m.broadcast(nil)
}

// Subscribe returns a channel delivering the current user on every
// transition: the user on sign-in, nil on sign-out. The channel is
// buffered so a slow consumer never blocks sign-in or sign-out; only the
// latest state matters, so an overwritten notification is dropped.
func (m *Manager) Subscribe() <-chan *models.User {
	ch := make(chan *models.User, 1)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

func (m *Manager) broadcast(user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = user
	for _, ch := range m.subs {
		select {
		case ch <- user:
		default:
			// Stale pending notification: replace it with the latest state.
			select {
			case <-ch:
			default:
			}
			ch <- user
		}
	}
}
