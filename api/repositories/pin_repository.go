package repositories

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/ad92co/FKMap/api/models"
)

// PinStore is the authoritative collection of saved pins. Both variants
// share this contract: append one pin, read the current collection.
//
// MemoryPinStore appends synchronously; FirestorePinStore's collection
// only reflects an append once the remote subscription delivers the next
// snapshot, so callers must not assume immediate visibility.
type PinStore interface {
	Append(ctx context.Context, pin models.Pin) (string, error)
	Pins() []models.Pin
}

// implementation: in-memory variant

type MemoryPinStore struct {
	mu     sync.Mutex
	pins   []models.Pin
	lastID int64
}

func NewMemoryPinStore() *MemoryPinStore {
	return &MemoryPinStore{}
}

func (s *MemoryPinStore) Append(_ context.Context, pin models.Pin) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	pin.ID = strconv.FormatInt(id, 10)
	s.pins = append(s.pins, pin)
	return pin.ID, nil
}

// Pins returns the collection in insertion order.
func (s *MemoryPinStore) Pins() []models.Pin {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Pin, len(s.pins))
	copy(out, s.pins)
	return out
}
