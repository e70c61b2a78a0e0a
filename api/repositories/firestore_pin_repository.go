package repositories

import (
	"context"
	"log"
	"sync"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/ad92co/FKMap/api/models"
)

const pinsCollection = "pins"

// FirestorePinStore mirrors the pins collection of a Firestore project,
// ordered by dateISO descending. The visible collection is replaced
// wholesale on every snapshot the subscription delivers; Append writes a
// document and relies on the next snapshot for visibility.
//
// The subscription follows the session: Watch starts it when a user signs
// in and tears it down, clearing the mirror immediately, when the session
// ends. A snapshot arriving after teardown is discarded.
type FirestorePinStore struct {
	client *firestore.Client

	mu     sync.Mutex
	pins   []models.Pin
	gen    uint64
	cancel context.CancelFunc
}

func NewFirestorePinStore(client *firestore.Client) *FirestorePinStore {
	return &FirestorePinStore{client: client}
}

func (s *FirestorePinStore) Append(ctx context.Context, pin models.Pin) (string, error) {
	ref, _, err := s.client.Collection(pinsCollection).Add(ctx, pin)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

// Pins returns the mirrored collection; empty unless a session is active
// and at least one snapshot has arrived.
func (s *FirestorePinStore) Pins() []models.Pin {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Pin, len(s.pins))
	copy(out, s.pins)
	return out
}

// Watch consumes session transitions until ctx is done: a user starts the
// snapshot subscription, nil stops it and empties the mirror.
func (s *FirestorePinStore) Watch(ctx context.Context, sessions <-chan *models.User) {
	for {
		select {
		case <-ctx.Done():
			s.stop()
			return
		case user, ok := <-sessions:
			if !ok {
				s.stop()
				return
			}
			if user == nil {
				s.stop()
			} else {
				s.start(ctx)
			}
		}
	}
}

func (s *FirestorePinStore) start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	subCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.gen++
	go s.run(subCtx, s.gen)
}

func (s *FirestorePinStore) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	// Bumping the generation fences out any snapshot still in flight.
	s.gen++
	s.pins = nil
}

func (s *FirestorePinStore) run(ctx context.Context, gen uint64) {
	it := s.client.Collection(pinsCollection).
		OrderBy("dateISO", firestore.Desc).
		Snapshots(ctx)
	defer it.Stop()

	for {
		snap, err := it.Next()
		if err != nil {
			if ctx.Err() == nil {
				log.Println("pin subscription ended:", err)
			}
			return
		}
		pins, err := decodeSnapshot(snap)
		if err != nil {
			log.Println("decode pin snapshot:", err)
			continue
		}

		s.applySnapshot(gen, pins)
	}
}

// applySnapshot replaces the mirror wholesale, unless the subscription
// that produced the snapshot has been superseded.
func (s *FirestorePinStore) applySnapshot(gen uint64, pins []models.Pin) {
	s.mu.Lock()
	if gen == s.gen {
		s.pins = pins
	}
	s.mu.Unlock()
}

func decodeSnapshot(snap *firestore.QuerySnapshot) ([]models.Pin, error) {
	var pins []models.Pin
	for {
		doc, err := snap.Documents.Next()
		if err == iterator.Done {
			return pins, nil
		}
		if err != nil {
			return nil, err
		}
		var pin models.Pin
		if err := doc.DataTo(&pin); err != nil {
			return nil, err
		}
		pin.ID = doc.Ref.ID
		pins = append(pins, pin)
	}
}
