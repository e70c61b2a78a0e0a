package journal

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/ad92co/FKMap/api/models"
)

type mockAppender struct {
	appendFn func(ctx context.Context, pin models.Pin) (string, error)
	appended []models.Pin
}

func (m *mockAppender) Append(ctx context.Context, pin models.Pin) (string, error) {
	m.appended = append(m.appended, pin)
	if m.appendFn != nil {
		return m.appendFn(ctx, pin)
	}
	return "pin-1", nil
}

func TestComposer_SaveRejectsBlankTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t"} {
		store := &mockAppender{}
		c := NewComposer()
		c.Open(models.Coordinate{Latitude: 48.85, Longitude: 2.29})
		c.SetTitle(title)

		if _, err := c.Save(context.Background(), store, Author{}); !errors.Is(err, ErrEmptyTitle) {
			t.Fatalf("title %q: expected ErrEmptyTitle, got %v", title, err)
		}
		if len(store.appended) != 0 {
			t.Fatalf("title %q: store collection changed on rejected save", title)
		}
	}
}

func TestComposer_SaveRoundTrip(t *testing.T) {
	store := &mockAppender{}
	c := NewComposer()
	c.Open(models.Coordinate{Latitude: 48.8584, Longitude: 2.2945})
	c.SetTitle("Eiffel Tower")
	c.SetDescription("Sunset picnic")
	c.SetRating(4)
	c.SetDate(time.Date(2024, 7, 14, 18, 30, 0, 0, time.UTC))
	c.Companions().Add("Alice")
	c.Companions().Add("Bob")

	pin, err := c.Save(context.Background(), store, Author{ID: "u1", Label: "alice@example.com"})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if pin.ID != "pin-1" {
		t.Fatalf("expected store-assigned id, got %q", pin.ID)
	}
	if pin.Title != "Eiffel Tower" || pin.Description != "Sunset picnic" || pin.Rating != 4 {
		t.Fatalf("unexpected pin fields: %+v", pin)
	}
	if pin.DateISO != "2024-07-14" {
		t.Fatalf("expected dateISO 2024-07-14, got %q", pin.DateISO)
	}
	if pin.DateReadable != "14/07/2024" {
		t.Fatalf("expected dateReadable 14/07/2024, got %q", pin.DateReadable)
	}
	if !reflect.DeepEqual(pin.Partners, []string{"Alice", "Bob"}) {
		t.Fatalf("expected partners [Alice Bob], got %v", pin.Partners)
	}
	if pin.AuthorID != "u1" || pin.AuthorLabel != "alice@example.com" {
		t.Fatalf("author not attached: %+v", pin)
	}
	if pin.Coordinate.Latitude != 48.8584 || pin.Coordinate.Longitude != 2.2945 {
		t.Fatalf("coordinate not captured: %+v", pin.Coordinate)
	}
}

func TestComposer_SaveClearsDraftOnSuccess(t *testing.T) {
	store := &mockAppender{}
	c := NewComposer()
	c.Open(models.Coordinate{Latitude: 1, Longitude: 2})
	c.SetTitle("Somewhere")
	c.Companions().Add("Alice")

	if _, err := c.Save(context.Background(), store, Author{}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	d := c.Draft()
	if d.Title != "" || d.Description != "" || d.Rating != 0 {
		t.Fatalf("draft not cleared after save: %+v", d)
	}
	if got := d.Companions.Names(); !reflect.DeepEqual(got, []string{"Solo"}) {
		t.Fatalf("companions not reset after save: %v", got)
	}
}

func TestComposer_FailedSaveKeepsDraft(t *testing.T) {
	store := &mockAppender{
		appendFn: func(context.Context, models.Pin) (string, error) {
			return "", errors.New("network down")
		},
	}
	c := NewComposer()
	c.Open(models.Coordinate{Latitude: 1, Longitude: 2})
	c.SetTitle("Somewhere")
	c.SetDescription("notes")
	c.SetRating(3)
	c.Companions().Add("Alice")

	if _, err := c.Save(context.Background(), store, Author{}); err == nil {
		t.Fatal("expected save to fail")
	}

	d := c.Draft()
	if d.Title != "Somewhere" || d.Description != "notes" || d.Rating != 3 {
		t.Fatalf("draft fields lost after failed save: %+v", d)
	}
	if got := d.Companions.Names(); !reflect.DeepEqual(got, []string{"Alice"}) {
		t.Fatalf("companions lost after failed save: %v", got)
	}

	// The saving flag must be clear so the form can be resubmitted.
	store.appendFn = nil
	if _, err := c.Save(context.Background(), store, Author{}); err != nil {
		t.Fatalf("retry after failure should succeed, got %v", err)
	}
}

func TestComposer_ConcurrentSaveRejected(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	store := &mockAppender{
		appendFn: func(context.Context, models.Pin) (string, error) {
			close(started)
			<-release
			return "pin-1", nil
		},
	}

	c := NewComposer()
	c.Open(models.Coordinate{})
	c.SetTitle("Somewhere")

	done := make(chan error, 1)
	go func() {
		_, err := c.Save(context.Background(), store, Author{})
		done <- err
	}()

	<-started
	if _, err := c.Save(context.Background(), store, Author{}); !errors.Is(err, ErrSaveInProgress) {
		t.Fatalf("expected ErrSaveInProgress for duplicate submission, got %v", err)
	}
	close(release)

	if err := <-done; err != nil {
		t.Fatalf("first save failed: %v", err)
	}
}

func TestBuildPin_ClampsRating(t *testing.T) {
	base := Draft{
		Title:      "x",
		Date:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Companions: NewCompanionSet(),
	}

	for rating, want := range map[int]int{-1: 0, 0: 0, 3: 3, 5: 5, 9: 5} {
		d := base
		d.Rating = rating
		if got := BuildPin(d, Author{}).Rating; got != want {
			t.Fatalf("rating %d: expected %d, got %d", rating, want, got)
		}
	}
}

func TestBuildPin_DefaultsPartnersToSolo(t *testing.T) {
	pin := BuildPin(Draft{Title: "x", Date: time.Now()}, Author{})
	if !reflect.DeepEqual(pin.Partners, []string{"Solo"}) {
		t.Fatalf("expected [Solo] partners, got %v", pin.Partners)
	}
}
