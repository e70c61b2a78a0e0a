package journal

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/ad92co/FKMap/api/models"
)

var (
	ErrEmptyTitle     = errors.New("pin title must not be empty")
	ErrSaveInProgress = errors.New("a save is already in progress")
)

// PinAppender is the slice of the pin store the composer needs.
type PinAppender interface {
	Append(ctx context.Context, pin models.Pin) (string, error)
}

// Author identifies the user a saved pin is attributed to. The zero value
// means unattributed (the local store variant).
type Author struct {
	ID    string
	Label string
}

// Draft holds the fields of the pin being composed.
type Draft struct {
	Coordinate  models.Coordinate
	Title       string
	Description string
	Rating      int
	Date        time.Time
	Companions  *CompanionSet
}

// Composer collects one pin's attributes and turns them into a saved Pin.
// Open seeds a fresh draft from a confirmed map coordinate; Save validates,
// persists, and resets. A failed save leaves the draft untouched so the
// caller can retry.
type Composer struct {
	mu     sync.Mutex
	draft  Draft
	saving bool
}

func NewComposer() *Composer {
	c := &Composer{}
	c.reset(models.Coordinate{})
	return c
}

// Open resets the draft to defaults for the given coordinate.
func (c *Composer) Open(coord models.Coordinate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset(coord)
}

func (c *Composer) reset(coord models.Coordinate) {
	c.draft = Draft{
		Coordinate: coord,
		Date:       time.Now(),
		Companions: NewCompanionSet(),
	}
}

// Draft returns the current draft fields.
func (c *Composer) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := c.draft
	return d
}

func (c *Composer) SetTitle(t string)       { c.mu.Lock(); c.draft.Title = t; c.mu.Unlock() }
func (c *Composer) SetDescription(d string) { c.mu.Lock(); c.draft.Description = d; c.mu.Unlock() }
func (c *Composer) SetRating(r int)         { c.mu.Lock(); c.draft.Rating = clampRating(r); c.mu.Unlock() }
func (c *Composer) SetDate(d time.Time)     { c.mu.Lock(); c.draft.Date = d; c.mu.Unlock() }

func (c *Composer) Companions() *CompanionSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Companions
}

// Save validates the draft, builds the Pin record and appends it to the
// store. On success the draft is cleared back to defaults. On failure the
// draft keeps every entered value so the form can be resubmitted.
func (c *Composer) Save(ctx context.Context, store PinAppender, author Author) (models.Pin, error) {
	c.mu.Lock()
	if strings.TrimSpace(c.draft.Title) == "" {
		c.mu.Unlock()
		return models.Pin{}, ErrEmptyTitle
	}
	if c.saving {
		c.mu.Unlock()
		return models.Pin{}, ErrSaveInProgress
	}
	c.saving = true
	pin := BuildPin(c.draft, author)
	c.mu.Unlock()

	id, err := store.Append(ctx, pin)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.saving = false
	if err != nil {
		return models.Pin{}, err
	}
	pin.ID = id
	c.reset(models.Coordinate{})
	return pin, nil
}

// BuildPin turns a draft into the Pin record that gets persisted. The two
// date forms are frozen here: DateISO is the grouping key, DateReadable the
// display string shown in history rows and detail views.
func BuildPin(d Draft, author Author) models.Pin {
	companions := d.Companions
	if companions == nil {
		companions = NewCompanionSet()
	}
	return models.Pin{
		Coordinate:   d.Coordinate,
		Title:        strings.TrimSpace(d.Title),
		Description:  d.Description,
		Rating:       clampRating(d.Rating),
		DateISO:      d.Date.Format("2006-01-02"),
		DateReadable: d.Date.Format("02/01/2006"),
		Partners:     companions.Names(),
		AuthorID:     author.ID,
		AuthorLabel:  author.Label,
		CreatedAt:    time.Now().UTC(),
	}
}

func clampRating(r int) int {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}
