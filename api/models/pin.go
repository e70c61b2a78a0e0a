package models

import (
	"time"
)

// SoloPartner is the sentinel companion name meaning "no companions".
// A saved pin's partner list is never empty; it holds this value instead.
const SoloPartner = "Solo"

type Coordinate struct {
	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`
}

// Region is a map viewport: a center plus two deltas controlling zoom.
// It is mutated by map interaction and search recentering, never persisted.
type Region struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitude_delta"`
	LongitudeDelta float64 `json:"longitude_delta"`
}

func (r Region) Center() Coordinate {
	return Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}
}

// Pin is a single saved map memory. Pins are created once through the
// composer and never updated in place.
type Pin struct {
	ID           string     `json:"id" firestore:"-"`
	Coordinate   Coordinate `json:"coordinate" firestore:"coordinate"`
	Title        string     `json:"title" firestore:"title"`
	Description  string     `json:"description" firestore:"description"`
	Rating       int        `json:"rating" firestore:"rating"`
	DateISO      string     `json:"date_iso" firestore:"dateISO"`
	DateReadable string     `json:"date_readable" firestore:"dateReadable"`
	Partners     []string   `json:"partners" firestore:"partners"`
	AuthorID     string     `json:"author_id,omitempty" firestore:"authorId,omitempty"`
	AuthorLabel  string     `json:"author_label,omitempty" firestore:"authorLabel,omitempty"`
	CreatedAt    time.Time  `json:"created_at" firestore:"createdAt"`
}
