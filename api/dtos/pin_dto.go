package dtos

import "time"

type CreatePinRequest struct {
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Rating      int      `json:"rating"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Partners    []string `json:"partners"`
}

type CreatePinResponse struct {
	PinID string `json:"pin_id"`
}

type Pin struct {
	ID           string   `json:"id"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Rating       int      `json:"rating"`
	DateISO      string   `json:"date_iso"`
	DateReadable string   `json:"date_readable"`
	Partners     []string `json:"partners"`
	AuthorLabel  string   `json:"author_label,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type GetPinListResponse struct {
	Pins []Pin `json:"pins"`
}

// HistoryRow is one entry of the read-only history list.
type HistoryRow struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	DateReadable string `json:"date_readable"`
	Rating       int    `json:"rating"`
	AuthorLabel  string `json:"author_label,omitempty"`
}

type GetHistoryResponse struct {
	Entries []HistoryRow `json:"entries"`
}
