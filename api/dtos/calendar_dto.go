package dtos

import "github.com/ad92co/FKMap/api/journal"

type GetCalendarResponse struct {
	MarkedDates map[string][]journal.Dot `json:"marked_dates"`
}

// GetDayResponse resolves a calendar day tap. Outcome is "none", "single"
// or "multiple"; Pins carries the single pin or the disambiguation list.
type GetDayResponse struct {
	Outcome string `json:"outcome"`
	Pins    []Pin  `json:"pins"`
}
