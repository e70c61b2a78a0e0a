package journal

import (
	"github.com/ad92co/FKMap/api/models"
)

// maxDotsPerDay bounds calendar-cell rendering. Lookups by day are not
// affected; every pin for a date stays reachable through PinsOn.
const maxDotsPerDay = 3

// Dot is one calendar marker for a day cell.
type Dot struct {
	Key   string `json:"key"`
	Color string `json:"color"`
}

const dotColor = "tomato"

// MarkedDates derives the dateISO -> dots index the calendar renders,
// capped at three dots per day.
func MarkedDates(pins []models.Pin) map[string][]Dot {
	marks := make(map[string][]Dot)
	for _, pin := range pins {
		if pin.DateISO == "" {
			continue
		}
		dots := marks[pin.DateISO]
		if len(dots) < maxDotsPerDay {
			marks[pin.DateISO] = append(dots, Dot{Key: pin.ID, Color: dotColor})
		}
	}
	return marks
}

// PinsOn returns all pins whose DateISO equals date, in store order.
func PinsOn(pins []models.Pin, date string) []models.Pin {
	var found []models.Pin
	for _, pin := range pins {
		if pin.DateISO == date {
			found = append(found, pin)
		}
	}
	return found
}

// DayOutcome says what tapping a calendar day should open: nothing, a
// single pin's detail view, or a disambiguation list.
type DayOutcome int

const (
	DayNone DayOutcome = iota
	DaySingle
	DayMultiple
)

// SelectDay resolves a day tap against the current pin collection.
func SelectDay(pins []models.Pin, date string) (DayOutcome, []models.Pin) {
	found := PinsOn(pins, date)
	switch len(found) {
	case 0:
		return DayNone, nil
	case 1:
		return DaySingle, found
	default:
		return DayMultiple, found
	}
}
