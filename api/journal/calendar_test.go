package journal

import (
	"fmt"
	"testing"

	"github.com/ad92co/FKMap/api/models"
)

func datedPin(id, dateISO string) models.Pin {
	return models.Pin{ID: id, Title: "pin " + id, DateISO: dateISO}
}

func TestMarkedDates_CountsPerDay(t *testing.T) {
	pins := []models.Pin{
		datedPin("a", "2024-05-01"),
		datedPin("b", "2024-05-01"),
		datedPin("c", "2024-05-02"),
	}

	marks := MarkedDates(pins)

	if len(marks["2024-05-01"]) != 2 {
		t.Fatalf("expected 2 dots for May 1, got %d", len(marks["2024-05-01"]))
	}
	if len(marks["2024-05-02"]) != 1 {
		t.Fatalf("expected 1 dot for May 2, got %d", len(marks["2024-05-02"]))
	}
	if marks["2024-05-01"][0].Key != "a" || marks["2024-05-01"][1].Key != "b" {
		t.Fatalf("dots not keyed by pin id: %+v", marks["2024-05-01"])
	}
}

func TestMarkedDates_CapsAtThreeDots(t *testing.T) {
	var pins []models.Pin
	for i := 0; i < 5; i++ {
		pins = append(pins, datedPin(fmt.Sprintf("p%d", i), "2024-05-01"))
	}

	marks := MarkedDates(pins)
	if len(marks["2024-05-01"]) != 3 {
		t.Fatalf("expected dot cap of 3, got %d", len(marks["2024-05-01"]))
	}

	// The cap bounds rendering only; lookups still see every pin.
	if got := PinsOn(pins, "2024-05-01"); len(got) != 5 {
		t.Fatalf("expected all 5 pins on lookup, got %d", len(got))
	}
}

func TestMarkedDates_SkipsUndatedPins(t *testing.T) {
	marks := MarkedDates([]models.Pin{{ID: "a"}})
	if len(marks) != 0 {
		t.Fatalf("expected no marks for undated pin, got %v", marks)
	}
}

func TestSelectDay_Outcomes(t *testing.T) {
	pins := []models.Pin{
		datedPin("a", "2024-05-01"),
		datedPin("b", "2024-05-01"),
		datedPin("c", "2024-05-02"),
	}

	outcome, found := SelectDay(pins, "2024-05-03")
	if outcome != DayNone || found != nil {
		t.Fatalf("expected no-op for empty day, got %v %v", outcome, found)
	}

	outcome, found = SelectDay(pins, "2024-05-02")
	if outcome != DaySingle || len(found) != 1 || found[0].ID != "c" {
		t.Fatalf("expected single pin c for May 2, got %v %v", outcome, found)
	}

	outcome, found = SelectDay(pins, "2024-05-01")
	if outcome != DayMultiple || len(found) != 2 {
		t.Fatalf("expected disambiguation list of 2 for May 1, got %v %v", outcome, found)
	}
}
