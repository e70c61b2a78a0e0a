package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ad92co/FKMap/api/dtos"
	"github.com/ad92co/FKMap/api/journal"
	"github.com/ad92co/FKMap/api/repositories"
)

// GET /calendar
func GetCalendarHandler(pinStore repositories.PinStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := dtos.GetCalendarResponse{
			MarkedDates: journal.MarkedDates(pinStore.Pins()),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Println("encode calendar response:", err)
		}
	}
}

// GET /calendar/{date}
func GetDayHandler(pinStore repositories.PinStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := chi.URLParam(r, "date")
		if _, err := time.Parse("2006-01-02", date); err != nil {
			http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		outcome, found := journal.SelectDay(pinStore.Pins(), date)

		resp := dtos.GetDayResponse{Pins: make([]dtos.Pin, 0, len(found))}
		switch outcome {
		case journal.DayNone:
			resp.Outcome = "none"
		case journal.DaySingle:
			resp.Outcome = "single"
		case journal.DayMultiple:
			resp.Outcome = "multiple"
		}
		for _, pin := range found {
			resp.Pins = append(resp.Pins, toPinDTO(pin))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Println("encode day response:", err)
		}
	}
}
