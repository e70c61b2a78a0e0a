package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ad92co/FKMap/api/dtos"
	"github.com/ad92co/FKMap/api/journal"
	"github.com/ad92co/FKMap/api/models"
	"github.com/ad92co/FKMap/api/repositories"
)

const msgMissingTitle = "please give this place a name"

// POST /pins
func PostPinsHandler(pinStore repositories.PinStore, userRepo repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := requestUserID(r)

		var req dtos.CreatePinRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		date := time.Now()
		if req.Date != "" {
			parsed, err := time.Parse("2006-01-02", req.Date)
			if err != nil {
				http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			date = parsed
		}

		author := journal.Author{ID: userID.String()}
		if user, err := userRepo.GetUserByUUID(userID); err == nil && user != nil {
			author.Label = user.Label()
		}

		composer := journal.NewComposer()
		composer.Open(models.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude})
		composer.SetTitle(req.Title)
		composer.SetDescription(req.Description)
		composer.SetRating(req.Rating)
		composer.SetDate(date)
		for _, name := range req.Partners {
			composer.Companions().Add(name)
		}

		pin, err := composer.Save(r.Context(), pinStore, author)
		if err != nil {
			if errors.Is(err, journal.ErrEmptyTitle) {
				http.Error(w, msgMissingTitle, http.StatusBadRequest)
				return
			}
			log.Println("save pin:", err)
			http.Error(w, "unable to save online", http.StatusInternalServerError)
			return
		}

		resp := dtos.CreatePinResponse{PinID: pin.ID}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(resp)
	}
}

// GET /pins
func GetPinsHandler(pinStore repositories.PinStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pins := pinStore.Pins()

		resp := dtos.GetPinListResponse{Pins: make([]dtos.Pin, 0, len(pins))}
		for _, pin := range pins {
			resp.Pins = append(resp.Pins, toPinDTO(pin))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Println("encode pins response:", err)
		}
	}
}

// GET /pins/{pinID}
func GetPinHandler(pinStore repositories.PinStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pinID := chi.URLParam(r, "pinID")

		for _, pin := range pinStore.Pins() {
			if pin.ID == pinID {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(toPinDTO(pin))
				return
			}
		}

		http.Error(w, "pin not found", http.StatusNotFound)
	}
}

// GET /history
//
// Read-only listing in the store's own order; each row carries what a
// history card shows.
func GetHistoryHandler(pinStore repositories.PinStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pins := pinStore.Pins()

		resp := dtos.GetHistoryResponse{Entries: make([]dtos.HistoryRow, 0, len(pins))}
		for _, pin := range pins {
			resp.Entries = append(resp.Entries, dtos.HistoryRow{
				ID:           pin.ID,
				Title:        pin.Title,
				DateReadable: pin.DateReadable,
				Rating:       pin.Rating,
				AuthorLabel:  pin.AuthorLabel,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Println("encode history response:", err)
		}
	}
}

func toPinDTO(pin models.Pin) dtos.Pin {
	return dtos.Pin{
		ID:           pin.ID,
		Latitude:     pin.Coordinate.Latitude,
		Longitude:    pin.Coordinate.Longitude,
		Title:        pin.Title,
		Description:  pin.Description,
		Rating:       pin.Rating,
		DateISO:      pin.DateISO,
		DateReadable: pin.DateReadable,
		Partners:     pin.Partners,
		AuthorLabel:  pin.AuthorLabel,
		CreatedAt:    pin.CreatedAt,
	}
}
