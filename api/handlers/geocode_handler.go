package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ad92co/FKMap/api/dtos"
	"github.com/ad92co/FKMap/api/geo"
)

const (
	msgPermissionDenied = "location permission denied"
	msgAddressNotFound  = "address not found"
	msgSearchFailed     = "search failed, please try again"
)

// GET /geocode?address=...
func GetGeocodeHandler(selector *geo.Selector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address := r.URL.Query().Get("address")
		if address == "" {
			http.Error(w, "missing required query parameter: address", http.StatusBadRequest)
			return
		}

		region, err := selector.SearchAddress(r.Context(), address)
		if err != nil {
			switch {
			case errors.Is(err, geo.ErrPermissionDenied):
				http.Error(w, msgPermissionDenied, http.StatusForbidden)
			case errors.Is(err, geo.ErrAddressNotFound):
				http.Error(w, msgAddressNotFound, http.StatusNotFound)
			default:
				log.Println("geocode search:", err)
				http.Error(w, msgSearchFailed, http.StatusBadGateway)
			}
			return
		}

		resp := dtos.GeocodeResponse{
			Latitude:       region.Latitude,
			Longitude:      region.Longitude,
			LatitudeDelta:  region.LatitudeDelta,
			LongitudeDelta: region.LongitudeDelta,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
