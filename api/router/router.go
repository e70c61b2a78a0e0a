package router

import (
	"encoding/json"
	"net/http"

	"github.com/ad92co/FKMap/api/auth"
	"github.com/ad92co/FKMap/api/geo"
	"github.com/ad92co/FKMap/api/handlers"
	"github.com/ad92co/FKMap/api/repositories"
	"github.com/ad92co/FKMap/api/session"

	"github.com/go-chi/chi/v5"
)

func CreateRouter(userRepo repositories.UserRepository, pinStore repositories.PinStore, selector *geo.Selector, sessions *session.Manager) chi.Router {
	r := chi.NewRouter()

	// Simple health/test endpoint
	r.Get("/hello", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Hello, world!"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handlers.PostLoginHandler(userRepo, sessions))
		r.Post("/register", handlers.PostRegisterHandler(userRepo))
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/auth/logout", handlers.PostLogoutHandler(sessions))
		r.Get("/me", handlers.GetMeHandler(userRepo))
		r.Route("/pins", func(r chi.Router) {
			r.Post("/", handlers.PostPinsHandler(pinStore, userRepo))
			r.Get("/", handlers.GetPinsHandler(pinStore))
			r.Get("/{pinID}", handlers.GetPinHandler(pinStore))
		})
		r.Get("/history", handlers.GetHistoryHandler(pinStore))
		r.Route("/calendar", func(r chi.Router) {
			r.Get("/", handlers.GetCalendarHandler(pinStore))
			r.Get("/{date}", handlers.GetDayHandler(pinStore))
		})
		r.Get("/geocode", handlers.GetGeocodeHandler(selector))
	})

	return r
}
