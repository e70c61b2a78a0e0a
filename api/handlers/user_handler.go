package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ad92co/FKMap/api/dtos"
	"github.com/ad92co/FKMap/api/repositories"
)

// GET /me
func GetMeHandler(userRepo repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := requestUserID(r)

		user, err := userRepo.GetUserByUUID(userID)
		if err != nil {
			log.Println(err)
			http.Error(w, "Unable to retrieve user data", http.StatusInternalServerError)
			return
		}
		if user == nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		resp := dtos.GetMeResponse{
			ID:        user.ID,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		}

		if user.DisplayName.Valid {
			resp.DisplayName = user.DisplayName.String
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
