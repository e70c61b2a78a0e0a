package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/mail"

	"golang.org/x/crypto/bcrypt"

	"github.com/ad92co/FKMap/api/auth"
	"github.com/ad92co/FKMap/api/dtos"
	"github.com/ad92co/FKMap/api/repositories"
	"github.com/ad92co/FKMap/api/session"

	"github.com/google/uuid"
)

const minPasswordLen = 6

// The client shows a small fixed set of messages for auth failures; keep
// the server's wording aligned with them.
const (
	msgInvalidEmail      = "the email address is invalid"
	msgWeakPassword      = "password is too short (6 characters minimum)"
	msgEmailAlreadyInUse = "this email is already in use"
	msgBadCredentials    = "incorrect email or password"
)

// POST /auth/register
func PostRegisterHandler(userRepo repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if _, err := mail.ParseAddress(req.Email); err != nil {
			http.Error(w, msgInvalidEmail, http.StatusBadRequest)
			return
		}
		if len(req.Password) < minPasswordLen {
			http.Error(w, msgWeakPassword, http.StatusBadRequest)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			http.Error(w, "unable to hash", http.StatusInternalServerError)
			return
		}

		id, err := userRepo.CreateUser(req.Email, req.DisplayName, string(hash))
		if err != nil {
			if errors.Is(err, repositories.ErrEmailTaken) {
				http.Error(w, msgEmailAlreadyInUse, http.StatusConflict)
				return
			}
			log.Println(err)
			http.Error(w, "unable to create user", http.StatusInternalServerError)
			return
		}

		resp := dtos.RegisterResponse{
			UserID: id,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(resp)
	}
}

// POST /auth/login
func PostLoginHandler(userRepo repositories.UserRepository, sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		id, hash, err := userRepo.GetPasswordHashByEmail(req.Email)
		if err != nil {
			if err == sql.ErrNoRows {
				http.Error(w, msgBadCredentials, http.StatusUnauthorized)
			} else {
				log.Println(err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}

		if err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
			http.Error(w, msgBadCredentials, http.StatusUnauthorized)
			return
		}

		jwt, err := auth.GenerateJWT(id)
		if err != nil {
			log.Println(err)
			http.Error(w, "JWT failure", http.StatusInternalServerError)
			return
		}

		// Login begins the journal session; the remote pin store's
		// subscription follows it.
		if user, err := userRepo.GetUserByUUID(id); err == nil && user != nil {
			sessions.Begin(user)
		}

		resp := dtos.LoginResponse{
			Token: jwt,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// POST /auth/logout
func PostLogoutHandler(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.End()
		w.WriteHeader(http.StatusNoContent)
	}
}

// requestUserID reads the authenticated user id the middleware stored.
func requestUserID(r *http.Request) uuid.UUID {
	return r.Context().Value("userID").(uuid.UUID)
}
