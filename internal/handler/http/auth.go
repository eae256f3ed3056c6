package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/keepnotes/go-notes-server/internal/logger"
	"github.com/keepnotes/go-notes-server/internal/service"
	"github.com/keepnotes/go-notes-server/internal/store"
	"github.com/keepnotes/go-notes-server/internal/utils"
	"github.com/keepnotes/go-notes-server/models"
)

// register handles POST /api/auth/register. On success the response is a
// UserResponse envelope carrying the new account and its first token.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, token, err := h.services.AuthService.Register(ctx, request.User.Username, request.User.Email, request.User.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrUserAlreadyExists):
			log.Err(err).Str("email", request.User.Email).Msg("user already exists")
			http.Error(w, "user already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("user_id", registeredUser.ID.String()).Msg("user successfully registered")

	utils.WriteJSON(w, models.UserResponse{User: models.NewUserData(registeredUser, token)}, http.StatusOK)
}

// login handles POST /api/auth/login. A missing account and a wrong password
// produce the same 401 answer so the endpoint cannot be used to probe which
// emails are registered.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, token, err := h.services.AuthService.Login(ctx, request.User.Email, request.User.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound) || errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("no user was found/wrong password")
			http.Error(w, "invalid email/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("user_id", foundUser.ID.String()).Msg("user successfully logged in")

	utils.WriteJSON(w, models.UserResponse{User: models.NewUserData(foundUser, token)}, http.StatusOK)
}
