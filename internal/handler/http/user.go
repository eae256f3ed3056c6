package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/keepnotes/go-notes-server/internal/logger"
	"github.com/keepnotes/go-notes-server/internal/store"
	"github.com/keepnotes/go-notes-server/internal/utils"
	"github.com/keepnotes/go-notes-server/models"
)

// currentUser handles GET /api/user. The caller has already been resolved by
// the auth middleware; a fresh token is issued alongside the profile so the
// client can roll its credential forward.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, token, err := h.services.AuthService.RefreshIdentity(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: models.NewUserData(user, token)}, http.StatusOK)
}

// updateUser handles PUT /api/user. Fields absent from the request body are
// left unchanged; username and email stay subject to the uniqueness
// constraints, so a collision with another account answers 409.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	update := models.UserUpdate{
		Username: request.User.Username,
		Email:    request.User.Email,
		Bio:      request.User.Bio,
		Image:    request.User.Image,
	}

	updatedUser, err := h.services.UserService.UpdateUser(ctx, user.ID, update)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserAlreadyExists):
			log.Err(err).Msg("username or email already taken")
			http.Error(w, "username or email already taken", http.StatusConflict)
			return
		case errors.Is(err, store.ErrUserNotFound):
			// the account vanished between middleware and update
			log.Err(err).Str("user_id", user.ID.String()).Msg("authenticated user no longer exists")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during profile update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	updatedUser, token, err := h.services.AuthService.RefreshIdentity(ctx, updatedUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: models.NewUserData(updatedUser, token)}, http.StatusOK)
}
