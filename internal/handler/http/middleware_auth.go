package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/keepnotes/go-notes-server/internal/logger"
	"github.com/keepnotes/go-notes-server/internal/store"
	"github.com/keepnotes/go-notes-server/internal/utils"
)

// tokenScheme is the exact Authorization header prefix expected on protected
// routes. The match is case-sensitive and tolerates no extra whitespace.
const tokenScheme = "Token "

// auth is the HTTP middleware that enforces token-based authentication. It
// is the only place in the application that parses the Authorization header
// and the only place that calls ParseToken.
//
// For every request to a protected route it:
//  1. extracts the bearer token from the "Authorization: Token <jwt>" header,
//     rejecting with 401 before any service call when the header is absent or
//     malformed;
//  2. validates the token via [service.AuthService.ParseToken] — 401 on any
//     failure, without disclosing whether the token was expired, forged, or
//     malformed;
//  3. resolves the subject user via [service.UserService.FindUserByID] —
//     a vanished user is answered exactly like a missing token (401, no
//     existence leak), while a storage failure is a 500;
//  4. attaches the resolved [models.User] to the request context, read-only
//     for downstream handlers.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		userID, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		user, err := h.services.UserService.FindUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				// token is valid but the subject no longer exists;
				// indistinguishable from a missing token on the wire
				log.Error().Str("user_id", userID.String()).Msg("token subject does not exist")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			log.Err(err).Msg("error occurred during resolving token subject")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header must follow the exact format:
//
//	Authorization: Token <jwt>
//
// The scheme keyword is matched case-sensitively and no leading or trailing
// whitespace is tolerated beyond the single separating space of the prefix.
//
// It returns the following sentinel errors:
//   - [ErrEmptyAuthorizationHeader] — if the header is absent entirely.
//   - [ErrInvalidAuthorizationHeader] — if the header does not start with
//     the exact "Token " prefix.
//   - [ErrEmptyToken] — if the prefix is present but nothing follows it.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	tokenString, ok := strings.CutPrefix(authHeader, tokenScheme)
	if !ok {
		return "", ErrInvalidAuthorizationHeader
	}
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
