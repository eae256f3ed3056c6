package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/keepnotes/go-notes-server/internal/config"
	"github.com/keepnotes/go-notes-server/internal/logger"
	"github.com/keepnotes/go-notes-server/internal/store"
	"github.com/keepnotes/go-notes-server/internal/utils"
	"github.com/keepnotes/go-notes-server/models"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed work factor for password hashing. Two above the
// library default, costing tens of milliseconds per call on current hardware.
const bcryptCost = bcrypt.DefaultCost + 2

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using the UserService directory for persistence and bcrypt for
// password hashing.
type authService struct {
	// userService is the directory used to create and look up users. The
	// auth service never issues raw persistence queries itself.
	userService UserService

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Read-only after construction, never logged.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserService
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userService UserService, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userService:   userService,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Register creates a new user account and issues its first token.
//
// The email is checked for collisions before the username, so a request
// clashing on both always reports the email collision. The checks are only a
// fast path: the database unique constraints remain the authority, and a
// registration losing a race observes [store.ErrUserAlreadyExists] from the
// insert itself.
//
// Returns the persisted user and a signed token, or:
//   - ErrInvalidDataProvided if username, email, or password is empty.
//   - ErrUserAlreadyExists if the email or username is taken.
//   - ErrHashingFailed if the bcrypt primitive errors.
//   - ErrTokenCreationFailed if signing fails.
//   - A wrapped storage error on any persistence failure.
func (a *authService) Register(ctx context.Context, username, email, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if username == "" || email == "" || password == "" {
		log.Error().Str("username", username).Str("email", email).Msg("invalid registration data provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	// email checked first: deterministic tie-break when both collide
	if _, err := a.userService.FindUserByEmail(ctx, email); err == nil {
		return models.User{}, models.Token{}, ErrUserAlreadyExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Msg("email existence check failed")
		return models.User{}, models.Token{}, fmt.Errorf("email existence check failed: %w", err)
	}

	if _, err := a.userService.FindUserByUsername(ctx, username); err == nil {
		return models.User{}, models.Token{}, ErrUserAlreadyExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Msg("username existence check failed")
		return models.User{}, models.Token{}, fmt.Errorf("username existence check failed: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	registeredUser, err := a.userService.CreateUser(ctx, username, email, string(passwordHash))
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			// lost the race against a concurrent registration
			return models.User{}, models.Token{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.CreateToken(ctx, registeredUser.ID)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return registeredUser, token, nil
}

// Login authenticates an existing user by email and password.
//
// The stored bcrypt hash is compared with the supplied password using the
// algorithm's own constant-time verify. Handlers must present the not-found
// and wrong-password outcomes identically so neither condition leaks.
//
// Returns the authenticated user and a fresh token, or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped [store.ErrUserNotFound] if no user has this email.
//   - ErrInvalidCredentials if the password does not match.
//   - ErrTokenCreationFailed if signing fails.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userService.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Error().Str("user_id", foundUser.ID.String()).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, foundUser.ID)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return foundUser, token, nil
}

// RefreshIdentity issues a new token for a user that has already been
// authenticated by the middleware (e.g. the "who am I" call). Credentials
// are not re-checked.
func (a *authService) RefreshIdentity(ctx context.Context, user models.User) (models.User, models.Token, error) {
	token, err := a.CreateToken(ctx, user.ID)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// CreateToken issues a signed JWT whose subject is userID.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped ErrTokenCreationFailed if
// JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, userID uuid.UUID) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string and returns its subject user id.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying signature, expiry,
// and the issuer claim in one step. Any validation failure (expired, wrong
// secret, malformed) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors and cannot leak the
// exact cause.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (uuid.UUID, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return uuid.Nil, ErrTokenIsExpiredOrInvalid
	}

	return token.UserID, nil
}
