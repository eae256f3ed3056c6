package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/keepnotes/go-notes-server/models"
)

// UserService is the user directory: a thin pass-through over the user
// repository exposing lookup, creation, and partial updates by business key.
// It is the substitution point for an in-memory stand-in in tests, so the
// auth service can be exercised without a real database.
type UserService interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (models.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, update models.UserUpdate) (models.User, error)
}

// AuthService owns credential verification and the token lifecycle. It is
// the only component allowed to touch plaintext passwords and the only
// component allowed to sign or verify tokens.
type AuthService interface {
	// Register creates a new account and issues its first token.
	Register(ctx context.Context, username, email, password string) (models.User, models.Token, error)

	// Login verifies credentials by email and issues a fresh token.
	Login(ctx context.Context, email, password string) (models.User, models.Token, error)

	// RefreshIdentity issues a new token for an already-authenticated user
	// without re-checking credentials. Callers must only pass users resolved
	// by the auth middleware.
	RefreshIdentity(ctx context.Context, user models.User) (models.User, models.Token, error)

	// CreateToken issues a signed token whose subject is userID.
	CreateToken(ctx context.Context, userID uuid.UUID) (models.Token, error)

	// ParseToken verifies signature and expiry in one step and returns the
	// subject user id.
	ParseToken(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// NoteService exposes note CRUD scoped to the owning user.
type NoteService interface {
	CreateNote(ctx context.Context, userID uuid.UUID, title, content string) (models.Note, error)
	FindNoteByID(ctx context.Context, noteID, userID uuid.UUID) (models.Note, error)
	FindNotesByUser(ctx context.Context, userID uuid.UUID) ([]models.Note, error)
	UpdateNote(ctx context.Context, noteID, userID uuid.UUID, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, noteID, userID uuid.UUID) (models.Note, error)
}
