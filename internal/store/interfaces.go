package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/keepnotes/go-notes-server/models"
)

// UserRepository is the persistence boundary for user accounts. It performs
// no field-level validation; uniqueness of username and email is enforced by
// the database schema so that concurrent registrations racing on the same
// value resolve to exactly one winner.
//
// Absent records are reported via [ErrUserNotFound], collisions via
// [ErrUserAlreadyExists].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// UpdateUser applies a partial profile update: nil fields of update keep
	// their stored values. An update with no fields at all returns the
	// current record unchanged.
	UpdateUser(ctx context.Context, id uuid.UUID, update models.UserUpdate) (models.User, error)
}

// NoteRepository is the persistence boundary for notes. Every operation is
// scoped to the owning user; a note belonging to someone else behaves exactly
// like a note that does not exist ([ErrNoteNotFound]).
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	FindNoteByID(ctx context.Context, noteID, userID uuid.UUID) (models.Note, error)
	FindNotesByUser(ctx context.Context, userID uuid.UUID) ([]models.Note, error)
	UpdateNote(ctx context.Context, noteID, userID uuid.UUID, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, noteID, userID uuid.UUID) (models.Note, error)
}
