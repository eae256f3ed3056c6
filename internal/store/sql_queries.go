package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/keepnotes/go-notes-server/models"
)

const (
	createUser = `INSERT INTO users (id, username, email, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id, username, email, password_hash, bio, image, created_at, updated_at;`

	findUserByID = `SELECT id, username, email, password_hash, bio, image, created_at, updated_at
    FROM users
    WHERE id = $1;`

	findUserByEmail = `SELECT id, username, email, password_hash, bio, image, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByUsername = `SELECT id, username, email, password_hash, bio, image, created_at, updated_at
    FROM users
    WHERE username = $1;`

	createNote = `INSERT INTO notes (id, user_id, title, content)
    VALUES ($1, $2, $3, $4)
    RETURNING id, user_id, title, content, created_at, updated_at;`

	findNoteByID = `SELECT id, user_id, title, content, created_at, updated_at
    FROM notes
    WHERE id = $1 AND user_id = $2;`

	findNotesByUser = `SELECT id, user_id, title, content, created_at, updated_at
    FROM notes
    WHERE user_id = $1
    ORDER BY created_at;`

	deleteNote = `DELETE FROM notes
    WHERE id = $1 AND user_id = $2
    RETURNING id, user_id, title, content, created_at, updated_at;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// ($1-style) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateUserQuery dynamically builds the partial profile UPDATE: only
// non-nil fields of update become SET clauses, updated_at is always bumped,
// and the full row is returned so the caller receives the canonical database
// representation.
//
// The caller must not invoke this with an empty update; that case is handled
// by a plain SELECT one level up.
func buildUpdateUserQuery(id uuid.UUID, update models.UserUpdate) (string, []any, error) {
	builder := psql.Update("users").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Bio != nil {
		builder = builder.Set("bio", *update.Bio)
	}
	if update.Image != nil {
		builder = builder.Set("image", *update.Image)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, username, email, password_hash, bio, image, created_at, updated_at").
		ToSql()
}

// buildUpdateNoteQuery dynamically builds the partial note UPDATE. The WHERE
// clause always carries both the note id and the owning user id, so an update
// against someone else's note matches zero rows.
func buildUpdateNoteQuery(noteID, userID uuid.UUID, update models.NoteUpdate) (string, []any, error) {
	builder := psql.Update("notes").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}

	return builder.
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		Suffix("RETURNING id, user_id, title, content, created_at, updated_at").
		ToSql()
}
