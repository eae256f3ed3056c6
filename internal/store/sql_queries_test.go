package store

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/keepnotes/go-notes-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildUpdateUserQuery_SQLContainsParts(t *testing.T) {
	id := uuid.New()
	username := "john"
	bio := "gopher"

	query, args, err := buildUpdateUserQuery(id, models.UserUpdate{Username: &username, Bio: &bio})
	require.NoError(t, err)

	// args checks: two SET values plus the id in WHERE
	require.Len(t, args, 3)
	require.Contains(t, args, username)
	require.Contains(t, args, bio)
	require.Contains(t, args, id)

	q := strings.ToLower(query)

	require.Contains(t, q, "update users")
	require.Contains(t, q, "set")
	require.Contains(t, q, "updated_at")
	require.Contains(t, q, "username")
	require.Contains(t, q, "bio")
	require.Contains(t, q, "where")
	require.Contains(t, q, "returning")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	// untouched columns must not appear in the SET section
	setSection := q[:strings.Index(q, "where")]
	assert.NotContains(t, setSection, "email")
	assert.NotContains(t, setSection, "image")
}

func Test_buildUpdateUserQuery_ReturnsFullRow(t *testing.T) {
	email := "john@example.com"

	query, _, err := buildUpdateUserQuery(uuid.New(), models.UserUpdate{Email: &email})
	require.NoError(t, err)

	q := strings.ToLower(query)

	cols := []string{
		"id",
		"username",
		"email",
		"password_hash",
		"bio",
		"image",
		"created_at",
		"updated_at",
	}
	returningSection := q[strings.Index(q, "returning"):]
	for _, c := range cols {
		require.Contains(t, returningSection, c)
	}
}

func Test_buildUpdateNoteQuery(t *testing.T) {
	tests := []struct {
		name       string
		update     models.NoteUpdate
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "title only",
			update: models.NoteUpdate{Title: strPtr("chores")},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				assert.Contains(t, q, "title")
				setSection := q[:strings.Index(q, "where")]
				assert.NotContains(t, setSection, "content")
				assert.Len(t, args, 3)
			},
		},
		{
			name:   "content only",
			update: models.NoteUpdate{Content: strPtr("milk, eggs")},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				assert.Contains(t, q, "content")
				setSection := q[:strings.Index(q, "where")]
				assert.NotContains(t, setSection, "title")
				assert.Len(t, args, 3)
			},
		},
		{
			name:   "both fields",
			update: models.NoteUpdate{Title: strPtr("chores"), Content: strPtr("milk, eggs")},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				assert.Contains(t, q, "title")
				assert.Contains(t, q, "content")
				assert.Len(t, args, 4)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noteID := uuid.New()
			userID := uuid.New()

			query, args, err := buildUpdateNoteQuery(noteID, userID, tt.update)
			require.NoError(t, err)

			q := strings.ToLower(query)
			require.Contains(t, q, "update notes")
			require.Contains(t, q, "updated_at")
			require.Contains(t, q, "returning")

			// ownership must always be part of the WHERE clause
			whereSection := q[strings.Index(q, "where"):]
			require.Contains(t, whereSection, "user_id")
			require.Contains(t, args, noteID)
			require.Contains(t, args, userID)

			tt.checkQuery(t, query, args)
		})
	}
}

func strPtr(s string) *string {
	return &s
}
