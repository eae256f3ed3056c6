package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/keepnotes/go-notes-server/internal/logger"
	"github.com/keepnotes/go-notes-server/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// Every statement carries the owning user's id in its WHERE clause, so
// ownership filtering is enforced at the storage layer rather than in the
// handlers.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote persists a new note and returns the fully populated record with
// server-assigned timestamps.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNote, note.ID, note.UserID, note.Title, note.Content)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: row is nil")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	created, err := scanNote(row)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindNoteByID retrieves a single note owned by userID.
// Returns [ErrNoteNotFound] when the note is absent or owned by someone else.
func (r *noteRepository) FindNoteByID(ctx context.Context, noteID, userID uuid.UUID) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findNoteByID, noteID, userID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.FindNoteByID").Msg("error: row is nil")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.FindNoteByID").Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// FindNotesByUser retrieves all notes owned by userID ordered by creation
// time. An owner without notes yields an empty slice, not an error.
func (r *noteRepository) FindNotesByUser(ctx context.Context, userID uuid.UUID) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findNotesByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.FindNotesByUser").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*noteRepository.FindNotesByUser").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.FindNotesByUser").Msg("error: iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// UpdateNote applies a partial note update and returns the updated record.
// Nil fields of update keep their stored values; an empty update degenerates
// to a plain lookup. Returns [ErrNoteNotFound] when the note is absent or
// owned by someone else.
func (r *noteRepository) UpdateNote(ctx context.Context, noteID, userID uuid.UUID, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return r.FindNoteByID(ctx, noteID, userID)
	}

	query, args, err := buildUpdateNoteQuery(noteID, userID, update)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: building update query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: row is nil")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteNote removes a note owned by userID and returns the deleted record.
// Returns [ErrNoteNotFound] when the note is absent or owned by someone else.
func (r *noteRepository) DeleteNote(ctx context.Context, noteID, userID uuid.UUID) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, deleteNote, noteID, userID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error: row is nil")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	deleted, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return deleted, nil
}

// scanNote reads the full notes-table column set from a single row.
func scanNote(row *sql.Row) (models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	return note, err
}
