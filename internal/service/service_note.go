package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/keepnotes/go-notes-server/internal/logger"
	"github.com/keepnotes/go-notes-server/internal/store"
	"github.com/keepnotes/go-notes-server/internal/utils"
	"github.com/keepnotes/go-notes-server/models"
)

// noteService is the concrete implementation of NoteService. Ownership
// filtering happens in the repository; this layer only assigns ids and
// validates the minimal shape of the input.
type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService over the given repository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// CreateNote persists a new note owned by userID.
func (s *noteService) CreateNote(ctx context.Context, userID uuid.UUID, title, content string) (models.Note, error) {
	if title == "" {
		return models.Note{}, ErrInvalidDataProvided
	}

	note := models.Note{
		ID:      utils.NewUUID(),
		UserID:  userID,
		Title:   title,
		Content: content,
	}

	created, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("creating note: %w", err)
	}

	return created, nil
}

func (s *noteService) FindNoteByID(ctx context.Context, noteID, userID uuid.UUID) (models.Note, error) {
	return s.noteRepository.FindNoteByID(ctx, noteID, userID)
}

func (s *noteService) FindNotesByUser(ctx context.Context, userID uuid.UUID) ([]models.Note, error) {
	return s.noteRepository.FindNotesByUser(ctx, userID)
}

func (s *noteService) UpdateNote(ctx context.Context, noteID, userID uuid.UUID, update models.NoteUpdate) (models.Note, error) {
	return s.noteRepository.UpdateNote(ctx, noteID, userID, update)
}

func (s *noteService) DeleteNote(ctx context.Context, noteID, userID uuid.UUID) (models.Note, error) {
	return s.noteRepository.DeleteNote(ctx, noteID, userID)
}
