package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/keepnotes/go-notes-server/internal/logger"
	"github.com/keepnotes/go-notes-server/internal/utils"
	"github.com/keepnotes/go-notes-server/models"
)

// Content limits enforced before any service call. Requests over the limits
// answer 400 without touching storage.
const (
	maxNoteTitleLen   = 50
	maxNoteContentLen = 500
)

// createNote handles POST /api/notes.
func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := validateNoteLimits(request.Note.Title, request.Note.Content); err != nil {
		log.Err(err).Msg("note limits exceeded")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.CreateNote(ctx, user.ID, request.Note.Title, request.Note.Content)
	if err != nil {
		log.Err(err).Msg("note creation ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	log.Debug().Str("note_id", note.ID.String()).Msg("note created")

	utils.WriteJSON(w, models.NoteResponse{Note: models.NewNoteData(note)}, http.StatusOK)
}

// findNoteByID handles GET /api/notes/{id}. A note owned by somebody else is
// answered 404, the same as a note that does not exist.
func (h *Handler) findNoteByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid note id")
		http.Error(w, "invalid note id", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.FindNoteByID(ctx, noteID, user.ID)
	if err != nil {
		log.Err(err).Str("note_id", noteID.String()).Msg("note search ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.NoteResponse{Note: models.NewNoteData(note)}, http.StatusOK)
}

// findAllNotes handles GET /api/notes/me and returns every note owned by the
// caller, newest first.
func (h *Handler) findAllNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.FindNotesByUser(ctx, user.ID)
	if err != nil {
		log.Err(err).Msg("notes search ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.NewNoteListResponse(notes), http.StatusOK)
}

// updateNote handles PATCH /api/notes/{id}. Fields absent from the request
// body are left unchanged.
func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid note id")
		http.Error(w, "invalid note id", http.StatusBadRequest)
		return
	}

	var request models.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	var title, content string
	if request.Note.Title != nil {
		title = *request.Note.Title
	}
	if request.Note.Content != nil {
		content = *request.Note.Content
	}
	if err := validateNoteLimits(title, content); err != nil {
		log.Err(err).Msg("note limits exceeded")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	update := models.NoteUpdate{
		Title:   request.Note.Title,
		Content: request.Note.Content,
	}

	note, err := h.services.NoteService.UpdateNote(ctx, noteID, user.ID, update)
	if err != nil {
		log.Err(err).Str("note_id", noteID.String()).Msg("note update ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.NoteResponse{Note: models.NewNoteData(note)}, http.StatusOK)
}

// deleteNote handles DELETE /api/notes/{id} and returns the deleted note.
func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid note id")
		http.Error(w, "invalid note id", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.DeleteNote(ctx, noteID, user.ID)
	if err != nil {
		log.Err(err).Str("note_id", noteID.String()).Msg("note deletion ended with error")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	log.Debug().Str("note_id", note.ID.String()).Msg("note deleted")

	utils.WriteJSON(w, models.NoteResponse{Note: models.NewNoteData(note)}, http.StatusOK)
}

// noteIDFromRequest parses the {id} route parameter as a UUID.
func noteIDFromRequest(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// validateNoteLimits enforces the title and content length limits shared by
// note creation and update.
func validateNoteLimits(title, content string) error {
	if len(title) > maxNoteTitleLen {
		return errors.New("title must be at most 50 characters")
	}
	if len(content) > maxNoteContentLen {
		return errors.New("content must be at most 500 characters")
	}
	return nil
}
