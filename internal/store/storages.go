package store

import "github.com/keepnotes/go-notes-server/internal/logger"

// Storages bundles all repositories behind a single handle for injection
// into the service layer.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
}

// NewStorages constructs all repositories over the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		NoteRepository: NewNoteRepository(db, logger),
	}
}
