package service

import (
	"github.com/keepnotes/go-notes-server/internal/config"
	"github.com/keepnotes/go-notes-server/internal/logger"
	"github.com/keepnotes/go-notes-server/internal/store"
)

// Services bundles all business services behind a single handle for
// injection into the transport layer. The auth service is layered on top of
// the user directory, never directly on the repository.
type Services struct {
	AuthService AuthService
	UserService UserService
	NoteService NoteService
}

// NewServices wires the service layer over the given storages.
func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	userService := NewUserService(storages.UserRepository, logger)

	return &Services{
		AuthService: NewAuthService(userService, cfg, logger),
		UserService: userService,
		NoteService: NewNoteService(storages.NoteRepository, logger),
	}
}
