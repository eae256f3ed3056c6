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

// userService is the concrete implementation of UserService: a directory over
// the user repository. It owns id assignment for new accounts and otherwise
// delegates straight through, keeping persistence behind one interface that
// both the auth service and the HTTP layer depend on.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService over the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// CreateUser assigns a fresh id and persists a new user record. The
// passwordHash argument must already be a bcrypt hash; this layer never sees
// plaintext passwords.
func (s *userService) CreateUser(ctx context.Context, username, email, passwordHash string) (models.User, error) {
	user := models.User{
		ID:           utils.NewUUID(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("creating user: %w", err)
	}

	return created, nil
}

func (s *userService) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, id)
}

func (s *userService) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.userRepository.FindUserByEmail(ctx, email)
}

func (s *userService) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return s.userRepository.FindUserByUsername(ctx, username)
}

// UpdateUser applies a partial profile update; nil fields of update keep
// their stored values.
func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, update models.UserUpdate) (models.User, error) {
	return s.userRepository.UpdateUser(ctx, id, update)
}
