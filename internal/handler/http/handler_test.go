package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/keepnotes/go-notes-server/internal/logger"
	"github.com/keepnotes/go-notes-server/internal/service"
	"github.com/keepnotes/go-notes-server/internal/store"
	"github.com/keepnotes/go-notes-server/models"
)

// Function-field stubs for the service layer. A nil field falls back to a
// deny-by-default behaviour so tests only spell out what they care about.

type mockAuthService struct {
	registerFn        func(ctx context.Context, username, email, password string) (models.User, models.Token, error)
	loginFn           func(ctx context.Context, email, password string) (models.User, models.Token, error)
	refreshIdentityFn func(ctx context.Context, user models.User) (models.User, models.Token, error)
	createTokenFn     func(ctx context.Context, userID uuid.UUID) (models.Token, error)
	parseTokenFn      func(ctx context.Context, tokenString string) (uuid.UUID, error)
}

func (m *mockAuthService) Register(ctx context.Context, username, email, password string) (models.User, models.Token, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, username, email, password)
	}
	return models.User{}, models.Token{}, service.ErrInvalidDataProvided
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return models.User{}, models.Token{}, service.ErrInvalidCredentials
}

func (m *mockAuthService) RefreshIdentity(ctx context.Context, user models.User) (models.User, models.Token, error) {
	if m.refreshIdentityFn != nil {
		return m.refreshIdentityFn(ctx, user)
	}
	return user, models.Token{SignedString: "refreshed-token"}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, userID uuid.UUID) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, userID)
	}
	return models.Token{SignedString: "created-token", UserID: userID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (uuid.UUID, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return uuid.Nil, service.ErrTokenIsExpiredOrInvalid
}

type mockUserService struct {
	createFn         func(ctx context.Context, username, email, passwordHash string) (models.User, error)
	findByIDFn       func(ctx context.Context, id uuid.UUID) (models.User, error)
	findByEmailFn    func(ctx context.Context, email string) (models.User, error)
	findByUsernameFn func(ctx context.Context, username string) (models.User, error)
	updateFn         func(ctx context.Context, id uuid.UUID, update models.UserUpdate) (models.User, error)
}

func (m *mockUserService) CreateUser(ctx context.Context, username, email, passwordHash string) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, username, email, passwordHash)
	}
	return models.User{}, store.ErrUserAlreadyExists
}

func (m *mockUserService) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserService) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserService) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserService) UpdateUser(ctx context.Context, id uuid.UUID, update models.UserUpdate) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return models.User{}, store.ErrUserNotFound
}

type mockNoteService struct {
	createFn     func(ctx context.Context, userID uuid.UUID, title, content string) (models.Note, error)
	findByIDFn   func(ctx context.Context, noteID, userID uuid.UUID) (models.Note, error)
	findByUserFn func(ctx context.Context, userID uuid.UUID) ([]models.Note, error)
	updateFn     func(ctx context.Context, noteID, userID uuid.UUID, update models.NoteUpdate) (models.Note, error)
	deleteFn     func(ctx context.Context, noteID, userID uuid.UUID) (models.Note, error)
}

func (m *mockNoteService) CreateNote(ctx context.Context, userID uuid.UUID, title, content string) (models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, title, content)
	}
	return models.Note{}, service.ErrInvalidDataProvided
}

func (m *mockNoteService) FindNoteByID(ctx context.Context, noteID, userID uuid.UUID) (models.Note, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, noteID, userID)
	}
	return models.Note{}, store.ErrNoteNotFound
}

func (m *mockNoteService) FindNotesByUser(ctx context.Context, userID uuid.UUID) ([]models.Note, error) {
	if m.findByUserFn != nil {
		return m.findByUserFn(ctx, userID)
	}
	return []models.Note{}, nil
}

func (m *mockNoteService) UpdateNote(ctx context.Context, noteID, userID uuid.UUID, update models.NoteUpdate) (models.Note, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, noteID, userID, update)
	}
	return models.Note{}, store.ErrNoteNotFound
}

func (m *mockNoteService) DeleteNote(ctx context.Context, noteID, userID uuid.UUID) (models.Note, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, noteID, userID)
	}
	return models.Note{}, store.ErrNoteNotFound
}

func newTestHandler(services *service.Services) *Handler {
	if services.UserService == nil {
		services.UserService = &mockUserService{}
	}
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.NoteService == nil {
		services.NoteService = &mockNoteService{}
	}
	return &Handler{
		services: services,
		logger:   logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context, standing in for
// the trace-id middleware.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
