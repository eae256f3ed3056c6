package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/keepnotes/go-notes-server/internal/logger"
	"github.com/keepnotes/go-notes-server/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup, and partial profile updates
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (Bio, Image defaults, CreatedAt,
// UpdatedAt).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account. Uniqueness of username and
// email is enforced by the table's unique constraints; two registrations
// racing on the same value resolve to exactly one success.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.ID, user.Username, user.Email, user.PasswordHash)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created, err := scanUser(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindUserByID retrieves a user record by its immutable identifier.
//
// Error handling:
//   - Empty result set → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return r.findUser(ctx, findUserByID, id)
}

// FindUserByEmail retrieves a user record by its unique email address.
// Returns [ErrUserNotFound] when no such user exists.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

// FindUserByUsername retrieves a user record by its unique username.
// Returns [ErrUserNotFound] when no such user exists.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, findUserByUsername, username)
}

// UpdateUser applies a partial profile update and returns the updated record.
//
// Nil fields of update are not mentioned in the generated SET clause and keep
// their stored values. An update carrying no fields at all degenerates to a
// plain lookup, leaving even updated_at untouched.
//
// Error handling:
//   - No record with the given id → [ErrUserNotFound].
//   - PostgreSQL unique_violation (23505) on username/email → [ErrUserAlreadyExists].
//   - Query construction failure → wrapped [ErrBuildingSQLQuery].
func (r *userRepository) UpdateUser(ctx context.Context, id uuid.UUID, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return r.FindUserByID(ctx, id)
	}

	query, args, err := buildUpdateUserQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: building update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// findUser runs a single-row user lookup query and normalises the absent-row
// case to [ErrUserNotFound].
func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	foundUser, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// scanUser reads the full users-table column set from a single row.
func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Bio,
		&user.Image,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}
