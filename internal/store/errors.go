package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same username or email already exists in
	// the database. The distinction between the two columns is deliberately
	// not surfaced here; the database unique constraint is the single
	// authority for uniqueness under concurrent registrations.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a query expected to match exactly one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrNoteNotFound is returned when a query, update, or delete targets a
	// note (identified by id and user_id) that does not exist or is owned by
	// a different user. Ownership misses and true absence are indistinguishable
	// on purpose.
	ErrNoteNotFound = errors.New("note not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an update with no assignable columns).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for transport or driver reasons.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
