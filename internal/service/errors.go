package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUserAlreadyExists is returned by Register when the email or username
	// is already taken. The pre-insert existence checks and the database
	// unique constraint both map to this value.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned by Login when the password does not
	// match the stored hash. Handlers must collapse it together with the
	// user-not-found case so that the wire never reveals which one occurred.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrHashingFailed is returned when the bcrypt primitive itself errors
	// (e.g. pathological input length).
	ErrHashingFailed = errors.New("password hashing failed")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises every token validation failure
	// (bad signature, malformed structure, expiry) into one value so that
	// callers cannot distinguish them.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
