package utils

import "github.com/google/uuid"

// NewUUID returns a fresh identifier for a new entity. Version 7 UUIDs are
// preferred for their creation-time ordering; on the (practically impossible)
// failure of the system entropy source a random v4 is used instead.
func NewUUID() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
