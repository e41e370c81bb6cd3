package utils

import "github.com/google/uuid"

// GetUUID returns a fresh opaque identifier.
func GetUUID() string {
	return uuid.New().String()
}
