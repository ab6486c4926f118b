package utils

import (
	"strings"

	"github.com/google/uuid"
)

var newUUIDv7 = uuid.NewV7

// GenerateUUIDv7 generates a new UUID v7. Record ids sort by creation time.
func GenerateUUIDv7() uuid.UUID {
	id, err := newUUIDv7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// ParseID parses a path id, tolerating surrounding whitespace and a trailing slash.
func ParseID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSuffix(strings.TrimSpace(raw), "/"))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
