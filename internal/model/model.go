// Package model defines the domain models for Daybook.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the interface all persisted records implement.
type Entity interface {
	// EntityID returns the unique identifier of the record.
	EntityID() string
	// EntityTime returns the creation timestamp of the record.
	EntityTime() time.Time
}

// NewID generates a new entity identifier using UUID v7 for time-sortable ids.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// ShortID returns the first 8 characters of an entity id for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
