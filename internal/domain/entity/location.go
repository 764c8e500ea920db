package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location represents a physical place where assets are kept.
type Location struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// NewLocation creates a new Location entity.
func NewLocation(name, description string) *Location {
	now := time.Now().UTC()

	return &Location{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
