package entity

import (
	"time"

	"github.com/google/uuid"
)

// AssetModel represents a manufacturer model assets can be associated with.
type AssetModel struct {
	ID           uuid.UUID
	Name         string
	Manufacturer string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// NewAssetModel creates a new AssetModel entity.
func NewAssetModel(name, manufacturer string) *AssetModel {
	now := time.Now().UTC()

	return &AssetModel{
		ID:           uuid.New(),
		Name:         name,
		Manufacturer: manufacturer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
