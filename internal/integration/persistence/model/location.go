// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/asset-registry/backend/internal/domain/entity"
)

// LocationModel represents the locations table in the database.
type LocationModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for the LocationModel.
func (LocationModel) TableName() string {
	return "locations"
}

// ToEntity converts a LocationModel to a domain Location entity.
func (m *LocationModel) ToEntity() *entity.Location {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Location{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// LocationFromEntity creates a LocationModel from a domain Location entity.
func LocationFromEntity(location *entity.Location) *LocationModel {
	var deletedAt gorm.DeletedAt
	if location.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *location.DeletedAt, Valid: true}
	}

	return &LocationModel{
		ID:          location.ID,
		Name:        location.Name,
		Description: location.Description,
		CreatedAt:   location.CreatedAt,
		UpdatedAt:   location.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// AssetModelModel represents the asset_models table in the database.
type AssetModelModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name         string         `gorm:"type:varchar(255);not null"`
	Manufacturer string         `gorm:"type:varchar(255)"`
	CreatedAt    time.Time      `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"not null"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for the AssetModelModel.
func (AssetModelModel) TableName() string {
	return "asset_models"
}

// ToEntity converts an AssetModelModel to a domain AssetModel entity.
func (m *AssetModelModel) ToEntity() *entity.AssetModel {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.AssetModel{
		ID:           m.ID,
		Name:         m.Name,
		Manufacturer: m.Manufacturer,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// AssetModelFromEntity creates an AssetModelModel from a domain AssetModel entity.
func AssetModelFromEntity(am *entity.AssetModel) *AssetModelModel {
	var deletedAt gorm.DeletedAt
	if am.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *am.DeletedAt, Valid: true}
	}

	return &AssetModelModel{
		ID:           am.ID,
		Name:         am.Name,
		Manufacturer: am.Manufacturer,
		CreatedAt:    am.CreatedAt,
		UpdatedAt:    am.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}
