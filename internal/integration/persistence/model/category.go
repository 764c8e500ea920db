// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/asset-registry/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID                      uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name                    string           `gorm:"type:varchar(100);not null;uniqueIndex"`
	DepreciationMethod      string           `gorm:"type:varchar(20);not null;default:'linear'"`
	UsefulLifeInYears       *int             `gorm:"type:int"`
	ResidualValuePercentage decimal.Decimal  `gorm:"type:numeric(5,2);not null;default:0"`
	DepreciationRateType    *string          `gorm:"type:varchar(10)"`
	DepreciationRateValue   *decimal.Decimal `gorm:"type:numeric(8,4)"`
	CreatedAt               time.Time        `gorm:"not null"`
	UpdatedAt               time.Time        `gorm:"not null"`
	DeletedAt               gorm.DeletedAt   `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	var rateType *entity.DepreciationRateType
	if m.DepreciationRateType != nil {
		rt := entity.DepreciationRateType(*m.DepreciationRateType)
		rateType = &rt
	}

	return &entity.Category{
		ID:                      m.ID,
		Name:                    m.Name,
		DepreciationMethod:      entity.DepreciationMethod(m.DepreciationMethod),
		UsefulLifeInYears:       m.UsefulLifeInYears,
		ResidualValuePercentage: m.ResidualValuePercentage,
		DepreciationRateType:    rateType,
		DepreciationRateValue:   m.DepreciationRateValue,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
		DeletedAt:               deletedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	var deletedAt gorm.DeletedAt
	if category.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *category.DeletedAt, Valid: true}
	}

	var rateType *string
	if category.DepreciationRateType != nil {
		rt := string(*category.DepreciationRateType)
		rateType = &rt
	}

	return &CategoryModel{
		ID:                      category.ID,
		Name:                    category.Name,
		DepreciationMethod:      string(category.DepreciationMethod),
		UsefulLifeInYears:       category.UsefulLifeInYears,
		ResidualValuePercentage: category.ResidualValuePercentage,
		DepreciationRateType:    rateType,
		DepreciationRateValue:   category.DepreciationRateValue,
		CreatedAt:               category.CreatedAt,
		UpdatedAt:               category.UpdatedAt,
		DeletedAt:               deletedAt,
	}
}
