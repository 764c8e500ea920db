// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/asset-registry/backend/internal/domain/entity"
)

// AssetModel represents the assets table in the database.
type AssetModel struct {
	ID                         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name                       string          `gorm:"type:varchar(255);not null"`
	AssetTag                   string          `gorm:"type:varchar(100);not null;index"`
	InvoiceNumber              string          `gorm:"type:varchar(100)"`
	CategoryID                 uuid.UUID       `gorm:"type:uuid;not null;index"`
	SupplierID                 uuid.UUID       `gorm:"type:uuid;not null;index"`
	LocationID                 *uuid.UUID      `gorm:"type:uuid;index"`
	ModelID                    *uuid.UUID      `gorm:"type:uuid;index"`
	PurchaseDate               time.Time       `gorm:"type:date;not null"`
	PurchaseValue              decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PreviouslyDepreciatedValue decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	ApplyDepreciationRules     bool            `gorm:"not null;default:true"`
	ImageDataURIs              pq.StringArray  `gorm:"type:text[]"`
	InvoiceFileDataURI         string          `gorm:"type:text"`
	InvoiceFileName            string          `gorm:"type:varchar(255)"`
	AdditionalInfo             string          `gorm:"type:text"`
	CreatedAt                  time.Time       `gorm:"not null"`
	UpdatedAt                  time.Time       `gorm:"not null"`
	DeletedAt                  gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the AssetModel.
func (AssetModel) TableName() string {
	return "assets"
}

// ToEntity converts an AssetModel to a domain Asset entity.
func (m *AssetModel) ToEntity() *entity.Asset {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Asset{
		ID:                         m.ID,
		Name:                       m.Name,
		AssetTag:                   m.AssetTag,
		InvoiceNumber:              m.InvoiceNumber,
		CategoryID:                 m.CategoryID,
		SupplierID:                 m.SupplierID,
		LocationID:                 m.LocationID,
		ModelID:                    m.ModelID,
		PurchaseDate:               m.PurchaseDate,
		PurchaseValue:              m.PurchaseValue,
		PreviouslyDepreciatedValue: m.PreviouslyDepreciatedValue,
		ApplyDepreciationRules:     m.ApplyDepreciationRules,
		ImageDataURIs:              m.ImageDataURIs,
		InvoiceFileDataURI:         m.InvoiceFileDataURI,
		InvoiceFileName:            m.InvoiceFileName,
		AdditionalInfo:             m.AdditionalInfo,
		CreatedAt:                  m.CreatedAt,
		UpdatedAt:                  m.UpdatedAt,
		DeletedAt:                  deletedAt,
	}
}

// AssetFromEntity creates an AssetModel from a domain Asset entity.
func AssetFromEntity(asset *entity.Asset) *AssetModel {
	var deletedAt gorm.DeletedAt
	if asset.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *asset.DeletedAt, Valid: true}
	}

	return &AssetModel{
		ID:                         asset.ID,
		Name:                       asset.Name,
		AssetTag:                   asset.AssetTag,
		InvoiceNumber:              asset.InvoiceNumber,
		CategoryID:                 asset.CategoryID,
		SupplierID:                 asset.SupplierID,
		LocationID:                 asset.LocationID,
		ModelID:                    asset.ModelID,
		PurchaseDate:               asset.PurchaseDate,
		PurchaseValue:              asset.PurchaseValue,
		PreviouslyDepreciatedValue: asset.PreviouslyDepreciatedValue,
		ApplyDepreciationRules:     asset.ApplyDepreciationRules,
		ImageDataURIs:              asset.ImageDataURIs,
		InvoiceFileDataURI:         asset.InvoiceFileDataURI,
		InvoiceFileName:            asset.InvoiceFileName,
		AdditionalInfo:             asset.AdditionalInfo,
		CreatedAt:                  asset.CreatedAt,
		UpdatedAt:                  asset.UpdatedAt,
		DeletedAt:                  deletedAt,
	}
}
