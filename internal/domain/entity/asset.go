// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset represents a fixed asset tracked by the registry.
//
// Book value is never stored on the entity: it is always recomputed from
// PurchaseDate, PurchaseValue, PreviouslyDepreciatedValue and the category's
// depreciation rules at read time.
type Asset struct {
	ID                         uuid.UUID
	Name                       string
	AssetTag                   string
	InvoiceNumber              string
	CategoryID                 uuid.UUID
	SupplierID                 uuid.UUID
	LocationID                 *uuid.UUID
	ModelID                    *uuid.UUID
	PurchaseDate               time.Time
	PurchaseValue              decimal.Decimal
	PreviouslyDepreciatedValue decimal.Decimal // Depreciation absorbed before tracking started (e.g. bought used)
	ApplyDepreciationRules     bool            // When false the book value is frozen at purchase value minus previous depreciation
	ImageDataURIs              []string
	InvoiceFileDataURI         string
	InvoiceFileName            string
	AdditionalInfo             string
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
	DeletedAt                  *time.Time // Soft-delete support
}

// NewAsset creates a new Asset entity.
// Validation of monetary invariants is an Application layer (UseCase) responsibility.
func NewAsset(
	name string,
	assetTag string,
	invoiceNumber string,
	categoryID uuid.UUID,
	supplierID uuid.UUID,
	locationID *uuid.UUID,
	modelID *uuid.UUID,
	purchaseDate time.Time,
	purchaseValue decimal.Decimal,
	previouslyDepreciatedValue decimal.Decimal,
	applyDepreciationRules bool,
) *Asset {
	now := time.Now().UTC()

	return &Asset{
		ID:                         uuid.New(),
		Name:                       name,
		AssetTag:                   assetTag,
		InvoiceNumber:              invoiceNumber,
		CategoryID:                 categoryID,
		SupplierID:                 supplierID,
		LocationID:                 locationID,
		ModelID:                    modelID,
		PurchaseDate:               purchaseDate,
		PurchaseValue:              purchaseValue,
		PreviouslyDepreciatedValue: previouslyDepreciatedValue,
		ApplyDepreciationRules:     applyDepreciationRules,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
}

// AssetWithValuation represents an asset together with its computed book value.
// Valuable is false when the category configuration makes the value
// uncomputable; ValuationIssue then carries the error code for the caller.
type AssetWithValuation struct {
	Asset          *Asset
	CurrentValue   decimal.Decimal
	Valuable       bool
	ValuationIssue string
}
