// Package asset contains asset-related use cases.
package asset

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/application/adapter"
	"github.com/asset-registry/backend/internal/domain/entity"
)

// CreateAssetInput represents the input for manual asset creation.
type CreateAssetInput struct {
	Name                       string
	AssetTag                   string
	InvoiceNumber              string
	CategoryID                 uuid.UUID
	SupplierID                 uuid.UUID
	LocationID                 *uuid.UUID
	ModelID                    *uuid.UUID
	PurchaseDate               time.Time
	PurchaseValue              decimal.Decimal
	PreviouslyDepreciatedValue decimal.Decimal
	ApplyDepreciationRules     bool
	ImageDataURIs              []string
	InvoiceFileDataURI         string
	InvoiceFileName            string
	AdditionalInfo             string
}

// CreateAssetOutput represents the output of asset creation.
type CreateAssetOutput struct {
	Asset *entity.Asset
}

// CreateAssetUseCase handles manual asset creation.
type CreateAssetUseCase struct {
	assetRepo adapter.AssetRepository
	refs      referenceValidator
}

// NewCreateAssetUseCase creates a new CreateAssetUseCase instance.
func NewCreateAssetUseCase(
	assetRepo adapter.AssetRepository,
	categoryRepo adapter.CategoryRepository,
	supplierRepo adapter.SupplierRepository,
	locationRepo adapter.LocationRepository,
	modelRepo adapter.AssetModelRepository,
) *CreateAssetUseCase {
	return &CreateAssetUseCase{
		assetRepo: assetRepo,
		refs: referenceValidator{
			categoryRepo: categoryRepo,
			supplierRepo: supplierRepo,
			locationRepo: locationRepo,
			modelRepo:    modelRepo,
		},
	}
}

// Execute performs the asset creation.
func (uc *CreateAssetUseCase) Execute(ctx context.Context, input CreateAssetInput) (*CreateAssetOutput, error) {
	if err := validateIdentity(input.Name, input.AssetTag); err != nil {
		return nil, err
	}

	if err := validateMonetary(input.PurchaseValue, input.PreviouslyDepreciatedValue); err != nil {
		return nil, err
	}

	if err := uc.refs.validate(ctx, input.CategoryID, input.SupplierID, input.LocationID, input.ModelID); err != nil {
		return nil, err
	}

	asset := entity.NewAsset(
		input.Name,
		input.AssetTag,
		input.InvoiceNumber,
		input.CategoryID,
		input.SupplierID,
		input.LocationID,
		input.ModelID,
		input.PurchaseDate,
		input.PurchaseValue,
		input.PreviouslyDepreciatedValue,
		input.ApplyDepreciationRules,
	)
	asset.ImageDataURIs = input.ImageDataURIs
	asset.InvoiceFileDataURI = input.InvoiceFileDataURI
	asset.InvoiceFileName = input.InvoiceFileName
	asset.AdditionalInfo = input.AdditionalInfo

	if err := uc.assetRepo.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	return &CreateAssetOutput{
		Asset: asset,
	}, nil
}
