package asset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/application/adapter"
	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// UpdateAssetInput represents the input for asset update.
// Every field except the ID is replaceable.
type UpdateAssetInput struct {
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
	PreviouslyDepreciatedValue decimal.Decimal
	ApplyDepreciationRules     bool
	ImageDataURIs              []string
	InvoiceFileDataURI         string
	InvoiceFileName            string
	AdditionalInfo             string
}

// UpdateAssetOutput represents the output of asset update.
type UpdateAssetOutput struct {
	Asset *entity.Asset
}

// UpdateAssetUseCase handles asset edits.
type UpdateAssetUseCase struct {
	assetRepo adapter.AssetRepository
	refs      referenceValidator
}

// NewUpdateAssetUseCase creates a new UpdateAssetUseCase instance.
func NewUpdateAssetUseCase(
	assetRepo adapter.AssetRepository,
	categoryRepo adapter.CategoryRepository,
	supplierRepo adapter.SupplierRepository,
	locationRepo adapter.LocationRepository,
	modelRepo adapter.AssetModelRepository,
) *UpdateAssetUseCase {
	return &UpdateAssetUseCase{
		assetRepo: assetRepo,
		refs: referenceValidator{
			categoryRepo: categoryRepo,
			supplierRepo: supplierRepo,
			locationRepo: locationRepo,
			modelRepo:    modelRepo,
		},
	}
}

// Execute performs the asset update.
func (uc *UpdateAssetUseCase) Execute(ctx context.Context, input UpdateAssetInput) (*UpdateAssetOutput, error) {
	asset, err := uc.assetRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAssetNotFound) {
			return nil, domainerror.NewAssetError(
				domainerror.ErrCodeAssetNotFound,
				fmt.Sprintf("asset %s does not exist", input.ID),
				domainerror.ErrAssetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load asset: %w", err)
	}

	if err := validateIdentity(input.Name, input.AssetTag); err != nil {
		return nil, err
	}

	if err := validateMonetary(input.PurchaseValue, input.PreviouslyDepreciatedValue); err != nil {
		return nil, err
	}

	if err := uc.refs.validate(ctx, input.CategoryID, input.SupplierID, input.LocationID, input.ModelID); err != nil {
		return nil, err
	}

	asset.Name = input.Name
	asset.AssetTag = input.AssetTag
	asset.InvoiceNumber = input.InvoiceNumber
	asset.CategoryID = input.CategoryID
	asset.SupplierID = input.SupplierID
	asset.LocationID = input.LocationID
	asset.ModelID = input.ModelID
	asset.PurchaseDate = input.PurchaseDate
	asset.PurchaseValue = input.PurchaseValue
	asset.PreviouslyDepreciatedValue = input.PreviouslyDepreciatedValue
	asset.ApplyDepreciationRules = input.ApplyDepreciationRules
	asset.ImageDataURIs = input.ImageDataURIs
	asset.InvoiceFileDataURI = input.InvoiceFileDataURI
	asset.InvoiceFileName = input.InvoiceFileName
	asset.AdditionalInfo = input.AdditionalInfo
	asset.UpdatedAt = time.Now().UTC()

	if err := uc.assetRepo.Update(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	return &UpdateAssetOutput{
		Asset: asset,
	}, nil
}
