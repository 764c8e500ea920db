// Package asset contains asset-related use cases.
package asset

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asset-registry/backend/internal/application/adapter"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// validateIdentity checks the free-text identifiers every asset must carry.
func validateIdentity(name, assetTag string) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewAssetError(
			domainerror.ErrCodeAssetNameRequired,
			"asset name must not be blank",
			domainerror.ErrAssetNameRequired,
		)
	}
	if strings.TrimSpace(assetTag) == "" {
		return domainerror.NewAssetError(
			domainerror.ErrCodeAssetTagRequired,
			"asset tag must not be blank",
			domainerror.ErrAssetTagRequired,
		)
	}
	return nil
}

// validateMonetary enforces the monetary invariants as hard rules at every
// entry point: purchase value and previously depreciated value are both
// non-negative, and the depreciated value never exceeds the purchase value.
func validateMonetary(purchaseValue, previouslyDepreciated decimal.Decimal) error {
	if purchaseValue.IsNegative() {
		return domainerror.NewAssetError(
			domainerror.ErrCodeNegativePurchaseValue,
			"purchase value must be zero or positive",
			domainerror.ErrNegativePurchaseValue,
		)
	}
	if previouslyDepreciated.IsNegative() {
		return domainerror.NewAssetError(
			domainerror.ErrCodeNegativeDepreciatedValue,
			"previously depreciated value must be zero or positive",
			domainerror.ErrNegativeDepreciatedValue,
		)
	}
	if previouslyDepreciated.GreaterThan(purchaseValue) {
		return domainerror.NewAssetError(
			domainerror.ErrCodeDepreciatedValueExceedsPurchase,
			fmt.Sprintf("previously depreciated value %s exceeds purchase value %s",
				previouslyDepreciated.StringFixed(2), purchaseValue.StringFixed(2)),
			domainerror.ErrDepreciatedValueExceedsPurchase,
		)
	}
	return nil
}

// referenceValidator resolves catalog references shared by create and update.
type referenceValidator struct {
	categoryRepo adapter.CategoryRepository
	supplierRepo adapter.SupplierRepository
	locationRepo adapter.LocationRepository
	modelRepo    adapter.AssetModelRepository
}

func (v referenceValidator) validate(ctx context.Context, categoryID, supplierID uuid.UUID, locationID, modelID *uuid.UUID) error {
	if _, err := v.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				fmt.Sprintf("category %s does not exist", categoryID),
				domainerror.ErrCategoryNotFound,
			)
		}
		return fmt.Errorf("failed to resolve category: %w", err)
	}

	if _, err := v.supplierRepo.FindByID(ctx, supplierID); err != nil {
		if errors.Is(err, domainerror.ErrSupplierNotFound) {
			return domainerror.NewAssetError(
				domainerror.ErrCodeSupplierNotFound,
				fmt.Sprintf("supplier %s does not exist", supplierID),
				domainerror.ErrSupplierNotFound,
			)
		}
		return fmt.Errorf("failed to resolve supplier: %w", err)
	}

	if locationID != nil {
		if _, err := v.locationRepo.FindByID(ctx, *locationID); err != nil {
			if errors.Is(err, domainerror.ErrLocationNotFound) {
				return domainerror.NewAssetError(
					domainerror.ErrCodeLocationNotFound,
					fmt.Sprintf("location %s does not exist", *locationID),
					domainerror.ErrLocationNotFound,
				)
			}
			return fmt.Errorf("failed to resolve location: %w", err)
		}
	}

	if modelID != nil {
		if _, err := v.modelRepo.FindByID(ctx, *modelID); err != nil {
			if errors.Is(err, domainerror.ErrAssetModelNotFound) {
				return domainerror.NewAssetError(
					domainerror.ErrCodeAssetModelNotFound,
					fmt.Sprintf("asset model %s does not exist", *modelID),
					domainerror.ErrAssetModelNotFound,
				)
			}
			return fmt.Errorf("failed to resolve asset model: %w", err)
		}
	}

	return nil
}
