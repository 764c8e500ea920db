package asset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/asset-registry/backend/internal/application/adapter"
	"github.com/asset-registry/backend/internal/domain/entity"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// GetAssetInput represents the input for retrieving a single asset.
type GetAssetInput struct {
	ID   uuid.UUID
	AsOf time.Time // Valuation date; zero value means "now"
}

// GetAssetOutput represents the output of retrieving a single asset.
type GetAssetOutput struct {
	Asset *entity.AssetWithValuation
}

// GetAssetUseCase retrieves one asset with its computed book value.
type GetAssetUseCase struct {
	assetRepo    adapter.AssetRepository
	categoryRepo adapter.CategoryRepository
}

// NewGetAssetUseCase creates a new GetAssetUseCase instance.
func NewGetAssetUseCase(assetRepo adapter.AssetRepository, categoryRepo adapter.CategoryRepository) *GetAssetUseCase {
	return &GetAssetUseCase{
		assetRepo:    assetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the retrieval.
func (uc *GetAssetUseCase) Execute(ctx context.Context, input GetAssetInput) (*GetAssetOutput, error) {
	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

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

	category, err := uc.categoryRepo.FindByID(ctx, asset.CategoryID)
	if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	return &GetAssetOutput{
		Asset: valuate(asset, category, asOf),
	}, nil
}
