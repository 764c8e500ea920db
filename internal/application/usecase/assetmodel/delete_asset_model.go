package assetmodel

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/asset-registry/backend/internal/application/adapter"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// DeleteAssetModelInput represents the input for asset model deletion.
type DeleteAssetModelInput struct {
	ID uuid.UUID
}

// DeleteAssetModelUseCase handles asset model deletion with an in-use precondition.
type DeleteAssetModelUseCase struct {
	modelRepo adapter.AssetModelRepository
	assetRepo adapter.AssetRepository
}

// NewDeleteAssetModelUseCase creates a new DeleteAssetModelUseCase instance.
func NewDeleteAssetModelUseCase(modelRepo adapter.AssetModelRepository, assetRepo adapter.AssetRepository) *DeleteAssetModelUseCase {
	return &DeleteAssetModelUseCase{
		modelRepo: modelRepo,
		assetRepo: assetRepo,
	}
}

// Execute performs the asset model deletion.
func (uc *DeleteAssetModelUseCase) Execute(ctx context.Context, input DeleteAssetModelInput) error {
	if _, err := uc.modelRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrAssetModelNotFound) {
			return domainerror.NewAssetError(
				domainerror.ErrCodeAssetModelNotFound,
				fmt.Sprintf("asset model %s does not exist", input.ID),
				domainerror.ErrAssetModelNotFound,
			)
		}
		return fmt.Errorf("failed to load asset model: %w", err)
	}

	count, err := uc.assetRepo.CountByModel(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to count assets for asset model: %w", err)
	}
	if count > 0 {
		return domainerror.NewAssetError(
			domainerror.ErrCodeAssetModelInUse,
			fmt.Sprintf("asset model is referenced by %d asset(s)", count),
			domainerror.ErrAssetModelInUse,
		)
	}

	if err := uc.modelRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete asset model: %w", err)
	}

	return nil
}
