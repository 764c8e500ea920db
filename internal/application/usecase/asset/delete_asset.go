package asset

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/asset-registry/backend/internal/application/adapter"
	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

// DeleteAssetInput represents the input for asset deletion.
type DeleteAssetInput struct {
	ID uuid.UUID
}

// DeleteAssetUseCase handles asset deletion.
type DeleteAssetUseCase struct {
	assetRepo adapter.AssetRepository
}

// NewDeleteAssetUseCase creates a new DeleteAssetUseCase instance.
func NewDeleteAssetUseCase(assetRepo adapter.AssetRepository) *DeleteAssetUseCase {
	return &DeleteAssetUseCase{
		assetRepo: assetRepo,
	}
}

// Execute performs the asset deletion.
func (uc *DeleteAssetUseCase) Execute(ctx context.Context, input DeleteAssetInput) error {
	if _, err := uc.assetRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrAssetNotFound) {
			return domainerror.NewAssetError(
				domainerror.ErrCodeAssetNotFound,
				fmt.Sprintf("asset %s does not exist", input.ID),
				domainerror.ErrAssetNotFound,
			)
		}
		return fmt.Errorf("failed to load asset: %w", err)
	}

	if err := uc.assetRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	return nil
}
